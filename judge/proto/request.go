// Package proto defines the JSON wire types exchanged between the
// batch server (listen subcommand) and its single client, matching
// the server-mode framing described in spec.md §6.
package proto

// Request is the single message a client sends after connecting.
// CmdOptions may be null or a list in the wire form; null decodes to a
// nil slice and [] to an empty slice, and both add no arguments to the
// child's argv.
type Request struct {
	Cmd        string   `json:"cmd"`
	CmdOptions []string `json:"cmd_options"`
	TimeMs     uint64   `json:"time"`
	MemoryMB   uint64   `json:"memory"`
	TestDir    string   `json:"test_dir"`
}
