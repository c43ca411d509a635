// Command oj-judge supervises a single submission's executable against
// one test case or a directory of test cases, either as a one-shot CLI
// invocation or as a single-connection TCP service.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "oj-judge",
		Short: "Process-supervised judging for one competitive-programming submission",
		Long: `oj-judge runs a compiled submission under a resource-limited child
process, compares its output against reference test cases, and reports
a verdict (Accepted, Wrong Answer, Time/Memory/Idle Limit Exceeded, or
Runtime Error). It can be driven directly from the command line or as
a single-connection batch service.`,
	}

	root.AddCommand(newCheckCmd(), newListenCmd())

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
