package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net"

	"github.com/spf13/cobra"

	"oj-judge/judge"
	"oj-judge/judge/batch"
	"oj-judge/judge/checker"
	"oj-judge/judge/proto"
)

func newListenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listen <addr>",
		Short: "Bind a single-connection TCP batch service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveOne(args[0])
		},
	}
}

// serveOne binds addr, accepts exactly one connection, reads a single
// request from it, and drives one batch run — emitting a progress
// message before each case and a terminal message at the end (spec.md
// §4.E, §6). This is a deliberate prototype framing: one connection,
// one fixed-size read, no length-prefixing (spec.md §9).
func serveOne(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen: binding %s: %w", addr, err)
	}
	defer listener.Close()

	slog.Info("listening", "addr", addr)
	conn, err := listener.Accept()
	if err != nil {
		return fmt.Errorf("listen: accepting connection: %w", err)
	}
	defer conn.Close()

	buf := make([]byte, 1024)
	n, err := conn.Read(buf)
	if err != nil {
		return fmt.Errorf("listen: reading request: %w", err)
	}

	var req proto.Request
	if err := json.Unmarshal(buf[:n], &req); err != nil {
		return send(conn, proto.FailureResponse("malformed request: "+err.Error()))
	}

	session := batch.NewSession()
	var sendErr error
	session.Subscribe(func(p batch.Progress) {
		if sendErr != nil {
			return
		}
		sendErr = send(conn, proto.ProgressResponse(p.TestCase))
	})

	result, err := session.Run(batch.Input{
		TestDir:    req.TestDir,
		Executable: req.Cmd,
		Args:       req.CmdOptions,
		Limits:     judge.Limits{TimeLimitMs: req.TimeMs, MemoryLimitMB: req.MemoryMB},
		NewChecker: func(tc judge.TestCase) checker.Checker {
			return checker.NewLineChecker(tc.ReferencePath)
		},
	})
	if sendErr != nil {
		return fmt.Errorf("listen: writing progress message: %w", sendErr)
	}
	if err != nil {
		return send(conn, proto.FailureResponse(err.Error()))
	}

	return send(conn, proto.FinalResponse(result.Verdict))
}

func send(conn net.Conn, resp proto.Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	_, err = conn.Write(data)
	return err
}
