package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"oj-judge/judge"
	"oj-judge/judge/batch"
	"oj-judge/judge/checker"
	"oj-judge/judge/supervisor"
)

func newCheckCmd() *cobra.Command {
	var (
		timeMs    uint64
		memoryMB  uint64
		input     string
		output    string
		directory string
	)

	cmd := &cobra.Command{
		Use:   "check <exe> [flags] [-- cmd_options...]",
		Short: "Judge one executable against a single case or a directory of cases",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			executable := args[0]

			var cmdOptions []string
			if dash := cmd.ArgsLenAtDash(); dash >= 0 {
				cmdOptions = args[dash:]
			} else if len(args) > 1 {
				return fmt.Errorf("check: unexpected arguments %v (use -- to pass options to <exe>)", args[1:])
			}

			limits := judge.Limits{TimeLimitMs: timeMs, MemoryLimitMB: memoryMB}

			if directory != "" {
				result, err := batch.NewSession().Run(batch.Input{
					TestDir:    directory,
					Executable: executable,
					Args:       cmdOptions,
					Limits:     limits,
					NewChecker: func(tc judge.TestCase) checker.Checker {
						return checker.NewLineChecker(tc.ReferencePath)
					},
				})
				if err != nil {
					return err
				}
				fmt.Println(result.Verdict.String())
				return nil
			}

			verdict, err := supervisor.Supervise(supervisor.Input{
				Executable:    executable,
				Args:          cmdOptions,
				StdinFilePath: input,
				Limits:        limits,
				Checker:       checker.NewLineChecker(output),
			})
			if err != nil {
				return err
			}
			fmt.Println(verdict.String())
			return nil
		},
	}

	cmd.Flags().Uint64Var(&timeMs, "time", 1000, "time limit in milliseconds (0 disables enforcement)")
	cmd.Flags().Uint64Var(&memoryMB, "memory", 1024, "memory limit in megabytes (0 disables enforcement)")
	cmd.Flags().StringVar(&input, "input", "", "input file for a single test case")
	cmd.Flags().StringVar(&output, "output", "", "reference output file for a single test case")
	cmd.Flags().StringVar(&directory, "directory", "", "directory of <n>.in/<n>.out test cases")

	cmd.MarkFlagsRequiredTogether("input", "output")
	cmd.MarkFlagsMutuallyExclusive("input", "directory")
	cmd.MarkFlagsMutuallyExclusive("output", "directory")
	cmd.MarkFlagsOneRequired("input", "directory")

	return cmd
}
