package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"json-schema-checker/internal/app"
	"json-schema-checker/internal/config"
)

const usageLine = "Usage: schemacheck <schema_file_path>"

var (
	errUsage       = errors.New("exactly one schema file path is required")
	errCheckFailed = errors.New("schema check failed")
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	cfg := config.Load()
	application := app.New(cfg, stderr)
	defer application.Shutdown()

	cmd := newRootCmd(application, stdout)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := execute(context.Background(), cmd, args); err != nil {
		switch {
		case errors.Is(err, errUsage):
			application.Metrics.RecordUsageError()
			fmt.Fprintln(stdout, usageLine)
		case errors.Is(err, errCheckFailed):
			// already reported
		default:
			fmt.Fprintf(stdout, "❌ Error during validation: %v\n", err)
		}
		return 1
	}
	return 0
}

// execute runs cmd on args. Cobra resolves its hidden shell completion
// commands by name before argument validation, so a leading "__complete" or
// "__completeNoDesc" skips command lookup and is handled as a path.
func execute(ctx context.Context, cmd *cobra.Command, args []string) error {
	if len(args) == 0 || !isCompletionRequest(args[0]) {
		return cmd.ExecuteContext(ctx)
	}

	cmd.SetContext(ctx)
	if err := cmd.ValidateArgs(args); err != nil {
		return err
	}
	return cmd.RunE(cmd, args)
}

func isCompletionRequest(arg string) bool {
	return arg == cobra.ShellCompRequestCmd || arg == cobra.ShellCompNoDescRequestCmd
}

// newRootCmd builds the schemacheck command. Flag parsing is disabled: every
// argument is a path, so "--help" is checked like any other file name.
func newRootCmd(application *app.Application, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:                "schemacheck <schema_file_path>",
		Short:              "Check that a JSON file is a valid draft-07 JSON Schema",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errUsage
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.Start(); err != nil {
				return err
			}

			c, err := application.NewChecker(stdout)
			if err != nil {
				return err
			}

			if !c.Check(cmd.Context(), args[0]) {
				return errCheckFailed
			}
			return nil
		},
	}
}
