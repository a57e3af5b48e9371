package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hrdesk/internal/calc"
	"hrdesk/internal/transport/http/client"
)

func newCalcCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <expression>",
		Short: "Evaluate an arithmetic expression",
		Long:  "Evaluate numbers joined by + - * / with parentheses and unary signs. Anything else prints Err.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var screen calc.Screen
			screen.SetText(strings.Join(args, " "))
			err := screen.Equals()
			fmt.Fprintln(cmd.OutOrStdout(), screen.Text())
			return err
		},
	}
}

func newExportCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "export <employees|payrolls>",
		Short:     "Download a backend CSV export",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(client.ExportEmployees), string(client.ExportPayrolls)},
		RunE: func(cmd *cobra.Command, args []string) error {
			export := client.Export(args[0])
			if !export.Valid() {
				return fmt.Errorf("unknown export %q, want employees or payrolls", args[0])
			}
			app, err := opts.app(cmd)
			if err != nil {
				return err
			}
			path, err := app.Export(cmd.Context(), export)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newStatusCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.app(cmd)
			if err != nil {
				return err
			}
			status, err := app.Client.Status(cmd.Context())
			if err != nil {
				return err
			}
			state := "down"
			if status.OK {
				state = "ok"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s version %s\n", app.Client.BaseURL(), state, status.Version)
			return nil
		},
	}
}
