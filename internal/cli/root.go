// Package cli exposes the desk page and its one-shot operations as cobra
// commands.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"hrdesk/internal/app/desk"
	"hrdesk/internal/platform/config"
)

type rootOptions struct {
	baseURL  string
	logLevel string
	yes      bool

	cfg config.Config
}

// NewRootCommand builds the hrdesk command tree. Logs go to the command's
// error stream.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "hrdesk",
		Short:         "HR desk: employee records, payroll and calculator",
		Version:       desk.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.cfg = config.Load()
			flags := cmd.Flags()
			if flags.Changed("base-url") {
				opts.cfg.BaseURL = strings.TrimRight(opts.baseURL, "/")
			}
			if flags.Changed("log-level") {
				opts.cfg.LogLevel = strings.ToLower(opts.logLevel)
			}
			if flags.Changed("yes") {
				opts.cfg.AssumeYes = opts.yes
			}
			return nil
		},
	}
	cmd.SetVersionTemplate("hrdesk v{{.Version}}\n")

	cmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "Backend URL (overrides HRDESK_BASE_URL)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().BoolVarP(&opts.yes, "yes", "y", false, "Answer yes to confirmations")

	cmd.AddCommand(
		newConsoleCommand(opts),
		newEmployeeCommand(opts),
		newPayrollCommand(opts),
		newCalcCommand(),
		newExportCommand(opts),
		newStatusCommand(opts),
	)
	return cmd
}

// app validates the config, wires the desk and opens the backend session.
// Commands that never reach the backend do not call it.
func (o *rootOptions) app(cmd *cobra.Command) (*desk.App, error) {
	app, err := desk.New(o.cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	if err := app.Start(cmd.Context()); err != nil {
		return nil, err
	}
	return app, nil
}

func (o *rootOptions) confirm(cmd *cobra.Command, message string) bool {
	out := cmd.OutOrStdout()
	if o.cfg.AssumeYes {
		fmt.Fprintf(out, "? %s [y/N] y\n", message)
		return true
	}
	fmt.Fprintf(out, "? %s [y/N] ", message)
	answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && err != io.EOF {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

func newConsoleCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Open the interactive desk page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.app(cmd)
			if err != nil {
				return err
			}
			return app.Console(cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
		},
	}
}

// flagName maps a form field to its flag, emp_code to emp-code.
func flagName(field string) string {
	return strings.ReplaceAll(field, "_", "-")
}

// fieldValues reads the string flags named after form fields.
func fieldValues(cmd *cobra.Command) func(field string) string {
	return func(field string) string {
		value, err := cmd.Flags().GetString(flagName(field))
		if err != nil {
			return ""
		}
		return value
	}
}
