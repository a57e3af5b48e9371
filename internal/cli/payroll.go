package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hrdesk/internal/domain/employee"
	"hrdesk/internal/domain/payroll"
	"hrdesk/internal/platform/printer"
	"hrdesk/internal/transport/http/client"
)

var payrollInputFields = []string{
	payroll.FieldBasicSalary,
	payroll.FieldTotalDays,
	payroll.FieldAbsents,
	payroll.FieldMedical,
	payroll.FieldConveyance,
	payroll.FieldPF,
	payroll.FieldOvertime,
	payroll.FieldDeducted,
	payroll.FieldAdded,
}

func newPayrollCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payroll",
		Short: "Calculate and record net salary",
	}
	cmd.AddCommand(newPayrollCalcCommand(opts), newPayrollSaveCommand(opts))
	return cmd
}

func newPayrollCalcCommand(opts *rootOptions) *cobra.Command {
	var render bool
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute net salary and show the receipt",
		Long: "Compute net salary from the payroll inputs. Inputs are read loosely: " +
			"the leading number of each value is used, total-days defaults to 30 " +
			"and every other input to 0.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			get := fieldValues(cmd)
			result := payroll.Calculate(payroll.InputsFromValues(get))
			receipt := payroll.NewReceipt(get(employee.FieldCode), get(employee.FieldFirstName), get(employee.FieldLastName), result)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "net_salary: %s\n", result.NetString())
			fmt.Fprintln(out, receipt.String())
			if !render {
				return nil
			}
			path, err := printer.New(opts.cfg.PrintDir).Print(receipt)
			if err != nil {
				return fmt.Errorf("print: %w", err)
			}
			fmt.Fprintf(out, "Receipt printed to %s\n", path)
			return nil
		},
	}
	for _, field := range payrollInputFields {
		cmd.Flags().String(flagName(field), "", field)
	}
	cmd.Flags().String(flagName(employee.FieldCode), "", "employee code for the receipt")
	cmd.Flags().String(flagName(employee.FieldFirstName), "", "first name for the receipt")
	cmd.Flags().String(flagName(employee.FieldLastName), "", "last name for the receipt")
	cmd.Flags().BoolVar(&render, "print", false, "Also render the receipt as a PDF")
	return cmd
}

func newPayrollSaveCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Record a payroll for an employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			get := fieldValues(cmd)
			record := payroll.Record{
				EmployeeCode: strings.TrimSpace(get(employee.FieldCode)),
				Month:        get(payroll.FieldMonth),
				Year:         get(payroll.FieldYear),
				NetSalary:    get(payroll.FieldNetSalary),
			}
			app, err := opts.app(cmd)
			if err != nil {
				return err
			}
			if err := app.Client.SavePayroll(cmd.Context(), record); err != nil {
				if msg, ok := client.AppMessage(err); ok {
					return errors.New(msg)
				}
				return fmt.Errorf("payroll save: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Payroll saved for %s\n", record.EmployeeCode)
			return nil
		},
	}
	cmd.Flags().String(flagName(employee.FieldCode), "", "employee code")
	cmd.Flags().String(flagName(payroll.FieldMonth), "", "payroll month")
	cmd.Flags().String(flagName(payroll.FieldYear), "", "payroll year")
	cmd.Flags().String(flagName(payroll.FieldNetSalary), "", "net salary, as computed by payroll calc")
	return cmd
}
