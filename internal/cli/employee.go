package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"hrdesk/internal/domain/employee"
	"hrdesk/internal/transport/http/client"
	"hrdesk/internal/ui"
)

var employeeFields = []string{
	employee.FieldCode,
	employee.FieldFirstName,
	employee.FieldLastName,
	employee.FieldContact,
	employee.FieldEmail,
	employee.FieldAddress,
	employee.FieldBasicSalary,
	employee.FieldDepartmentID,
	employee.FieldRoleID,
	employee.FieldPhoto,
}

func newEmployeeCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employee",
		Short: "Save, search and delete employees",
	}
	cmd.AddCommand(
		newEmployeeSaveCommand(opts),
		newEmployeeSearchCommand(opts),
		newEmployeeDeleteCommand(opts),
	)
	return cmd
}

func newEmployeeSaveCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Create or update an employee by code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.app(cmd)
			if err != nil {
				return err
			}
			form := employee.FormFromValues(fieldValues(cmd))
			resp, err := app.Client.SaveEmployee(cmd.Context(), form)
			if err != nil {
				if msg, ok := client.AppMessage(err); ok {
					return errors.New(msg)
				}
				return fmt.Errorf("save: %w", err)
			}

			action := "updated"
			if resp.Created {
				action = "created"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved: %s (%s)\n", resp.EmpCode, action)
			return nil
		},
	}
	for _, field := range employeeFields {
		cmd.Flags().String(flagName(field), "", field)
	}
	cmd.Flags().Lookup(flagName(employee.FieldPhoto)).Usage = "path of a photo file to upload"
	return cmd
}

func newEmployeeSearchCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <emp_code>",
		Short: "Show an employee by code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.app(cmd)
			if err != nil {
				return err
			}
			emp, err := app.Client.SearchEmployee(cmd.Context(), args[0])
			switch {
			case errors.Is(err, employee.ErrEmptyCode):
				return errors.New("enter code")
			case errors.Is(err, employee.ErrNotFound):
				return errors.New("not found")
			case err != nil:
				return fmt.Errorf("search: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "id\t%d\n", emp.ID)
			for _, field := range employee.LookupFields {
				fmt.Fprintf(w, "%s\t%s\n", field, emp.FieldValue(field))
			}
			return w.Flush()
		},
	}
}

func newEmployeeDeleteCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an employee with its payrolls, attendance and photo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.confirm(cmd, ui.DeleteConfirmation) {
				return nil
			}
			app, err := opts.app(cmd)
			if err != nil {
				return err
			}
			if err := app.Client.DeleteEmployee(cmd.Context(), args[0]); err != nil {
				if msg, ok := client.AppMessage(err); ok {
					return errors.New("delete failed: " + msg)
				}
				return fmt.Errorf("delete: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
			return nil
		},
	}
}
