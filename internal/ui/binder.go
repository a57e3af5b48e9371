package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"hrdesk/internal/calc"
	"hrdesk/internal/domain/employee"
	"hrdesk/internal/domain/payroll"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/client"
)

// Backend is the subset of the HR backend the page uses.
type Backend interface {
	SaveEmployee(ctx context.Context, form employee.Form) (api.SaveResponse, error)
	SearchEmployee(ctx context.Context, code string) (employee.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
	SavePayroll(ctx context.Context, record payroll.Record) error
	ListEmployees(ctx context.Context) ([]employee.Summary, error)
}

type Printer interface {
	Print(receipt payroll.Receipt) (string, error)
}

type Binder struct {
	Page        Page
	Backend     Backend
	Scheduler   Scheduler
	Printer     Printer
	Logger      *slog.Logger
	ReloadDelay time.Duration
}

func (b *Binder) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.Default()
}

func (b *Binder) value(field string) string {
	value, _ := b.Page.Field(field)
	return value
}

// OnSave submits the employee form. On success it shows the saved code and
// reloads after ReloadDelay so the message can be read.
func (b *Binder) OnSave(ctx context.Context) {
	form := employee.FormFromValues(b.value)
	resp, err := b.Backend.SaveEmployee(ctx, form)
	if err != nil {
		if msg, ok := client.AppMessage(err); ok {
			b.Page.Alert("Error: " + msg)
			return
		}
		b.logger().Warn("employee save failed", "empCode", form.Code, "err", err)
		b.Page.Alert("Save error: " + err.Error())
		return
	}

	b.Page.SetText(ElementSaveStatus, "Saved: "+resp.EmpCode)
	b.scheduleReload(ctx)
}

// OnSearch loads the employee named by the search field into the form.
func (b *Binder) OnSearch(ctx context.Context) {
	code := strings.TrimSpace(b.value(FieldSearchCode))
	if code == "" {
		b.Page.Alert("Enter code")
		return
	}

	emp, err := b.Backend.SearchEmployee(ctx, code)
	if errors.Is(err, employee.ErrNotFound) {
		b.Page.Alert("Not found")
		return
	}
	if err != nil {
		b.logger().Warn("employee search failed", "empCode", code, "err", err)
		b.Page.Alert("Search error: " + err.Error())
		return
	}

	for _, field := range employee.LookupFields {
		if _, ok := b.Page.Field(field); ok {
			b.Page.SetField(field, emp.FieldValue(field))
		}
	}
	b.Page.SetField(FieldPayEmpCode, emp.Code)
	b.Page.SetText(ElementSaveStatus, "Loaded "+emp.Code)
}

// OnRowClick copies the row's first cell into the search field and searches.
func (b *Binder) OnRowClick(ctx context.Context, cells []string) {
	if len(cells) == 0 {
		return
	}
	b.Page.SetField(FieldSearchCode, strings.TrimSpace(cells[0]))
	b.OnSearch(ctx)
}

// OnDelete removes the employee with backend id after confirmation.
func (b *Binder) OnDelete(ctx context.Context, id string) {
	if !b.Page.Confirm(DeleteConfirmation) {
		return
	}

	if err := b.Backend.DeleteEmployee(ctx, id); err != nil {
		if msg, ok := client.AppMessage(err); ok {
			b.Page.Alert("Delete failed: " + msg)
			return
		}
		b.logger().Warn("employee delete failed", "id", id, "err", err)
		b.Page.Alert("Delete error: " + err.Error())
		return
	}

	b.Page.Alert("Deleted")
	b.Reload(ctx)
}

// OnCalculatePayroll fills net_salary and the receipt from the form.
func (b *Binder) OnCalculatePayroll() payroll.Result {
	result := payroll.Calculate(payroll.InputsFromValues(b.value))
	b.Page.SetField(payroll.FieldNetSalary, result.NetString())

	receipt := payroll.NewReceipt(
		b.value(FieldSearchCode),
		b.value(employee.FieldFirstName),
		b.value(employee.FieldLastName),
		result,
	)
	b.Page.SetText(ElementReceiptArea, receipt.String())
	return result
}

// OnSavePayroll records the payroll for pay_emp_code. The backend answers a
// successful save with its index page, so the page reloads.
func (b *Binder) OnSavePayroll(ctx context.Context) {
	record := payroll.Record{
		EmployeeCode: strings.TrimSpace(b.value(FieldPayEmpCode)),
		Month:        b.value(payroll.FieldMonth),
		Year:         b.value(payroll.FieldYear),
		NetSalary:    b.value(payroll.FieldNetSalary),
	}
	if err := b.Backend.SavePayroll(ctx, record); err != nil {
		if msg, ok := client.AppMessage(err); ok {
			b.Page.Alert("Error: " + msg)
			return
		}
		b.logger().Warn("payroll save failed", "empCode", record.EmployeeCode, "err", err)
		b.Page.Alert("Payroll save error: " + err.Error())
		return
	}
	b.Reload(ctx)
}

func (b *Binder) OnCalcKey(label string) {
	b.withScreen(func(s *calc.Screen) { s.Key(label) })
}

func (b *Binder) OnCalcOp(label string) {
	b.withScreen(func(s *calc.Screen) { s.Op(label) })
}

func (b *Binder) OnCalcClear() {
	b.withScreen(func(s *calc.Screen) { s.Clear() })
}

// OnCalcEquals evaluates the screen. Failures show the error marker in place
// and are not alerted.
func (b *Binder) OnCalcEquals() {
	b.withScreen(func(s *calc.Screen) {
		expr := s.Text()
		if err := s.Equals(); err != nil {
			b.logger().Debug("calculator evaluation failed", "expr", expr, "err", err)
		}
	})
}

func (b *Binder) withScreen(fn func(s *calc.Screen)) {
	var screen calc.Screen
	screen.SetText(b.value(FieldCalcScreen))
	fn(&screen)
	b.Page.SetField(FieldCalcScreen, screen.Text())
}

// OnPrint prints the receipt for the form as it stands.
func (b *Binder) OnPrint() {
	if b.Printer == nil {
		b.Page.Alert("Printing is not available")
		return
	}
	receipt := payroll.Receipt{
		EmployeeCode: b.value(FieldSearchCode),
		FirstName:    b.value(employee.FieldFirstName),
		LastName:     b.value(employee.FieldLastName),
		Net:          b.value(payroll.FieldNetSalary),
	}
	path, err := b.Printer.Print(receipt)
	if err != nil {
		b.logger().Warn("receipt print failed", "err", err)
		b.Page.Alert("Print error: " + err.Error())
		return
	}
	b.Page.Alert("Receipt printed to " + path)
}

func (b *Binder) OnDownloadPDF() {
	b.Page.Alert(PDFGuidance)
}

// Reload resets the page and refreshes the employee table.
func (b *Binder) Reload(ctx context.Context) {
	b.Page.Reset()
	rows, err := b.Backend.ListEmployees(ctx)
	if err != nil {
		b.logger().Warn("employee list failed", "err", err)
		b.Page.Alert("Reload error: " + err.Error())
		return
	}
	b.Page.SetRows(rows)
}

func (b *Binder) scheduleReload(ctx context.Context) {
	if b.Scheduler == nil {
		b.Reload(ctx)
		return
	}
	// the triggering call's context may be gone by the time the timer fires
	reloadCtx := context.WithoutCancel(ctx)
	b.Scheduler.After(b.ReloadDelay, func() { b.Reload(reloadCtx) })
}
