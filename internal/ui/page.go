// Package ui binds page events to the payroll calculator, the arithmetic
// widget and the HR backend. A Page is the only thing it touches of the
// surface the operator sees.
package ui

import (
	"time"

	"hrdesk/internal/domain/employee"
)

const (
	FieldSearchCode = employee.FieldCode
	FieldPayEmpCode = "pay_emp_code"
	FieldCalcScreen = "calc_screen"

	ElementSaveStatus  = "save_status"
	ElementReceiptArea = "receipt_area"

	DeleteConfirmation = "Delete employee? This will remove all payrolls, attendance and photo."
	PDFGuidance        = "Save payroll, then click PDF in payroll records to download."
)

// Page is the form surface. Field reports ok=false for a field the page
// does not have.
type Page interface {
	Field(name string) (value string, ok bool)
	SetField(name, value string)
	SetText(element, text string)
	Alert(message string)
	Confirm(message string) bool
	// Reset returns every field to its initial state, as a fresh page load does.
	Reset()
	SetRows(rows []employee.Summary)
}

// Scheduler runs fn once after d on the page's event loop.
type Scheduler interface {
	After(d time.Duration, fn func())
}
