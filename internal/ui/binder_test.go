package ui

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hrdesk/internal/domain/employee"
	"hrdesk/internal/domain/payroll"
	"hrdesk/internal/transport/http/client"
	"hrdesk/internal/transport/http/client/clienttest"
)

type fakePage struct {
	fields   map[string]string
	initial  map[string]string
	texts    map[string]string
	alerts   []string
	confirms []string
	confirm  bool
	resets   int
	rows     []employee.Summary
}

func newFakePage(fields map[string]string) *fakePage {
	initial := map[string]string{}
	for k, v := range fields {
		initial[k] = v
	}
	return &fakePage{fields: fields, initial: initial, texts: map[string]string{}}
}

func (p *fakePage) Field(name string) (string, bool) {
	v, ok := p.fields[name]
	return v, ok
}

func (p *fakePage) SetField(name, value string) { p.fields[name] = value }
func (p *fakePage) SetText(element, text string) { p.texts[element] = text }
func (p *fakePage) Alert(message string) { p.alerts = append(p.alerts, message) }

func (p *fakePage) Confirm(message string) bool {
	p.confirms = append(p.confirms, message)
	return p.confirm
}

func (p *fakePage) Reset() {
	p.resets++
	p.fields = map[string]string{}
	for k, v := range p.initial {
		p.fields[k] = v
	}
}

func (p *fakePage) SetRows(rows []employee.Summary) { p.rows = rows }

func (p *fakePage) lastAlert() string {
	if len(p.alerts) == 0 {
		return ""
	}
	return p.alerts[len(p.alerts)-1]
}

type fakeScheduler struct {
	delays []time.Duration
	queued []func()
}

func (s *fakeScheduler) After(d time.Duration, fn func()) {
	s.delays = append(s.delays, d)
	s.queued = append(s.queued, fn)
}

func (s *fakeScheduler) runAll() {
	queued := s.queued
	s.queued = nil
	for _, fn := range queued {
		fn()
	}
}

type fakePrinter struct {
	printed []payroll.Receipt
	err     error
}

func (p *fakePrinter) Print(receipt payroll.Receipt) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	p.printed = append(p.printed, receipt)
	return "storage/receipts/r.pdf", nil
}

func formPage() map[string]string {
	return map[string]string{
		"emp_code":     "",
		"first_name":   "",
		"last_name":    "",
		"contact":      "",
		"email":        "",
		"address":      "",
		"basic_salary": "",
		"pay_emp_code": "",
		"calc_screen":  "",
	}
}

func newBinder(t *testing.T, page *fakePage) (*Binder, *clienttest.Backend, *fakeScheduler) {
	t.Helper()
	backend := clienttest.New(t, false)
	c, err := client.New(client.Options{BaseURL: backend.URL, Timeout: 2 * time.Second})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	scheduler := &fakeScheduler{}
	return &Binder{
		Page:        page,
		Backend:     c,
		Scheduler:   scheduler,
		ReloadDelay: 700 * time.Millisecond,
	}, backend, scheduler
}

func TestOnSaveShowsCodeAndReloadsAfterDelay(t *testing.T) {
	fields := formPage()
	fields["emp_code"] = "E1"
	fields["first_name"] = "Ada"
	page := newFakePage(fields)
	binder, backend, scheduler := newBinder(t, page)

	binder.OnSave(context.Background())

	if page.texts[ElementSaveStatus] != "Saved: E1" {
		t.Fatalf("unexpected status %q", page.texts[ElementSaveStatus])
	}
	if page.resets != 0 {
		t.Fatal("expected reload to wait for the delay")
	}
	if len(scheduler.delays) != 1 || scheduler.delays[0] != 700*time.Millisecond {
		t.Fatalf("expected one 700ms reload, got %v", scheduler.delays)
	}

	scheduler.runAll()
	if page.resets != 1 {
		t.Fatalf("expected page reload, got %d", page.resets)
	}
	if len(page.rows) != 1 || page.rows[0].Code != "E1" {
		t.Fatalf("expected refreshed table, got %+v", page.rows)
	}
	if _, ok := backend.Employee("E1"); !ok {
		t.Fatal("expected employee saved")
	}
}

func TestOnSaveFailureKeepsForm(t *testing.T) {
	fields := formPage()
	fields["first_name"] = "Ada"
	page := newFakePage(fields)
	binder, _, scheduler := newBinder(t, page)

	binder.OnSave(context.Background())

	if page.lastAlert() != "Error: emp_code required" {
		t.Fatalf("unexpected alert %q", page.lastAlert())
	}
	if len(scheduler.queued) != 0 || page.fields["first_name"] != "Ada" {
		t.Fatal("expected form left populated and no reload")
	}
}

func TestOnSaveTransportError(t *testing.T) {
	page := newFakePage(formPage())
	c, err := client.New(client.Options{BaseURL: "http://127.0.0.1:1", Timeout: time.Second})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	binder := &Binder{Page: page, Backend: c}

	binder.OnSave(context.Background())
	if !strings.HasPrefix(page.lastAlert(), "Save error: ") {
		t.Fatalf("unexpected alert %q", page.lastAlert())
	}
}

func TestOnSearchPopulatesFields(t *testing.T) {
	fields := formPage()
	delete(fields, "contact")
	fields["emp_code"] = "  E9 "
	fields["address"] = "stale"
	page := newFakePage(fields)
	binder, backend, _ := newBinder(t, page)
	backend.Seed(employee.Employee{Code: "E9", FirstName: "Grace", LastName: "Hopper", Contact: "555", BasicSalary: 4200})

	binder.OnSearch(context.Background())

	if len(page.alerts) != 0 {
		t.Fatalf("unexpected alerts %v", page.alerts)
	}
	if page.fields["first_name"] != "Grace" || page.fields["basic_salary"] != "4200" {
		t.Fatalf("unexpected fields %+v", page.fields)
	}
	if page.fields["address"] != "" {
		t.Fatalf("expected missing address to clear the field, got %q", page.fields["address"])
	}
	if _, ok := page.fields["contact"]; ok {
		t.Fatal("expected absent field to stay absent")
	}
	if page.fields[FieldPayEmpCode] != "E9" {
		t.Fatalf("expected pay code E9, got %q", page.fields[FieldPayEmpCode])
	}
	if page.texts[ElementSaveStatus] != "Loaded E9" {
		t.Fatalf("unexpected status %q", page.texts[ElementSaveStatus])
	}
}

func TestOnSearchUnknownLeavesFields(t *testing.T) {
	fields := formPage()
	fields["emp_code"] = "nobody"
	fields["first_name"] = "keep"
	page := newFakePage(fields)
	binder, _, _ := newBinder(t, page)

	binder.OnSearch(context.Background())

	if page.lastAlert() != "Not found" {
		t.Fatalf("unexpected alert %q", page.lastAlert())
	}
	if page.fields["first_name"] != "keep" || page.fields[FieldPayEmpCode] != "" {
		t.Fatalf("expected no field changes, got %+v", page.fields)
	}
}

func TestOnSearchEmptyCodeSendsNothing(t *testing.T) {
	fields := formPage()
	fields["emp_code"] = "   "
	page := newFakePage(fields)
	binder, backend, _ := newBinder(t, page)

	binder.OnSearch(context.Background())

	if page.lastAlert() != "Enter code" {
		t.Fatalf("unexpected alert %q", page.lastAlert())
	}
	if len(backend.Requests()) != 0 {
		t.Fatal("expected no request")
	}
}

func TestOnRowClickSearchesFirstCell(t *testing.T) {
	page := newFakePage(formPage())
	binder, backend, _ := newBinder(t, page)
	backend.Seed(employee.Employee{Code: "E5", FirstName: "Linus"})

	binder.OnRowClick(context.Background(), []string{" E5 ", "Linus", "IT"})

	if page.fields["emp_code"] != "E5" || page.fields["first_name"] != "Linus" {
		t.Fatalf("unexpected fields %+v", page.fields)
	}
}

func TestOnDeleteRequiresConfirmation(t *testing.T) {
	page := newFakePage(formPage())
	binder, backend, _ := newBinder(t, page)
	emp := backend.Seed(employee.Employee{Code: "E1"})

	binder.OnDelete(context.Background(), "1")

	if len(page.confirms) != 1 || page.confirms[0] != DeleteConfirmation {
		t.Fatalf("expected confirmation prompt, got %v", page.confirms)
	}
	if len(backend.Requests()) != 0 {
		t.Fatal("expected no request without confirmation")
	}
	if _, ok := backend.Employee(emp.Code); !ok {
		t.Fatal("expected employee kept")
	}
}

func TestOnDeleteConfirmedReloadsImmediately(t *testing.T) {
	page := newFakePage(formPage())
	page.confirm = true
	binder, backend, scheduler := newBinder(t, page)
	backend.Seed(employee.Employee{Code: "E1"})
	backend.Seed(employee.Employee{Code: "E2"})

	binder.OnDelete(context.Background(), "1")

	if page.alerts[0] != "Deleted" {
		t.Fatalf("unexpected alerts %v", page.alerts)
	}
	if page.resets != 1 || len(scheduler.queued) != 0 {
		t.Fatal("expected an immediate reload")
	}
	if len(page.rows) != 1 || page.rows[0].Code != "E2" {
		t.Fatalf("expected refreshed table, got %+v", page.rows)
	}
}

func TestOnDeleteFailure(t *testing.T) {
	page := newFakePage(formPage())
	page.confirm = true
	binder, _, _ := newBinder(t, page)

	binder.OnDelete(context.Background(), "42")

	if !strings.HasPrefix(page.lastAlert(), "Delete error: ") {
		t.Fatalf("expected html 404 reported as a delete error, got %q", page.lastAlert())
	}
	if page.resets != 0 {
		t.Fatal("expected no reload")
	}
}

func stubBackend(t *testing.T, status int, contentType, body string) *client.Client {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	c, err := client.New(client.Options{BaseURL: ts.URL, Timeout: 2 * time.Second})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func TestOnDeleteServerErrorPage(t *testing.T) {
	page := newFakePage(formPage())
	page.confirm = true
	binder := &Binder{Page: page, Backend: stubBackend(t, http.StatusInternalServerError, "text/html", "<html>oops</html>")}

	binder.OnDelete(context.Background(), "1")

	if !strings.HasPrefix(page.lastAlert(), "Delete error: ") {
		t.Fatalf("unexpected alert %q", page.lastAlert())
	}
}

func TestOnDeleteApplicationFailure(t *testing.T) {
	page := newFakePage(formPage())
	page.confirm = true
	binder := &Binder{Page: page, Backend: stubBackend(t, http.StatusConflict, "application/json", `{"ok":false,"error":"employee is locked"}`)}

	binder.OnDelete(context.Background(), "1")

	if page.lastAlert() != "Delete failed: employee is locked" {
		t.Fatalf("unexpected alert %q", page.lastAlert())
	}
}

func TestOnSaveServerErrorPage(t *testing.T) {
	page := newFakePage(formPage())
	page.fields["emp_code"] = "E1"
	binder := &Binder{Page: page, Backend: stubBackend(t, http.StatusInternalServerError, "text/html", "<html>oops</html>")}

	binder.OnSave(context.Background())

	if !strings.HasPrefix(page.lastAlert(), "Save error: ") {
		t.Fatalf("unexpected alert %q", page.lastAlert())
	}
}

func TestOnCalculatePayroll(t *testing.T) {
	fields := map[string]string{
		"emp_code":     "E42",
		"first_name":   "Ada",
		"last_name":    "Lovelace",
		"basic_salary": "3000",
		"total_days":   "30",
		"absents":      "2",
		"medical":      "200",
		"conveyance":   "100",
		"pf":           "150",
		"overtime":     "5",
		"deducted":     "50",
		"added":        "",
		"net_salary":   "",
	}
	page := newFakePage(fields)
	binder := &Binder{Page: page}

	result := binder.OnCalculatePayroll()

	if result.Gross != 3193.75 {
		t.Fatalf("expected gross 3193.75, got %v", result.Gross)
	}
	if page.fields["net_salary"] != "2993.75" {
		t.Fatalf("unexpected net %q", page.fields["net_salary"])
	}
	want := "Employee: E42\nName: Ada Lovelace\nNet: 2993.75"
	if page.texts[ElementReceiptArea] != want {
		t.Fatalf("unexpected receipt %q", page.texts[ElementReceiptArea])
	}
}

func TestOnCalculatePayrollWithoutConveyanceField(t *testing.T) {
	page := newFakePage(map[string]string{"basic_salary": "3000", "total_days": "30"})
	binder := &Binder{Page: page}

	result := binder.OnCalculatePayroll()
	if result.Net != 3000 {
		t.Fatalf("expected net 3000, got %v", result.Net)
	}
	if !strings.HasPrefix(page.texts[ElementReceiptArea], "Employee: \nName:  \n") {
		t.Fatalf("unexpected receipt %q", page.texts[ElementReceiptArea])
	}
}

func TestCalculatorWidget(t *testing.T) {
	page := newFakePage(formPage())
	binder := &Binder{Page: page}

	binder.OnCalcKey("1")
	binder.OnCalcKey("2")
	binder.OnCalcOp("+")
	binder.OnCalcKey("3")
	if page.fields[FieldCalcScreen] != "12 + 3" {
		t.Fatalf("unexpected screen %q", page.fields[FieldCalcScreen])
	}
	binder.OnCalcEquals()
	if page.fields[FieldCalcScreen] != "15" {
		t.Fatalf("expected 15, got %q", page.fields[FieldCalcScreen])
	}

	binder.OnCalcClear()
	binder.OnCalcKey("5")
	binder.OnCalcKey("+")
	binder.OnCalcEquals()
	if page.fields[FieldCalcScreen] != "Err" {
		t.Fatalf("expected Err, got %q", page.fields[FieldCalcScreen])
	}
	if len(page.alerts) != 0 {
		t.Fatalf("expected no alerts, got %v", page.alerts)
	}
}

func TestOnSavePayroll(t *testing.T) {
	fields := formPage()
	fields[FieldPayEmpCode] = "E1"
	fields["month"] = "October"
	fields["year"] = "2026"
	fields["net_salary"] = "2993.75"
	page := newFakePage(fields)
	binder, backend, _ := newBinder(t, page)
	backend.Seed(employee.Employee{Code: "E1"})

	binder.OnSavePayroll(context.Background())

	if len(page.alerts) != 0 {
		t.Fatalf("unexpected alerts %v", page.alerts)
	}
	if got := backend.Payrolls(); len(got) != 1 || got[0].NetSalary != "2993.75" {
		t.Fatalf("unexpected payrolls %+v", got)
	}
	if page.resets != 1 {
		t.Fatal("expected reload after payroll save")
	}

	page.fields[FieldPayEmpCode] = "E404"
	binder.OnSavePayroll(context.Background())
	if page.lastAlert() != "Error: employee not found" {
		t.Fatalf("unexpected alert %q", page.lastAlert())
	}
}

func TestOnPrintAndDownloadPDF(t *testing.T) {
	fields := formPage()
	fields["emp_code"] = "E1"
	fields["net_salary"] = "10.00"
	page := newFakePage(fields)
	printer := &fakePrinter{}
	binder := &Binder{Page: page, Printer: printer}

	binder.OnPrint()
	if len(printer.printed) != 1 || printer.printed[0].Net != "10.00" {
		t.Fatalf("unexpected printed receipts %+v", printer.printed)
	}
	if page.lastAlert() != "Receipt printed to storage/receipts/r.pdf" {
		t.Fatalf("unexpected alert %q", page.lastAlert())
	}

	printer.err = errors.New("disk full")
	binder.OnPrint()
	if page.lastAlert() != "Print error: disk full" {
		t.Fatalf("unexpected alert %q", page.lastAlert())
	}

	binder.OnDownloadPDF()
	if page.lastAlert() != PDFGuidance {
		t.Fatalf("unexpected alert %q", page.lastAlert())
	}
}
