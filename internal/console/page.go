package console

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"hrdesk/internal/domain/employee"
	"hrdesk/internal/domain/payroll"
	"hrdesk/internal/ui"
)

// Fields lists the form fields of the desk page, in display order.
var Fields = []string{
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
	ui.FieldPayEmpCode,
	payroll.FieldMonth,
	payroll.FieldYear,
	payroll.FieldTotalDays,
	payroll.FieldAbsents,
	payroll.FieldMedical,
	payroll.FieldConveyance,
	payroll.FieldPF,
	payroll.FieldOvertime,
	payroll.FieldDeducted,
	payroll.FieldAdded,
	payroll.FieldNetSalary,
	ui.FieldCalcScreen,
}

// Page is a terminal rendition of the desk page. Confirmations are answered
// from the same line stream the console reads commands from.
type Page struct {
	out       io.Writer
	answers   <-chan string
	assumeYes bool

	fields map[string]string
	texts  map[string]string
	rows   []employee.Summary
}

func NewPage(out io.Writer, answers <-chan string, assumeYes bool) *Page {
	p := &Page{out: out, answers: answers, assumeYes: assumeYes}
	p.Reset()
	return p
}

func (p *Page) Field(name string) (string, bool) {
	value, ok := p.fields[name]
	return value, ok
}

func (p *Page) SetField(name, value string) {
	p.fields[name] = value
	if name == ui.FieldCalcScreen {
		fmt.Fprintf(p.out, "[calc] %s\n", value)
	}
}

func (p *Page) SetText(element, text string) {
	p.texts[element] = text
	if element == ui.ElementReceiptArea {
		fmt.Fprintf(p.out, "--- receipt ---\n%s\n---------------\n", text)
		return
	}
	fmt.Fprintf(p.out, "[%s] %s\n", element, text)
}

func (p *Page) Text(element string) string {
	return p.texts[element]
}

func (p *Page) Alert(message string) {
	fmt.Fprintf(p.out, "! %s\n", message)
}

func (p *Page) Confirm(message string) bool {
	if p.assumeYes {
		fmt.Fprintf(p.out, "? %s [y/N] y\n", message)
		return true
	}
	fmt.Fprintf(p.out, "? %s [y/N] ", message)
	answer, ok := <-p.answers
	if !ok {
		fmt.Fprintln(p.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

func (p *Page) Reset() {
	p.fields = make(map[string]string, len(Fields))
	for _, name := range Fields {
		p.fields[name] = ""
	}
	p.texts = map[string]string{}
}

func (p *Page) SetRows(rows []employee.Summary) {
	p.rows = rows
	fmt.Fprintf(p.out, "[emp_table] %d employees\n", len(rows))
}

func (p *Page) Rows() []employee.Summary {
	return p.rows
}

// Row returns the cells of the 1-based row n.
func (p *Page) Row(n int) ([]string, bool) {
	if n < 1 || n > len(p.rows) {
		return nil, false
	}
	return p.rows[n-1].Cells(), true
}

func (p *Page) PrintForm() {
	w := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	for _, name := range Fields {
		fmt.Fprintf(w, "%s\t%s\n", name, p.fields[name])
	}
	extra := make([]string, 0)
	for name := range p.fields {
		if !known(name) {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		fmt.Fprintf(w, "%s\t%s\n", name, p.fields[name])
	}
	_ = w.Flush()
}

func (p *Page) PrintTable() {
	w := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tcode\tname\tdepartment\trole\tsalary\tcontact\temail\tid")
	for i, row := range p.rows {
		fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, strings.Join(row.Cells(), "\t"), row.ID)
	}
	_ = w.Flush()
}

func known(name string) bool {
	for _, field := range Fields {
		if field == name {
			return true
		}
	}
	return false
}
