package payroll

import "strings"

type Receipt struct {
	EmployeeCode string
	FirstName    string
	LastName     string
	Net          string
}

func NewReceipt(employeeCode, firstName, lastName string, result Result) Receipt {
	return Receipt{
		EmployeeCode: employeeCode,
		FirstName:    firstName,
		LastName:     lastName,
		Net:          result.NetString(),
	}
}

func (r Receipt) Lines() []string {
	return []string{
		"Employee: " + r.EmployeeCode,
		"Name: " + r.FirstName + " " + r.LastName,
		"Net: " + r.Net,
	}
}

func (r Receipt) String() string {
	return strings.Join(r.Lines(), "\n")
}

// Record is a payroll entry submitted to the backend.
type Record struct {
	EmployeeCode string
	Month        string
	Year         string
	NetSalary    string
}
