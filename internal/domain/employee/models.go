package employee

import (
	"strconv"
	"strings"
)

const (
	FieldCode         = "emp_code"
	FieldFirstName    = "first_name"
	FieldLastName     = "last_name"
	FieldContact      = "contact"
	FieldEmail        = "email"
	FieldAddress      = "address"
	FieldBasicSalary  = "basic_salary"
	FieldDepartmentID = "department_id"
	FieldRoleID       = "role_id"
	FieldPhoto        = "photo"
)

// LookupFields are the page fields populated from a search hit, in order.
var LookupFields = []string{
	FieldFirstName,
	FieldLastName,
	FieldContact,
	FieldEmail,
	FieldAddress,
	FieldBasicSalary,
}

type Employee struct {
	ID           int64   `json:"id"`
	Code         string  `json:"emp_code"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	DepartmentID *int64  `json:"department_id"`
	RoleID       *int64  `json:"role_id"`
	BasicSalary  float64 `json:"basic_salary"`
	Contact      string  `json:"contact"`
	Email        string  `json:"email"`
	Address      string  `json:"address"`
	Photo        string  `json:"photo"`
}

// FieldValue renders one lookup field for the page. Missing, null and zero
// values all render as the empty string.
func (e Employee) FieldValue(field string) string {
	switch field {
	case FieldCode:
		return e.Code
	case FieldFirstName:
		return e.FirstName
	case FieldLastName:
		return e.LastName
	case FieldContact:
		return e.Contact
	case FieldEmail:
		return e.Email
	case FieldAddress:
		return e.Address
	case FieldBasicSalary:
		if e.BasicSalary == 0 {
			return ""
		}
		return strconv.FormatFloat(e.BasicSalary, 'f', -1, 64)
	case FieldDepartmentID:
		return optionalID(e.DepartmentID)
	case FieldRoleID:
		return optionalID(e.RoleID)
	case FieldPhoto:
		return e.Photo
	}
	return ""
}

func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

func optionalID(id *int64) string {
	if id == nil || *id == 0 {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}

// Summary is one line of the employee export, shown as a table row.
type Summary struct {
	ID          string
	Code        string
	FirstName   string
	LastName    string
	Department  string
	Role        string
	BasicSalary string
	Contact     string
	Email       string
}

// Cells lists the row cells. The employee code is always the first cell.
func (s Summary) Cells() []string {
	return []string{
		s.Code,
		strings.TrimSpace(s.FirstName + " " + s.LastName),
		s.Department,
		s.Role,
		s.BasicSalary,
		s.Contact,
		s.Email,
	}
}
