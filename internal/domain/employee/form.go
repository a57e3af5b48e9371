package employee

import "strings"

// Form is the employee form as submitted on save.
type Form struct {
	Code         string
	FirstName    string
	LastName     string
	Contact      string
	Email        string
	Address      string
	BasicSalary  string
	DepartmentID string
	RoleID       string
	PhotoPath    string
}

type FormField struct {
	Name  string
	Value string
}

// FormFromValues reads every form field through get. Values are sent as
// typed; the backend owns validation.
func FormFromValues(get func(field string) string) Form {
	return Form{
		Code:         get(FieldCode),
		FirstName:    get(FieldFirstName),
		LastName:     get(FieldLastName),
		Contact:      get(FieldContact),
		Email:        get(FieldEmail),
		Address:      get(FieldAddress),
		BasicSalary:  get(FieldBasicSalary),
		DepartmentID: get(FieldDepartmentID),
		RoleID:       get(FieldRoleID),
		PhotoPath:    strings.TrimSpace(get(FieldPhoto)),
	}
}

// Fields returns the text fields in submission order. The photo is a file
// part and is not included.
func (f Form) Fields() []FormField {
	return []FormField{
		{Name: FieldCode, Value: f.Code},
		{Name: FieldFirstName, Value: f.FirstName},
		{Name: FieldLastName, Value: f.LastName},
		{Name: FieldContact, Value: f.Contact},
		{Name: FieldEmail, Value: f.Email},
		{Name: FieldAddress, Value: f.Address},
		{Name: FieldBasicSalary, Value: f.BasicSalary},
		{Name: FieldDepartmentID, Value: f.DepartmentID},
		{Name: FieldRoleID, Value: f.RoleID},
	}
}
