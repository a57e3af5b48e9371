package payroll

const (
	FieldBasicSalary = "basic_salary"
	FieldTotalDays   = "total_days"
	FieldAbsents     = "absents"
	FieldMedical     = "medical"
	FieldConveyance  = "conveyance"
	FieldPF          = "pf"
	FieldOvertime    = "overtime"
	FieldDeducted    = "deducted"
	FieldAdded       = "added"
	FieldNetSalary   = "net_salary"

	FieldMonth = "month"
	FieldYear  = "year"

	DefaultTotalDays = 30

	HoursPerDay        = 8
	OvertimeMultiplier = 1.5
)
