package payroll

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// float64 fractions terminate within 1074 decimal digits, so formatting at
// this precision yields the exact binary value.
const exactDigits = 1074

type Result struct {
	WorkedDays  int
	Prorated    float64
	HourlyRate  float64
	OvertimePay float64
	Gross       float64
	Net         float64
}

// Calculate never divides by zero: with no total days the basic salary is
// used unprorated, and a zero hour base falls back to a divisor of 1.
func Calculate(in Inputs) Result {
	worked := in.TotalDays - in.Absents
	if worked < 0 {
		worked = 0
	}

	prorated := in.BasicSalary
	if in.TotalDays != 0 {
		prorated = (in.BasicSalary / float64(in.TotalDays)) * float64(worked)
	}

	hourBase := float64(in.TotalDays * HoursPerDay)
	if hourBase == 0 {
		hourBase = 1
	}
	hourly := in.BasicSalary / hourBase
	overtimePay := in.Overtime * hourly * OvertimeMultiplier

	gross := prorated + in.Medical + in.Conveyance + overtimePay + in.Added
	net := gross - in.PF - in.Deducted

	return Result{
		WorkedDays:  worked,
		Prorated:    prorated,
		HourlyRate:  hourly,
		OvertimePay: overtimePay,
		Gross:       gross,
		Net:         net,
	}
}

// NetString is the net salary rounded to two decimals.
func (r Result) NetString() string {
	return FormatAmount(r.Net)
}

// FormatAmount rounds the exact binary value of amount to two decimals, ties
// away from zero, so 1.005 (stored as 1.00499...) gives "1.00". A negative
// amount keeps its sign even when it rounds to zero.
func FormatAmount(amount float64) string {
	switch {
	case math.IsNaN(amount):
		return "NaN"
	case math.IsInf(amount, 1):
		return "Infinity"
	case math.IsInf(amount, -1):
		return "-Infinity"
	}

	exact := decimal.RequireFromString(strconv.FormatFloat(math.Abs(amount), 'f', exactDigits, 64))
	out := exact.StringFixed(2)
	if amount < 0 && !strings.HasPrefix(out, "-") {
		out = "-" + out
	}
	return out
}
