package payroll

import (
	"regexp"
	"strconv"
	"strings"
)

type Inputs struct {
	BasicSalary float64
	TotalDays   int
	Absents     int
	Medical     float64
	Conveyance  float64
	PF          float64
	Overtime    float64
	Deducted    float64
	Added       float64
}

var (
	decimalPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	integerPrefix = regexp.MustCompile(`^[+-]?\d+`)
)

// InputsFromValues applies the per-field default policy: a field that is
// missing, empty or has no numeric prefix takes its default. total_days
// defaults to 30, everything else to 0. A field absent from the page is read
// as the empty string, so absent and empty behave the same.
func InputsFromValues(get func(field string) string) Inputs {
	return Inputs{
		BasicSalary: ParseAmount(get(FieldBasicSalary), 0),
		TotalDays:   ParseCount(get(FieldTotalDays), DefaultTotalDays),
		Absents:     ParseCount(get(FieldAbsents), 0),
		Medical:     ParseAmount(get(FieldMedical), 0),
		Conveyance:  ParseAmount(get(FieldConveyance), 0),
		PF:          ParseAmount(get(FieldPF), 0),
		Overtime:    ParseAmount(get(FieldOvertime), 0),
		Deducted:    ParseAmount(get(FieldDeducted), 0),
		Added:       ParseAmount(get(FieldAdded), 0),
	}
}

// ParseAmount reads the leading decimal number of raw ("12.5kg" is 12.5).
func ParseAmount(raw string, fallback float64) float64 {
	match := decimalPrefix.FindString(strings.TrimSpace(raw))
	if match == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return fallback
	}
	return value
}

// ParseCount reads the leading integer of raw ("28.5" is 28).
func ParseCount(raw string, fallback int) int {
	match := integerPrefix.FindString(strings.TrimSpace(raw))
	if match == "" {
		return fallback
	}
	value, err := strconv.Atoi(match)
	if err != nil {
		return fallback
	}
	return value
}
