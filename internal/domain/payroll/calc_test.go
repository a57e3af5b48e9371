package payroll

import (
	"math"
	"testing"
)

func TestCalculateScenario(t *testing.T) {
	result := Calculate(Inputs{
		BasicSalary: 3000,
		TotalDays:   30,
		Absents:     2,
		Medical:     200,
		Conveyance:  100,
		PF:          150,
		Overtime:    5,
		Deducted:    50,
	})

	if result.WorkedDays != 28 {
		t.Fatalf("expected 28 worked days, got %d", result.WorkedDays)
	}
	if result.Prorated != 2800 {
		t.Fatalf("expected prorated 2800, got %v", result.Prorated)
	}
	if result.HourlyRate != 12.5 {
		t.Fatalf("expected hourly 12.5, got %v", result.HourlyRate)
	}
	if result.OvertimePay != 93.75 {
		t.Fatalf("expected overtime pay 93.75, got %v", result.OvertimePay)
	}
	if result.Gross != 3193.75 {
		t.Fatalf("expected gross 3193.75, got %v", result.Gross)
	}
	if result.Net != 2993.75 {
		t.Fatalf("expected net 2993.75, got %v", result.Net)
	}
	if result.NetString() != "2993.75" {
		t.Fatalf("expected net string 2993.75, got %s", result.NetString())
	}
}

func TestCalculateWorkedDaysNeverNegative(t *testing.T) {
	result := Calculate(Inputs{BasicSalary: 3000, TotalDays: 30, Absents: 35})
	if result.WorkedDays != 0 {
		t.Fatalf("expected 0 worked days, got %d", result.WorkedDays)
	}
	if result.Prorated != 0 {
		t.Fatalf("expected prorated 0, got %v", result.Prorated)
	}
}

func TestCalculateZeroTotalDaysUsesBasicSalary(t *testing.T) {
	result := Calculate(Inputs{BasicSalary: 1234.5, TotalDays: 0, Overtime: 2})
	if result.Prorated != 1234.5 {
		t.Fatalf("expected prorated to equal basic salary, got %v", result.Prorated)
	}
	// hour base is 0*8, so the divisor falls back to 1
	if result.HourlyRate != 1234.5 {
		t.Fatalf("expected hourly rate against divisor 1, got %v", result.HourlyRate)
	}
	if result.OvertimePay != 1234.5*2*1.5 {
		t.Fatalf("unexpected overtime pay %v", result.OvertimePay)
	}
}

func TestCalculateHourlyDivisorWithZeroSalary(t *testing.T) {
	result := Calculate(Inputs{BasicSalary: 0, TotalDays: 30, Overtime: 10})
	if result.HourlyRate != 0 {
		t.Fatalf("expected hourly 0 against divisor 240, got %v", result.HourlyRate)
	}

	result = Calculate(Inputs{BasicSalary: 480, TotalDays: 30})
	if result.HourlyRate != 2 {
		t.Fatalf("expected hourly 2 against divisor 240, got %v", result.HourlyRate)
	}
}

func TestNetStringRoundsToTwoDecimals(t *testing.T) {
	cases := map[float64]string{
		0:          "0.00",
		1.005:      "1.00",
		2.675:      "2.67",
		1.255:      "1.25",
		0.125:      "0.13",
		-0.125:     "-0.13",
		-0.001:     "-0.00",
		2993.75:    "2993.75",
		-12.344:    "-12.34",
		1000.0 / 3: "333.33",
	}
	for in, want := range cases {
		if got := (Result{Net: in}).NetString(); got != want {
			t.Fatalf("NetString(%v): expected %s, got %s", in, want, got)
		}
	}
}

func TestNetStringFromCalculateUsesBinaryValue(t *testing.T) {
	cases := map[float64]string{
		1.005: "1.00",
		2.675: "2.67",
		1.255: "1.25",
	}
	// zero total days passes the basic salary through unprorated
	for basic, want := range cases {
		if got := Calculate(Inputs{BasicSalary: basic}).NetString(); got != want {
			t.Fatalf("basic %v: expected %s, got %s", basic, want, got)
		}
	}
}

func TestFormatAmountNonFinite(t *testing.T) {
	if got := FormatAmount(math.Inf(1)); got != "Infinity" {
		t.Fatalf("expected Infinity, got %s", got)
	}
	if got := FormatAmount(math.NaN()); got != "NaN" {
		t.Fatalf("expected NaN, got %s", got)
	}
}

func TestReceiptString(t *testing.T) {
	receipt := NewReceipt("E42", "Ada", "Lovelace", Result{Net: 2993.75})
	want := "Employee: E42\nName: Ada Lovelace\nNet: 2993.75"
	if receipt.String() != want {
		t.Fatalf("expected %q, got %q", want, receipt.String())
	}
}
