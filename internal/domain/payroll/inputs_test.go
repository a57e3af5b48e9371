package payroll

import "testing"

func TestInputsFromValuesDefaults(t *testing.T) {
	in := InputsFromValues(func(string) string { return "" })

	if in.TotalDays != DefaultTotalDays {
		t.Fatalf("expected total days %d, got %d", DefaultTotalDays, in.TotalDays)
	}
	if in.Absents != 0 || in.BasicSalary != 0 || in.Conveyance != 0 || in.PF != 0 {
		t.Fatalf("expected zero defaults, got %+v", in)
	}
}

func TestInputsFromValuesMissingAndEmptyConveyanceMatch(t *testing.T) {
	withEmpty := InputsFromValues(func(field string) string {
		if field == FieldBasicSalary {
			return "1000"
		}
		return ""
	})
	withoutField := InputsFromValues(func(field string) string {
		switch field {
		case FieldBasicSalary:
			return "1000"
		case FieldConveyance:
			return ""
		}
		return ""
	})
	if withEmpty != withoutField {
		t.Fatalf("expected identical inputs, got %+v and %+v", withEmpty, withoutField)
	}
	if Calculate(withEmpty).Net != 1000 {
		t.Fatalf("expected net 1000, got %v", Calculate(withEmpty).Net)
	}
}

func TestInputsFromValuesUnparsableFallsBack(t *testing.T) {
	values := map[string]string{
		FieldBasicSalary: "abc",
		FieldTotalDays:   "n/a",
		FieldAbsents:     "2.9",
		FieldMedical:     " 12.5kg",
		FieldOvertime:    "1e1",
	}
	in := InputsFromValues(func(field string) string { return values[field] })

	if in.BasicSalary != 0 {
		t.Fatalf("expected basic salary 0, got %v", in.BasicSalary)
	}
	if in.TotalDays != 30 {
		t.Fatalf("expected total days 30, got %d", in.TotalDays)
	}
	if in.Absents != 2 {
		t.Fatalf("expected absents 2, got %d", in.Absents)
	}
	if in.Medical != 12.5 {
		t.Fatalf("expected medical 12.5, got %v", in.Medical)
	}
	if in.Overtime != 10 {
		t.Fatalf("expected overtime 10, got %v", in.Overtime)
	}
}

func TestParseCountKeepsExplicitZero(t *testing.T) {
	if got := ParseCount("0", DefaultTotalDays); got != 0 {
		t.Fatalf("expected explicit 0 to be kept, got %d", got)
	}
	if got := ParseCount("-3", 0); got != -3 {
		t.Fatalf("expected -3, got %d", got)
	}
}

func TestParseAmountPrefixes(t *testing.T) {
	cases := map[string]float64{
		"":       7,
		".5":     0.5,
		"-.5":    -0.5,
		"3.":     3,
		"+4":     4,
		"1,000":  1,
		"   9 ":  9,
		"e5":     7,
		"2.5e-1": 0.25,
	}
	for raw, want := range cases {
		if got := ParseAmount(raw, 7); got != want {
			t.Fatalf("ParseAmount(%q): expected %v, got %v", raw, want, got)
		}
	}
}
