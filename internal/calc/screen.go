package calc

import (
	"math"
	"strconv"
	"strings"
)

const ErrorMarker = "Err"

// Screen is the calculator display buffer.
type Screen struct {
	text string
}

func (s *Screen) Text() string {
	return s.text
}

func (s *Screen) SetText(text string) {
	s.text = text
}

// Key appends a digit or other key label as typed.
func (s *Screen) Key(label string) {
	s.text += label
}

// Op appends an operator label padded with spaces.
func (s *Screen) Op(label string) {
	s.text += " " + label + " "
}

func (s *Screen) Clear() {
	s.text = ""
}

// Equals replaces the buffer with its value, or with ErrorMarker when the
// buffer does not evaluate. An empty buffer evaluates to 0.
func (s *Screen) Equals() error {
	expr := s.text
	if expr == "" {
		expr = "0"
	}
	value, err := Evaluate(expr)
	if err != nil {
		s.text = ErrorMarker
		return err
	}
	s.text = FormatNumber(value)
	return nil
}

// FormatNumber renders value in its shortest round-trip form. Magnitudes
// from 1e21 up and below 1e-6 use an exponent without zero padding (1.5e-7).
func FormatNumber(value float64) string {
	if value == 0 {
		return "0"
	}
	abs := math.Abs(value)
	if abs >= 1e21 || abs < 1e-6 {
		return trimExponent(strconv.FormatFloat(value, 'e', -1, 64))
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// trimExponent turns Go's "e-07" into "e-7".
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	digits := strings.TrimLeft(s[i+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return s[:i+2] + digits
}
