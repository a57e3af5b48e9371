package calc

import (
	"math"
	"strconv"
)

// Node is an arithmetic expression tree.
type Node interface {
	Eval() (float64, error)
}

type Number struct {
	Value float64
}

func (n Number) Eval() (float64, error) {
	return n.Value, nil
}

type Unary struct {
	Op      byte
	Operand Node
}

func (u Unary) Eval() (float64, error) {
	v, err := u.Operand.Eval()
	if err != nil {
		return 0, err
	}
	if u.Op == '-' {
		return -v, nil
	}
	return v, nil
}

type Binary struct {
	Op          byte
	Left, Right Node
}

func (b Binary) Eval() (float64, error) {
	left, err := b.Left.Eval()
	if err != nil {
		return 0, err
	}
	right, err := b.Right.Eval()
	if err != nil {
		return 0, err
	}

	var out float64
	switch b.Op {
	case '+':
		out = left + right
	case '-':
		out = left - right
	case '*':
		out = left * right
	case '/':
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		out = left / right
	default:
		return 0, &SyntaxError{Msg: "unknown operator " + strconv.QuoteRune(rune(b.Op))}
	}

	if math.IsInf(out, 0) || math.IsNaN(out) {
		return 0, ErrOverflow
	}
	return out, nil
}
