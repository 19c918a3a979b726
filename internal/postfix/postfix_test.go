package postfix

import (
	"errors"
	"testing"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"9 - 5 + 2 * 3", "9 5 - 2 3 * +"},
		{"1", "1"},
		{"(1 + 2) * 3", "1 2 + 3 *"},
		{"1 + (2 * 3)", "1 2 3 * +"},
		{"8 / 2 % 3", "8 2 / 3 %"},
		{"((((7))))", "7"},
		{"10 - 4 - 3", "10 4 - 3 -"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Translate(tt.expr)
			if err != nil {
				t.Fatalf("Translate(%q): %v", tt.expr, err)
			}
			if got != tt.want {
				t.Errorf("Translate(%q) = %q, want %q", tt.expr, got, tt.want)
			}
		})
	}
}

func TestTranslateErrors(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"", "Error at line 1: open parenthesis or int expected"},
		{"1 +", "Error at line 1: open parenthesis or int expected"},
		{"(1 + 2", "Error at line 1: closed parenthesis expected"},
		{"1 2", "Error at line 1: operator or end of expression expected"},
		{"1 @ 2", "Error at line 1: invalid token '@'"},
		{"x + 1", "Error at line 1: open parenthesis or int expected"},
		{"1.5 * 2", "Error at line 1: open parenthesis or int expected"},
		{"99999999999999999999", "Error at line 1: invalid literal '99999999999999999999'"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := Translate(tt.expr)
			if err == nil {
				t.Fatalf("Translate(%q) succeeded, want error", tt.expr)
			}
			if err.Error() != tt.want {
				t.Errorf("error = %q, want %q", err, tt.want)
			}
		})
	}
}

func TestEval(t *testing.T) {
	tests := []struct {
		expr string
		want int64
	}{
		{"9 5 - 2 3 * +", 10},
		{"7", 7},
		{"7 2 /", 3},
		{"7 2 %", 1},
		{"-7 2 /", -3},
		{"1 2 + 3 *", 9},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Eval(tt.expr)
			if err != nil {
				t.Fatalf("Eval(%q): %v", tt.expr, err)
			}
			if got != tt.want {
				t.Errorf("Eval(%q) = %d, want %d", tt.expr, got, tt.want)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		expr    string
		divZero bool
	}{
		{"1 0 /", true},
		{"1 0 %", true},
		{"1 2 3 - - 0 /", true},
		{"", false},
		{"+", false},
		{"1 +", false},
		{"1 2", false},
		{"1 x +", false},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := Eval(tt.expr)
			if err == nil {
				t.Fatalf("Eval(%q) succeeded, want error", tt.expr)
			}
			if got := errors.Is(err, ErrDivisionByZero); got != tt.divZero {
				t.Errorf("Eval(%q) error = %v, division by zero = %v, want %v", tt.expr, err, got, tt.divZero)
			}
		})
	}
}

func TestRun(t *testing.T) {
	pf, v, err := Run("9 - 5 + 2 * 3")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if pf != "9 5 - 2 3 * +" || v != 10 {
		t.Errorf("Run = %q, %d, want %q, 10", pf, v, "9 5 - 2 3 * +")
	}

	pf, _, err = Run("4 / (2 - 2)")
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("Run error = %v, want %v", err, ErrDivisionByZero)
	}
	if pf != "4 2 2 - /" {
		t.Errorf("postfix = %q, want %q", pf, "4 2 2 - /")
	}
}
