package money

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrOutOfRange    = errors.New("amount out of range")
)

// Hard ceiling on any single parsed amount, 10 million in currency units
const maxCents = 1_000_000_000

// Cents is a currency amount with two decimal places of precision.
type Cents int64

func FromUnits(units int64) Cents {
	return Cents(units * 100)
}

func (c Cents) Int64() int64 { return int64(c) }

func (c Cents) IsPositive() bool { return c > 0 }

// String renders the amount as "1234.50", with a leading "-" for negative values.
func (c Cents) String() string {
	v := int64(c)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	units := v / 100
	frac := v % 100
	s := strconv.FormatInt(units, 10) + "."
	if frac < 10 {
		s += "0"
	}
	return sign + s + strconv.FormatInt(frac, 10)
}

// Shortfall returns how much is missing for balance to cover price, never negative.
func Shortfall(price, balance Cents) Cents {
	if d := price - balance; d > 0 {
		return d
	}
	return 0
}

// Parse reads a decimal amount accepting either comma or dot as the decimal
// separator ("49,90", "49.90", "1.234,56", "1,234.56") and rounds to cents.
// A leading sign is honored.
func Parse(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "R$"), "$")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, ErrInvalidAmount
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if s == "" {
		return 0, ErrInvalidAmount
	}

	normalized, err := normalizeSeparators(s)
	if err != nil {
		return 0, err
	}

	f, err := strconv.ParseFloat(normalized, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalidAmount
	}
	cents := math.Round(f * 100)
	if cents > maxCents {
		return 0, ErrOutOfRange
	}
	if neg {
		cents = -cents
	}
	return Cents(int64(cents)), nil
}

// normalizeSeparators turns a locale-formatted number into a plain "1234.56".
// The right-most separator is taken as the decimal point when it is followed
// by one or two digits; every other separator is a thousands separator.
func normalizeSeparators(s string) (string, error) {
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' && r != ',' {
			return "", ErrInvalidAmount
		}
	}

	last := strings.LastIndexAny(s, ".,")
	if last == -1 {
		return s, nil
	}

	intPart := s[:last]
	fracPart := s[last+1:]
	if len(fracPart) == 0 || len(fracPart) > 2 {
		// "1.234" or "1,234": thousands separator only
		if len(fracPart) == 3 {
			return strings.NewReplacer(".", "", ",", "").Replace(s), nil
		}
		return "", ErrInvalidAmount
	}
	intPart = strings.NewReplacer(".", "", ",", "").Replace(intPart)
	if intPart == "" {
		intPart = "0"
	}
	return intPart + "." + fracPart, nil
}
