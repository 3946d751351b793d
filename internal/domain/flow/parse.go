package flow

import (
	"errors"
	"strings"
	"unicode/utf8"

	"shopbot/internal/domain/money"
)

const (
	NameMinRunes = 2
	NameMaxRunes = 60
	SKUMaxLen    = 32
)

var (
	ErrNameTooShort = errors.New("name must have at least 2 characters")
	ErrInvalidPrice = errors.New("price is not a number")
	ErrEmptySKU     = errors.New("sku has no usable characters")
	ErrInvalidDelta = errors.New("balance delta is not a number")
	ErrZeroDelta    = errors.New("balance delta must not be zero")
)

// ParseName trims the input and cuts it to NameMaxRunes.
func ParseName(s string) (string, error) {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) < NameMinRunes {
		return "", ErrNameTooShort
	}
	if utf8.RuneCountInString(s) > NameMaxRunes {
		s = strings.TrimSpace(string([]rune(s)[:NameMaxRunes]))
	}
	return s, nil
}

// ParsePrice accepts "49,90", "49.90" or "R$ 1.234,56". Negative prices clamp to zero.
func ParsePrice(s string) (money.Cents, error) {
	c, err := money.Parse(s)
	if err != nil {
		return 0, ErrInvalidPrice
	}
	if c < 0 {
		return 0, nil
	}
	return c, nil
}

func ParseSKU(s string) (string, error) {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
		if b.Len() == SKUMaxLen {
			break
		}
	}
	if b.Len() == 0 {
		return "", ErrEmptySKU
	}
	return b.String(), nil
}

// ParseBalanceDelta reads a signed amount. Without an explicit sign the delta
// is a credit.
func ParseBalanceDelta(s string) (money.Cents, error) {
	c, err := money.Parse(s)
	if err != nil {
		return 0, ErrInvalidDelta
	}
	if c == 0 {
		return 0, ErrZeroDelta
	}
	return c, nil
}

// Choice is the admin's answer on the customer edit card.
type Choice int

const (
	ChoiceNone Choice = iota
	ChoiceName
	ChoiceBalance
	ChoiceBlock
)

// ParseEditChoice accepts the menu number or its keyword, in English or Portuguese.
func ParseEditChoice(s string) Choice {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "name", "nome":
		return ChoiceName
	case "2", "balance", "saldo":
		return ChoiceBalance
	case "3", "block", "unblock", "bloquear", "desbloquear":
		return ChoiceBlock
	default:
		return ChoiceNone
	}
}
