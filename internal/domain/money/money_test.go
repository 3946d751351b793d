//go:build unit

package money_test

import (
	"testing"

	"shopbot/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		want  money.Cents
		errIs error
	}{
		{name: "comma decimal", in: "49,90", want: 4990},
		{name: "dot decimal", in: "49.90", want: 4990},
		{name: "integer", in: "25", want: 2500},
		{name: "single fraction digit", in: "10,5", want: 1050},
		{name: "brazilian thousands", in: "1.234,56", want: 123456},
		{name: "us thousands", in: "1,234.56", want: 123456},
		{name: "thousands only", in: "1.234", want: 123400},
		{name: "currency prefix", in: "R$ 12,00", want: 1200},
		{name: "negative", in: "-5,00", want: -500},
		{name: "explicit plus", in: "+5", want: 500},
		{name: "leading separator", in: ",50", want: 50},
		{name: "empty", in: "  ", errIs: money.ErrInvalidAmount},
		{name: "letters", in: "abc", errIs: money.ErrInvalidAmount},
		{name: "sign only", in: "-", errIs: money.ErrInvalidAmount},
		{name: "four fraction digits", in: "1,2345", errIs: money.ErrInvalidAmount},
		{name: "trailing separator", in: "12,", errIs: money.ErrInvalidAmount},
		{name: "too large", in: "99999999999", errIs: money.ErrOutOfRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := money.Parse(tc.in)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCentsString(t *testing.T) {
	assert.Equal(t, "49.90", money.Cents(4990).String())
	assert.Equal(t, "0.05", money.Cents(5).String())
	assert.Equal(t, "0.00", money.Cents(0).String())
	assert.Equal(t, "-19.90", money.Cents(-1990).String())
	assert.Equal(t, "25.00", money.FromUnits(25).String())
}

func TestShortfall(t *testing.T) {
	assert.Equal(t, money.Cents(1990), money.Shortfall(4990, 3000))
	assert.Equal(t, money.Cents(0), money.Shortfall(3000, 4990))
	assert.Equal(t, money.Cents(0), money.Shortfall(3000, 3000))
}
