package ccx

import (
	"math"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Decimals is the number of decimal places of one CCX.
const Decimals = 6

var (
	rawPerCoin = decimal.New(1, Decimals)
	maxRaw     = decimal.New(math.MaxInt64, 0)
)

// FromRaw converts a raw amount to CCX.
func FromRaw(raw int64) decimal.Decimal {
	return decimal.New(raw, -Decimals)
}

// ToRaw converts an amount of CCX to raw units.
func ToRaw(amount decimal.Decimal) (int64, error) {
	if amount.IsNegative() {
		return 0, errors.Errorf("amount %s is negative", amount)
	}

	raw := amount.Mul(rawPerCoin)
	if !raw.Equal(raw.Truncate(0)) {
		return 0, errors.Errorf("amount %s has more than %d decimal places", amount, Decimals)
	}
	if raw.GreaterThan(maxRaw) {
		return 0, errors.Errorf("amount %s is too large", amount)
	}
	return raw.IntPart(), nil
}

// ParseAmount parses a CCX amount such as "12.5" into raw units.
func ParseAmount(s string) (int64, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.Wrapf(err, "parse amount %q failed", s)
	}
	return ToRaw(amount)
}
