package kernel

import (
	"fmt"
	"math"
	"strings"

	"paperwork/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// minorUnitExponent is the number of decimal places between the major and the minor unit.
const minorUnitExponent = 2

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// MaxAmount is the largest single amount an order accepts: 10 000 000 000.00.
// Every priced component stays within it, so a total never leaves int64.
var MaxAmount = Money{minor: 1_000_000_000_000}

// Money is an amount in minor currency units (cents).
//
// All arithmetic is integer arithmetic. Intermediate sums may be negative,
// for example while a discount is subtracted; callers clamp final totals with
// ClampZero. Money is a value type and safe for concurrent use.
type Money struct {
	minor int64
}

// NewMoney wraps an amount already expressed in minor units.
func NewMoney(minor int64) Money {
	return Money{minor: minor}
}

// ParseMajor converts an amount typed in major units ("25.50") into minor units,
// rounding half away from zero at the second decimal ("0.125" becomes 13).
func ParseMajor(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, errs.NewValueIsRequiredError("amount")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}

	minor := d.Shift(minorUnitExponent).Round(0)
	if minor.Abs().GreaterThan(maxMinorUnits) {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", s, math.MinInt64, math.MaxInt64)
	}

	return Money{minor: minor.IntPart()}, nil
}

// Minor returns the amount in minor units.
func (m Money) Minor() int64 {
	return m.minor
}

// Major renders the amount in major units with exactly two decimals, e.g. "1120.00".
func (m Money) Major() string {
	return decimal.New(m.minor, -minorUnitExponent).StringFixed(minorUnitExponent)
}

// String implements fmt.Stringer using the major-unit representation.
func (m Money) String() string {
	return m.Major()
}

func (m Money) Add(other Money) Money {
	return Money{minor: m.minor + other.minor}
}

func (m Money) Sub(other Money) Money {
	return Money{minor: m.minor - other.minor}
}

// Times multiplies the amount by an integer count (quantity, number of fines).
func (m Money) Times(n int) Money {
	return Money{minor: m.minor * int64(n)}
}

// ClampZero returns max(0, m).
func (m Money) ClampZero() Money {
	if m.minor < 0 {
		return Money{}
	}
	return m
}

func (m Money) IsZero() bool {
	return m.minor == 0
}

func (m Money) IsNegative() bool {
	return m.minor < 0
}

// IsEqual reports whether both amounts hold the same number of minor units.
func (m Money) IsEqual(other Money) bool {
	return m.minor == other.minor
}

// ValidateAmount returns a validation error naming param unless 0 <= m <= MaxAmount.
func (m Money) ValidateAmount(param string) error {
	if m.minor < 0 || m.minor > MaxAmount.minor {
		return errs.NewValueIsOutOfRangeError(param, m.minor, 0, MaxAmount.minor)
	}
	return nil
}

// CheckedAdd adds other to m and fails instead of wrapping around.
func (m Money) CheckedAdd(other Money) (Money, error) {
	if (other.minor > 0 && m.minor > math.MaxInt64-other.minor) ||
		(other.minor < 0 && m.minor < math.MinInt64-other.minor) {
		return Money{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"amount", other.minor, int64(math.MinInt64), int64(math.MaxInt64),
			fmt.Errorf("%s + %s overflows", m, other),
		)
	}
	return Money{minor: m.minor + other.minor}, nil
}

// MinMoney returns the smaller of a and b.
func MinMoney(a, b Money) Money {
	if a.minor < b.minor {
		return a
	}
	return b
}

// SumMoney adds up the given amounts.
func SumMoney(amounts ...Money) Money {
	var total Money
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
