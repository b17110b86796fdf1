package valueobject

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/catalog/backend/internal/domain/shared"
)

// NanosPerUnit is the number of fractional nano units in one whole unit
const NanosPerUnit = 1_000_000_000

// MaxNanos is the largest valid fractional amount
const MaxNanos = NanosPerUnit - 1

// Money is a value object representing a monetary amount as an ISO 4217
// currency code plus whole units and fractional nanos (units of 10^-9).
// It is immutable - all operations return new Money instances.
//
// Invariant: units and nanos never disagree on sign. If units > 0 then
// nanos >= 0; if units < 0 then nanos <= 0; if units == 0 nanos may carry
// either sign.
type Money struct {
	currencyCode string
	units        int64
	nanos        int32
}

// NewMoney creates a new Money and validates its invariants.
// The currency code is optional; when present it is normalized to upper
// case and must be a three-letter code.
func NewMoney(currencyCode string, units int64, nanos int32) (Money, error) {
	code, err := normalizeCurrencyCode(currencyCode)
	if err != nil {
		return Money{}, err
	}
	if nanos < -MaxNanos || nanos > MaxNanos {
		return Money{}, shared.NewDomainError(shared.ErrInvalidMoney.Code,
			fmt.Sprintf("nanos %d is outside [-%d, %d]", nanos, MaxNanos, MaxNanos))
	}
	if (units > 0 && nanos < 0) || (units < 0 && nanos > 0) {
		return Money{}, shared.NewDomainError(shared.ErrInvalidMoney.Code,
			fmt.Sprintf("units (%d) and nanos (%d) disagree on sign", units, nanos))
	}
	return Money{currencyCode: code, units: units, nanos: nanos}, nil
}

// NewMoneyFromDecimal creates Money from a decimal amount, splitting it
// into whole units and nanos. Sub-nano precision is truncated.
func NewMoneyFromDecimal(currencyCode string, amount decimal.Decimal) (Money, error) {
	units := amount.Truncate(0)
	frac := amount.Sub(units).Mul(decimal.New(NanosPerUnit, 0)).Truncate(0)
	return NewMoney(currencyCode, units.IntPart(), int32(frac.IntPart()))
}

// NewMoneyFromString creates Money from a decimal string such as "-1.75"
func NewMoneyFromString(currencyCode, amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, shared.NewDomainError(shared.ErrInvalidMoney.Code,
			fmt.Sprintf("invalid amount string: %v", err))
	}
	return NewMoneyFromDecimal(currencyCode, d)
}

// Zero returns a zero-value Money in the given currency
func Zero(currencyCode string) Money {
	m, _ := NewMoney(currencyCode, 0, 0)
	return m
}

// CurrencyCode returns the ISO 4217 currency code, empty when unset
func (m Money) CurrencyCode() string {
	return m.currencyCode
}

// Units returns the whole-unit amount
func (m Money) Units() int64 {
	return m.units
}

// Nanos returns the fractional amount in units of 10^-9
func (m Money) Nanos() int32 {
	return m.nanos
}

// IsZero returns true if the amount is zero
func (m Money) IsZero() bool {
	return m.units == 0 && m.nanos == 0
}

// IsNegative returns true if the amount is below zero
func (m Money) IsNegative() bool {
	return m.units < 0 || (m.units == 0 && m.nanos < 0)
}

// Decimal returns the amount as an exact decimal value
func (m Money) Decimal() decimal.Decimal {
	units := decimal.New(m.units, 0)
	frac := decimal.New(int64(m.nanos), -9)
	return units.Add(frac)
}

// Normalize folds nanos overflow into units and repairs mixed signs.
// It is idempotent; a Money built through NewMoney is already normalized.
func (m Money) Normalize() Money {
	units := m.units + int64(m.nanos)/NanosPerUnit
	nanos := m.nanos % NanosPerUnit
	if units > 0 && nanos < 0 {
		units--
		nanos += NanosPerUnit
	} else if units < 0 && nanos > 0 {
		units++
		nanos -= NanosPerUnit
	}
	return Money{currencyCode: m.currencyCode, units: units, nanos: nanos}
}

// Compare returns -1, 0 or 1 when m is less than, equal to or greater
// than other. Amounts in different currencies fail with CURRENCY_MISMATCH;
// there is no implicit conversion.
func (m Money) Compare(other Money) (int, error) {
	if m.currencyCode != other.currencyCode {
		return 0, shared.NewDomainError(shared.ErrCurrencyMismatch.Code,
			fmt.Sprintf("cannot compare %q with %q", m.currencyCode, other.currencyCode))
	}
	return m.Decimal().Cmp(other.Decimal()), nil
}

// Add returns the sum of both amounts, normalized.
// Returns CURRENCY_MISMATCH if the currency codes differ.
func (m Money) Add(other Money) (Money, error) {
	if m.currencyCode != other.currencyCode {
		return Money{}, shared.NewDomainError(shared.ErrCurrencyMismatch.Code,
			fmt.Sprintf("cannot add %q and %q", m.currencyCode, other.currencyCode))
	}
	return NewMoneyFromDecimal(m.currencyCode, m.Decimal().Add(other.Decimal()))
}

// Negate returns a new Money with the sign reversed
func (m Money) Negate() Money {
	return Money{currencyCode: m.currencyCode, units: -m.units, nanos: -m.nanos}
}

// Equals returns true if both Money values have the same currency and amount
func (m Money) Equals(other Money) bool {
	return m.currencyCode == other.currencyCode && m.units == other.units && m.nanos == other.nanos
}

// String returns a string representation such as "USD -1.75"
func (m Money) String() string {
	if m.currencyCode == "" {
		return m.Decimal().String()
	}
	return fmt.Sprintf("%s %s", m.currencyCode, m.Decimal().String())
}

func normalizeCurrencyCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", nil
	}
	if len(code) != 3 {
		return "", shared.NewDomainError(shared.ErrInvalidMoney.Code,
			fmt.Sprintf("currency code %q is not a three-letter ISO 4217 code", code))
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", shared.NewDomainError(shared.ErrInvalidMoney.Code,
				fmt.Sprintf("currency code %q is not a three-letter ISO 4217 code", code))
		}
	}
	return code, nil
}
