// Package money implements an exact, signed, fixed-point decimal type for
// account balances. Balances are never represented as binary floating
// point: every value is an int64 count of ten-thousandths, so addition,
// subtraction, negation and comparison are exact.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Scale is the number of fractional decimal digits Money carries.
const Scale = 4

// scaleFactor is 10^Scale.
const scaleFactor = 10_000

// Money is a signed fixed-point decimal stored as scaled-integer drops
// of 1/10000. Magnitude is bounded by int64, comfortably covering the
// ~10^12 range called for in the data model.
type Money int64

// Zero is the additive identity.
const Zero Money = 0

var (
	// ErrEmpty is returned by Parse for an empty (post-trim) input.
	ErrEmpty = errors.New("empty amount")
	// ErrSyntax is returned by Parse for a value that isn't a decimal literal.
	ErrSyntax = errors.New("invalid decimal amount")
	// ErrPrecision is returned by Parse when more than Scale fractional digits are present.
	ErrPrecision = errors.New("amount has too many fractional digits")
)

// Parse converts a decimal literal (optional sign, optional fractional
// part up to Scale digits, optional surrounding whitespace) into a Money.
// No binary floating point is involved at any point in the conversion.
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmpty
	}

	neg := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		neg = true
		s = s[1:]
	}
	if s == "" {
		return 0, ErrSyntax
	}

	intPart, fracPart, hasFrac := s, "", false
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart, fracPart, hasFrac = s[:idx], s[idx+1:], true
	}
	if intPart == "" {
		intPart = "0"
	}
	if !isDigits(intPart) || (hasFrac && !isDigits(fracPart)) {
		return 0, ErrSyntax
	}
	if len(fracPart) > Scale {
		return 0, ErrPrecision
	}
	for len(fracPart) < Scale {
		fracPart += "0"
	}

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	frac, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	drops := whole*scaleFactor + frac
	if neg {
		drops = -drops
	}
	return Money(drops), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Add returns m + other, exactly.
func (m Money) Add(other Money) Money { return m + other }

// Sub returns m - other, exactly.
func (m Money) Sub(other Money) Money { return m - other }

// Neg returns -m.
func (m Money) Neg() Money { return -m }

// IsPositive reports whether m > 0.
func (m Money) IsPositive() bool { return m > 0 }

// IsNegative reports whether m < 0.
func (m Money) IsNegative() bool { return m < 0 }

// IsZero reports whether m == 0.
func (m Money) IsZero() bool { return m == 0 }

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool { return m < other }

// Abs returns the absolute value of m.
func (m Money) Abs() Money {
	if m < 0 {
		return -m
	}
	return m
}

// String renders the canonical decimal form, e.g. "19.9700" or "-0.3300".
// Trailing zeros are not stripped; Scale fractional digits are always shown.
func (m Money) String() string {
	neg := m < 0
	v := int64(m)
	if neg {
		v = -v
	}
	whole := v / scaleFactor
	frac := v % scaleFactor
	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s%d.%0*d", sign, whole, Scale, frac)
}
