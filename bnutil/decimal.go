package bnutil

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// BnMultiplyByDecimal multiplies target by a non-negative decimal multiplier
// such as "1.2" and truncates the product toward zero.
func BnMultiplyByDecimal(target *big.Int, multiplier string) (*big.Int, error) {
	if target == nil {
		return nil, &TypeError{Op: "bnMultiplyByDecimal", Value: target}
	}
	trimmed := strings.TrimSpace(multiplier)
	if !isPlainDecimal(trimmed) {
		return nil, fmt.Errorf("multiplier %q: invalid number format", multiplier)
	}
	m, err := decimal.NewFromString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("multiplier %q: %w", multiplier, err)
	}
	if m.Equal(decimal.NewFromInt(1)) {
		return new(big.Int).Set(target), nil
	}
	return decimal.NewFromBigInt(target, 0).Mul(m).BigInt(), nil
}

// ParseUnits converts a non-negative decimal amount into base units,
// e.g. "1.23" with 6 decimals is 1230000.
func ParseUnits(amount string, decimals uint8) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return nil, errors.New("amount is empty")
	}
	if strings.HasPrefix(amount, "-") {
		return nil, errors.New("amount must be non-negative")
	}
	if !isPlainDecimal(amount) {
		return nil, errors.New("invalid number format")
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid number format: %w", err)
	}
	if places := -d.Exponent(); places > int32(decimals) {
		return nil, fmt.Errorf("too many decimal places: %d > %d", places, decimals)
	}
	return d.Shift(int32(decimals)).BigInt(), nil
}

// isPlainDecimal reports whether s is digits with at most one '.', and no sign
// or exponent. Exponents would let a short input expand into a huge integer.
func isPlainDecimal(s string) bool {
	digits, dots := 0, 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case '0' <= c && c <= '9':
			digits++
		case c == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

// FormatUnits is the inverse of ParseUnits. Trailing fractional zeros are dropped.
func FormatUnits(value *big.Int, decimals uint8) string {
	if value == nil {
		return "0"
	}
	return decimal.NewFromBigInt(value, -int32(decimals)).String()
}
