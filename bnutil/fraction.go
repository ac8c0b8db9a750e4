package bnutil

import "math/big"

// Operand is a fraction term: a native integer, a base-10 digit string or a *big.Int.
type Operand interface {
	int | int32 | int64 | uint | uint32 | uint64 | string | *big.Int
}

// BnMultiplyByFraction returns target*numerator/denominator. The division
// truncates toward zero, so the result is not an exact fraction.
func BnMultiplyByFraction[N, D Operand](target *big.Int, numerator N, denominator D) (*big.Int, error) {
	if target == nil {
		return nil, &TypeError{Op: "bnMultiplyByFraction", Value: target}
	}
	num, err := operandToBig(numerator)
	if err != nil {
		return nil, err
	}
	den, err := operandToBig(denominator)
	if err != nil {
		return nil, err
	}
	if den.Sign() == 0 {
		return nil, ErrDivideByZero
	}
	out := new(big.Int).Mul(target, num)
	return out.Quo(out, den), nil
}

func operandToBig[T Operand](v T) (*big.Int, error) {
	switch x := any(v).(type) {
	case int:
		return big.NewInt(int64(x)), nil
	case int32:
		return big.NewInt(int64(x)), nil
	case int64:
		return big.NewInt(x), nil
	case uint:
		return new(big.Int).SetUint64(uint64(x)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(x)), nil
	case uint64:
		return new(big.Int).SetUint64(x), nil
	case string:
		return parseDigits(x, x, 10)
	case *big.Int:
		if x != nil {
			return x, nil
		}
	}
	return nil, &TypeError{Op: "bnMultiplyByFraction", Value: v}
}
