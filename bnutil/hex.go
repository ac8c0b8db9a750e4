package bnutil

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"
)

// HexToBn parses a base-16 string, with or without the "0x" prefix.
// An empty digit string is zero.
func HexToBn(input string) (*big.Int, error) {
	return parseDigits(input, StripHexPrefix(input), 16)
}

// BnToHex renders value as lowercase base 16 with a "0x" prefix.
func BnToHex(value any) (string, error) {
	v, err := toBig("bnToHex", value)
	if err != nil {
		return "", err
	}
	return AddHexPrefix(v.Text(16)), nil
}

// toBig returns a read-only view of value; callers must not mutate it.
func toBig(op string, value any) (*big.Int, error) {
	switch v := value.(type) {
	case *big.Int:
		if v != nil {
			return v, nil
		}
	case big.Int:
		return &v, nil
	case *Quantity:
		if v != nil {
			return (*big.Int)(v), nil
		}
	case Quantity:
		return (*big.Int)(&v), nil
	case *hexutil.Big:
		if v != nil {
			return v.ToInt(), nil
		}
	case hexutil.Big:
		return v.ToInt(), nil
	case *math.HexOrDecimal256:
		if v != nil {
			return (*big.Int)(v), nil
		}
	case math.HexOrDecimal256:
		return (*big.Int)(&v), nil
	case *uint256.Int:
		if v != nil {
			return v.ToBig(), nil
		}
	case uint256.Int:
		return v.ToBig(), nil
	}
	return nil, &TypeError{Op: op, Value: value}
}

func parseDigits(input, digits string, base int) (*big.Int, error) {
	for i := 0; i < len(digits); i++ {
		if digitValue(digits[i]) >= base {
			return nil, &ParseError{Input: input, Base: base, Offset: i}
		}
	}
	if digits == "" {
		return new(big.Int), nil
	}
	// Every byte is a valid digit, so SetString cannot fail.
	v, _ := new(big.Int).SetString(digits, base)
	return v, nil
}

func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}
	return 1 << 8
}
