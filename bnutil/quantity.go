package bnutil

import (
	"fmt"
	"math/big"

	"gopkg.in/yaml.v3"
)

// Quantity is a big integer that marshals as a 0x-prefixed hex string.
//
// As text and JSON it accepts hex with or without the prefix. As YAML a
// 0x-prefixed scalar is hex and any other scalar is base 10, so configs can
// write either `0x3b9aca00` or `1000000000`.
type Quantity big.Int

// NewQuantity returns a copy of v; nil is zero.
func NewQuantity(v *big.Int) *Quantity {
	if v == nil {
		return new(Quantity)
	}
	return (*Quantity)(new(big.Int).Set(v))
}

// ToInt returns q as a *big.Int sharing its storage, not a copy.
func (q *Quantity) ToInt() *big.Int {
	return (*big.Int)(q)
}

func (q *Quantity) String() string {
	if q == nil {
		return "<nil>"
	}
	return AddHexPrefix(q.ToInt().Text(16))
}

func (q Quantity) MarshalText() ([]byte, error) {
	s, err := BnToHex(&q)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (q *Quantity) UnmarshalText(input []byte) error {
	v, err := HexToBn(string(input))
	if err != nil {
		return err
	}
	q.ToInt().Set(v)
	return nil
}

func (q Quantity) MarshalYAML() (interface{}, error) {
	return BnToHex(&q)
}

func (q *Quantity) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("quantity must be a scalar")
	}
	var (
		v   *big.Int
		err error
	)
	if HasHexPrefix(value.Value) {
		v, err = HexToBn(value.Value)
	} else {
		v, err = parseDigits(value.Value, value.Value, 10)
	}
	if err != nil {
		return fmt.Errorf("invalid quantity %q: %w", value.Value, err)
	}
	q.ToInt().Set(v)
	return nil
}
