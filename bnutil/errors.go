package bnutil

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDigit is wrapped by every ParseError.
	ErrInvalidDigit = errors.New("invalid digit")
	// ErrDivideByZero is returned when a fraction's denominator is zero.
	ErrDivideByZero = errors.New("division by zero")
)

// ParseError reports a numeric literal with a byte that is not a digit in Base.
type ParseError struct {
	Input  string
	Base   int
	Offset int
}

func (e *ParseError) Error() string {
	if e == nil {
		return "parse failed"
	}
	return fmt.Sprintf("parse %q as base-%d integer: invalid digit at offset %d", e.Input, e.Base, e.Offset)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return ErrInvalidDigit
}

// TypeError reports a value that cannot be used as an integer by Op.
type TypeError struct {
	Op    string
	Value any
}

func (e *TypeError) Error() string {
	if e == nil {
		return "unsupported value"
	}
	return fmt.Sprintf("%s: unsupported value of type %T", e.Op, e.Value)
}
