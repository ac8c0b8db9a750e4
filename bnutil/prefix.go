package bnutil

import "strings"

const hexPrefix = "0x"

// HasHexPrefix reports whether s starts with a lowercase "0x".
func HasHexPrefix(s string) bool {
	return strings.HasPrefix(s, hexPrefix)
}

// AddHexPrefix returns value with "0x" prepended. A string that already has
// the prefix, and any value whose type is not string, is returned unchanged.
func AddHexPrefix[T any](value T) T {
	s, ok := any(value).(string)
	if !ok || HasHexPrefix(s) {
		return value
	}
	return any(hexPrefix + s).(T)
}

// StripHexPrefix returns value without a leading "0x". Values whose type is
// not string are returned unchanged.
func StripHexPrefix[T any](value T) T {
	s, ok := any(value).(string)
	if !ok || !HasHexPrefix(s) {
		return value
	}
	return any(s[len(hexPrefix):]).(T)
}
