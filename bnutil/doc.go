// Package bnutil converts between hex strings and *big.Int values and scales
// big integers by fractions. Every function is pure and safe for concurrent use;
// inputs are never mutated.
//
// Usage example (not compiled):
//
//	v, err := bnutil.HexToBn("0x3b9aca00") // 1000000000
//	if err != nil { ... }
//
//	fee, err := bnutil.BnMultiplyByFraction(v, 12, 10) // 1200000000
//	s, _ := bnutil.BnToHex(fee)                         // "0x47868c00"
//
//	bnutil.AddHexPrefix("ff")   // "0xff"
//	bnutil.StripHexPrefix("0xff") // "ff"
//	bnutil.AddHexPrefix(42)     // 42, non-strings pass through
package bnutil
