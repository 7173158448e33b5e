// Package numeric holds the small hex/address/register parsing helpers
// shared by the assembler's origin resolution and operand classifier.
package numeric

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxAddress is the highest address the 12-bit address space can hold.
const MaxAddress = 0x0FFF

// ParseAddress parses a hex literal (optionally prefixed with "0x") as a
// 12-bit address. It rejects values above 0xFFF but does not require the
// result to be even; callers that need an even address (origin
// directives) check that separately.
func ParseAddress(s string) (uint16, error) {
	trimmed := strings.TrimPrefix(strings.ToLower(s), "0x")
	n, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("parsing address %q: %w", s, err)
	}
	if n > MaxAddress {
		return 0, fmt.Errorf("address %q out of range: must be <= 0x%03X", s, MaxAddress)
	}
	return uint16(n), nil
}

// ParseEvenAddress parses an address via ParseAddress and additionally
// requires it to be even, as origin directives do.
func ParseEvenAddress(s string) (uint16, error) {
	addr, err := ParseAddress(s)
	if err != nil {
		return 0, err
	}
	if addr%2 != 0 {
		return 0, fmt.Errorf("address %q must be even", s)
	}
	return addr, nil
}

// ParseByte parses a hex literal (optionally prefixed with "0x") as an
// 8-bit immediate, rejecting values above 0xFF.
func ParseByte(s string) (uint8, error) {
	trimmed := strings.TrimPrefix(strings.ToLower(s), "0x")
	n, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("parsing byte %q: %w", s, err)
	}
	if n > 0xFF {
		return 0, fmt.Errorf("value %q out of range: must be <= 0xFF", s)
	}
	return uint8(n), nil
}

// ParseNibble parses a hex literal (optionally prefixed with "0x") as a
// 4-bit immediate, rejecting values above 0xF.
func ParseNibble(s string) (uint8, error) {
	trimmed := strings.TrimPrefix(strings.ToLower(s), "0x")
	n, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("parsing nibble %q: %w", s, err)
	}
	if n > 0xF {
		return 0, fmt.Errorf("value %q out of range: must be <= 0xF", s)
	}
	return uint8(n), nil
}

// ParseRegister parses a register name "v0".."vf" (case-insensitive) and
// returns its index 0..15.
func ParseRegister(s string) (uint8, bool) {
	s = strings.ToLower(s)
	if len(s) != 2 || s[0] != 'v' {
		return 0, false
	}
	n, err := strconv.ParseUint(string(s[1]), 16, 8)
	if err != nil {
		return 0, false
	}
	return uint8(n), true
}
