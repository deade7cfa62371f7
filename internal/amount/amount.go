// Package amount converts human-readable decimal strings into exact
// integer amounts in a unit's smallest on-chain denomination.
package amount

import (
	"fmt"
	"math/big"
	"strings"
)

// EtherDecimals is the precision of the chain's native coin.
const EtherDecimals = 18

// MaxDecimals bounds the precision accepted for token units.
const MaxDecimals = 36

// ParseUnits scales a decimal string to an integer in the smallest
// denomination at the given precision. The conversion is exact: no
// floating point is involved, and fractional digits beyond the target
// precision are an error rather than silent truncation.
func ParseUnits(s string, decimals int) (*big.Int, error) {
	if decimals < 0 || decimals > MaxDecimals {
		return nil, fmt.Errorf("decimals must be between 0 and %d, got %d", MaxDecimals, decimals)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("amount is empty")
	}
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return nil, fmt.Errorf("amount %q must be an unsigned decimal", s)
	}

	whole := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
		if strings.IndexByte(frac, '.') >= 0 {
			return nil, fmt.Errorf("amount %q has more than one decimal point", s)
		}
	}
	if whole == "" && frac == "" {
		return nil, fmt.Errorf("amount %q has no digits", s)
	}
	if !isDigits(whole) || !isDigits(frac) {
		return nil, fmt.Errorf("amount %q is not a decimal number", s)
	}
	if len(frac) > decimals {
		return nil, fmt.Errorf("amount %q has %d fractional digits, exceeds precision %d", s, len(frac), decimals)
	}

	// Shift the decimal point right by `decimals` places.
	digits := whole + frac + strings.Repeat("0", decimals-len(frac))
	if digits == "" {
		digits = "0"
	}

	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("amount %q is not a decimal number", s)
	}
	return n, nil
}

// ParseEther converts a decimal string of the native coin into wei.
func ParseEther(s string) (*big.Int, error) {
	return ParseUnits(s, EtherDecimals)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
