package domain

import (
	"strings"
)

const (
	identityGroupSeparator = '.'
	identityCheckSeparator = '-'
)

// NormalizeIdentity strips everything that is not a digit or the letter K
// from raw and upper-cases the result. A value without any digit normalizes
// to the empty string.
func NormalizeIdentity(raw string) string {
	var b strings.Builder
	hasDigit := false
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
			b.WriteRune(r)
		case r == 'k' || r == 'K':
			b.WriteRune('K')
		}
	}
	if !hasDigit {
		return ""
	}
	return b.String()
}

// FormatIdentity renders raw in display form: the body grouped in
// right-aligned triplets separated by dots, then a dash and the check
// character. A single-character token has no body and is returned as is.
func FormatIdentity(raw string) string {
	token := NormalizeIdentity(raw)
	if len(token) < 2 {
		return token
	}

	body, check := token[:len(token)-1], token[len(token)-1:]
	return groupThousands(body) + string(identityCheckSeparator) + check
}

// FormatIdentityAt formats raw as it is being typed and returns the caret
// position to restore: one further right when the value grew, unchanged
// otherwise. The caret is clamped to the formatted value.
func FormatIdentityAt(raw string, caret int) (string, int) {
	formatted := FormatIdentity(raw)
	if len(formatted) > len(raw) {
		caret++
	}
	return formatted, clamp(caret, 0, len(formatted))
}

// IsValidIdentity reports whether raw carries a body of digits whose
// modulo-11 check character matches the trailing one.
func IsValidIdentity(raw string) bool {
	token := NormalizeIdentity(raw)
	if len(token) < 2 {
		return false
	}

	body, expected := token[:len(token)-1], token[len(token)-1]
	computed, ok := IdentityCheckChar(body)
	if !ok {
		return false
	}
	return computed == expected
}

// IdentityCheckChar computes the check character for a body of decimal
// digits. Weights 2..7 are applied cyclically from the rightmost digit.
// ok is false when body is empty or holds anything but digits.
func IdentityCheckChar(body string) (check byte, ok bool) {
	if body == "" {
		return 0, false
	}

	sum, weight := 0, 2
	for i := len(body) - 1; i >= 0; i-- {
		c := body[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		sum += int(c-'0') * weight
		if weight == 7 {
			weight = 2
		} else {
			weight++
		}
	}

	switch r := 11 - sum%11; r {
	case 11:
		return '0', true
	case 10:
		return 'K', true
	default:
		return byte('0' + r), true
	}
}

func groupThousands(body string) string {
	if len(body) <= 3 {
		return body
	}

	var b strings.Builder
	b.Grow(len(body) + len(body)/3)
	lead := len(body) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(body[:lead])
	for i := lead; i < len(body); i += 3 {
		b.WriteByte(identityGroupSeparator)
		b.WriteString(body[i : i+3])
	}
	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
