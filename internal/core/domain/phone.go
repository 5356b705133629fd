package domain

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	// PhoneCountryCode is the country calling code of the modeled numbering plan.
	PhoneCountryCode = "56"
	// PhoneMobilePrefix marks a national number as mobile.
	PhoneMobilePrefix = "9"
	// PhoneFieldSeed is what an empty phone field is pre-filled with on focus.
	PhoneFieldSeed = "+" + PhoneCountryCode + " " + PhoneMobilePrefix + " "
)

var mobilePattern = regexp.MustCompile(`^(\+?` + PhoneCountryCode + `)?` + PhoneMobilePrefix + `\d{8}$`)

// IsValidPhone reports whether raw, ignoring whitespace, is a mobile number:
// an optional country code (with or without '+'), the mobile prefix and
// exactly eight more digits.
func IsValidPhone(raw string) bool {
	return mobilePattern.MatchString(stripSpace(raw))
}

// FormatPhone renders raw progressively as digits arrive. Input starting
// with '+' is shown as "+CC P DDDD DDDD", with the country code and mobile
// prefix assumed when missing; anything else as "P DDDD DDDD". Extra digits
// are dropped.
func FormatPhone(raw string) string {
	digits := onlyDigits(raw)

	if strings.HasPrefix(raw, "+") {
		if !strings.HasPrefix(digits, PhoneCountryCode) {
			digits = PhoneCountryCode + PhoneMobilePrefix + digits
		}
		switch n := len(digits); {
		case n >= 7:
			return "+" + digits[:2] + " " + digits[2:3] + " " + digits[3:7] + " " + digits[7:min(n, 11)]
		case n >= 3:
			return "+" + digits[:2] + " " + digits[2:3] + " " + digits[3:]
		default:
			return "+" + digits
		}
	}

	switch n := len(digits); {
	case n >= 5:
		return digits[:1] + " " + digits[1:5] + " " + digits[5:min(n, 9)]
	case n >= 1:
		return digits[:1] + " " + digits[1:]
	default:
		return ""
	}
}

// FormatPhoneInput is FormatPhone as applied to a phone field on every
// keystroke: any non-empty value is forced into international form.
func FormatPhoneInput(raw string) string {
	if raw != "" && !strings.HasPrefix(raw, "+") {
		raw = "+" + PhoneCountryCode + " " + strings.TrimLeftFunc(raw, unicode.IsSpace)
	}
	return FormatPhone(raw)
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
