// Package phone provides phone number utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "US"

// NormalizeE164 formats a phone number to E.164. If parsing fails or the
// number is not valid for any region, it returns the trimmed input unchanged.
func NormalizeE164(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}

	number, err := phonenumbers.Parse(trimmed, defaultRegion)
	if err != nil {
		return trimmed
	}

	if !phonenumbers.IsValidNumber(number) {
		return trimmed
	}

	return phonenumbers.Format(number, phonenumbers.E164)
}

// ValidShape reports whether the input looks like a phone number: an
// optional leading +, then 7 to 15 digits. Spaces and dashes are ignored
// for the digit count. This is deliberately more permissive than full
// region-aware validation so intake never rejects reachable numbers.
func ValidShape(input string) bool {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return false
	}

	if strings.HasPrefix(trimmed, "+") {
		trimmed = trimmed[1:]
	}

	digits := 0
	for _, r := range trimmed {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-':
			// separators carry no meaning
		default:
			return false
		}
	}

	return digits >= 7 && digits <= 15
}
