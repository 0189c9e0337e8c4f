package checkout

import "strings"

// FormatCardNumber groups the digits of a card number input into blocks of
// four, capped at 16 digits. Display formatting only, no validation.
func FormatCardNumber(input string) string {
	digits := keepDigits(input)
	if len(digits) > 16 {
		digits = digits[:16]
	}
	var parts []string
	for i := 0; i < len(digits); i += 4 {
		end := i + 4
		if end > len(digits) {
			end = len(digits)
		}
		parts = append(parts, digits[i:end])
	}
	return strings.Join(parts, " ")
}

// FormatExpiry inserts the MM/YY slash after the second digit, capped at four
// digits.
func FormatExpiry(input string) string {
	digits := keepDigits(input)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) >= 2 {
		return digits[:2] + "/" + digits[2:]
	}
	return digits
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
