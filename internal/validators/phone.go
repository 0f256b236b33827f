package validators

import "strings"

// CleanPhone strips spaces, dashes, dots and parentheses, keeping only
// the digits. "780-123-4567" becomes "7801234567".
func CleanPhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
}
