package validators

import "strings"

// IsMobileValid aceita números com 10 a 15 dígitos, com "+" opcional.
func IsMobileValid(mobile string) bool {
	mobile = strings.TrimSpace(mobile)
	mobile = strings.TrimPrefix(mobile, "+")

	if len(mobile) < 10 || len(mobile) > 15 {
		return false
	}

	for _, r := range mobile {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
