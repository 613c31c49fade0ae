package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var e164Pattern = regexp.MustCompile(`^\+[1-9][0-9]{7,14}$`)

// CleanContact strips separators users commonly type into phone numbers
func CleanContact(contact string) string {
	replacer := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	return replacer.Replace(strings.TrimSpace(contact))
}

// ToE164 formats a contact for SMS delivery. Numbers already carrying a
// leading + are kept; anything else gets the default country code.
func ToE164(contact, defaultCountryCode string) (string, error) {
	stripped := CleanContact(contact)
	if stripped == "" {
		return "", fmt.Errorf("contact is empty")
	}

	if !strings.HasPrefix(stripped, "+") {
		code := defaultCountryCode
		if !strings.HasPrefix(code, "+") {
			code = "+" + code
		}
		stripped = code + strings.TrimPrefix(stripped, "0")
	}

	if !e164Pattern.MatchString(stripped) {
		return "", fmt.Errorf("invalid contact number %q", contact)
	}
	return stripped, nil
}
