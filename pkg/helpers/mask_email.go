package helpers

import "strings"

// MaskEmail hides most of the local part of an email for log lines.
// "johndoe@example.com" -> "joh****@example.com"
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at < 0 {
		return email
	}
	local, domain := email[:at], email[at+1:]
	visible := 1
	if len(local) > 3 {
		visible = 3
	}
	return local[:visible] + strings.Repeat("*", len(local)-visible) + "@" + domain
}
