package telegram

import "strings"

const (
	localPhoneLength = 10
	localPhonePrefix = "09"
	intlPhonePrefix  = "+251"
)

// validatePhone lokal mobil raqam formatini tekshirish: 09XXXXXXXX
func validatePhone(raw string) bool {
	phone := strings.TrimSpace(raw)
	if len(phone) != localPhoneLength {
		return false
	}
	if !strings.HasPrefix(phone, localPhonePrefix) {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// normalizePhone lokal prefiksni xalqaro formatga o'tkazish:
// "09XXXXXXXX" → "+2519XXXXXXXX". Invalid input is returned unchanged, so
// callers must validate first.
func normalizePhone(raw string) string {
	phone := strings.TrimSpace(raw)
	if !validatePhone(phone) {
		return raw
	}
	return intlPhonePrefix + strings.TrimPrefix(phone, "0")
}

// normalizeContactPhone kontakt ulashishdan kelgan raqam uchun.
// Contacts arrive in whatever format Telegram has on file; local numbers get
// normalized, anything else is kept as sent (with a leading + when missing).
func normalizeContactPhone(raw string) string {
	phone := strings.TrimSpace(raw)
	if phone == "" {
		return ""
	}
	if validatePhone(phone) {
		return normalizePhone(phone)
	}
	if !strings.HasPrefix(phone, "+") {
		return "+" + phone
	}
	return phone
}
