// Package redact маскирует чувствительные значения перед записью в лог.
package redact

// Phone оставляет видимыми только три последние цифры номера.
func Phone(s string) string {
	r := []rune(s)
	if len(r) <= 3 {
		return "***"
	}

	return "***" + string(r[len(r)-3:])
}

func Token() string    { return "[REDACTED_TOKEN]" }
func Password() string { return "[REDACTED_PASSWORD]" }
