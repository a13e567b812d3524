// Package redact scrubs sensitive fragments from strings before they are
// logged or returned to clients. Database drivers tend to echo connection
// strings, SQL text, and file paths in their errors; this package replaces
// those with fixed placeholders.
package redact

import "regexp"

// Placeholders substituted for redacted fragments.
const (
	PlaceholderCredential = "[REDACTED_CREDENTIAL]"
	PlaceholderPath       = "[REDACTED_PATH]"
	PlaceholderSQL        = "[REDACTED_SQL]"
	PlaceholderHost       = "[REDACTED_HOST]"
	PlaceholderStackTrace = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Rules run in order. Credentials go first so that a DSN is collapsed before
// the host and path rules see it.
var rules = []rule{
	{
		regexp.MustCompile(`(?i)\b(postgres(?:ql)?|pgx|sqlite3?|file)://[^\s@/]*(?::[^\s@/]*)?@`),
		PlaceholderCredential,
	},
	{
		regexp.MustCompile(`(?i)\b(password|passwd|pwd)\s*[=:]\s*['"]?[^'"&\s]+`),
		PlaceholderCredential,
	},
	{
		regexp.MustCompile(`goroutine \d+ \[[^\]]*\]:[\s\S]*`),
		PlaceholderStackTrace,
	},
	{
		regexp.MustCompile(
			`(?i)\b(SELECT|INSERT|UPDATE|DELETE|CREATE|ALTER|DROP)\b[\s\w,*()$?.=>'"]*?\b(FROM|INTO|SET|TABLE|WHERE)\b[^;\n]*`,
		),
		PlaceholderSQL,
	},
	{
		regexp.MustCompile(`(?:[A-Za-z]:\\[^\\\s]+(?:\\[^\\\s]+)+)|(?:(?:/[\w.-]+){2,})`),
		PlaceholderPath,
	},
	{
		regexp.MustCompile(`\b(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}:\d{1,5}\b|\b(?:\d{1,3}\.){3}\d{1,3}(?::\d{1,5})?\b`),
		PlaceholderHost,
	},
}

// String returns input with every sensitive fragment replaced.
func String(input string) string {
	if input == "" {
		return input
	}
	out := input
	for _, r := range rules {
		out = r.pattern.ReplaceAllString(out, r.placeholder)
	}
	return out
}

// Error is String applied to err.Error(). A nil error yields "".
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
