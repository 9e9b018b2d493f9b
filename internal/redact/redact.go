// Package redact removes credentials and personal data from strings before
// they are logged or returned in error responses. It knows the secrets this
// service handles: MongoDB connection strings, bearer tokens, payment
// processor keys and client secrets, and customer email addresses.
package redact

import "regexp"

// Placeholders substituted for redacted fragments.
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedJWTPlaceholder        = "[REDACTED_JWT]"
	RedactedSecretPlaceholder     = "[REDACTED_CLIENT_SECRET]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Rules run in order: connection strings go before emails because
// "user:pass@host.tld" would otherwise be taken for an address.
var rules = []rule{
	{
		pattern:     regexp.MustCompile(`(?i)\b(mongodb(?:\+srv)?)://[^@/\s]+@`),
		replacement: "${1}://" + RedactedCredentialPlaceholder + "@",
	},
	{
		pattern:     regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`),
		replacement: RedactedJWTPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`\bpi_[A-Za-z0-9]+_secret_[A-Za-z0-9]+`),
		replacement: RedactedSecretPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`\b(?:sk|rk|pk)_(?:test|live)_[A-Za-z0-9]+`),
		replacement: RedactedKeyPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)\b(password|passwd|pwd|secret)([=:\s]+['"]?)[^'"&\s]{3,}`),
		replacement: "${1}${2}" + RedactedCredentialPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		replacement: RedactedEmailPlaceholder,
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
