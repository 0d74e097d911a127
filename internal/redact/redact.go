// Package redact removes sensitive information from strings before they
// are logged or returned in error responses. The main leak vector in this
// application is the caller-supplied Gemini API key, which upstream error
// messages can echo back inside URLs or request dumps.
package redact

import "regexp"

// Redaction placeholders.
const (
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
)

var (
	// Google API keys start with AIza followed by 35 URL-safe characters.
	googleKeyRegex = regexp.MustCompile(`AIza[0-9A-Za-z_-]{35}`)

	// key=... query parameters, as used by the generative language API.
	keyParamRegex = regexp.MustCompile(`(?i)([?&]key=)[A-Za-z0-9_\-.~+/]+`)

	// Generic credential assignments in error text.
	credentialRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret|credential|password)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// Database connection strings with embedded credentials.
	dbConnRegex = regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`)

	// Absolute filesystem paths, which can appear in storage errors.
	unixPathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

var rules = []rule{
	{googleKeyRegex, RedactedKeyPlaceholder},
	{keyParamRegex, "${1}" + RedactedKeyPlaceholder},
	{credentialRegex, "${1}${2}" + RedactedKeyPlaceholder},
	{dbConnRegex, RedactedCredentialPlaceholder},
	{unixPathRegex, RedactedPathPlaceholder},
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
