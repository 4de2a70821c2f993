package auth

import "regexp"

var tokenFieldRe = regexp.MustCompile(`("(?:access|refresh|id)_token"\s*:\s*")[^"]*(")`)

// RedactTokens blanks token-bearing JSON fields so upstream response bodies can
// be included in error messages without leaking credential material.
func RedactTokens(s string) string {
	return tokenFieldRe.ReplaceAllString(s, `${1}[redacted]${2}`)
}
