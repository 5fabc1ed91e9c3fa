package mail

import (
	"regexp"
	"strings"
)

var angleBracketPattern = regexp.MustCompile(`<(.+?)>`)

// ExtractAddress pulls the bare address out of a From header like
// "Acme Sales <sales@acme.example>". Headers without angle brackets are
// returned trimmed as-is.
func ExtractAddress(fromHeader string) string {
	if match := angleBracketPattern.FindStringSubmatch(fromHeader); match != nil {
		return match[1]
	}
	return strings.TrimSpace(fromHeader)
}
