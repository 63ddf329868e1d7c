package utils

import (
	"regexp"
	"strings"
)

// PatchNameReplaceRegex matches runs of characters that are not kept in derived patch names
var PatchNameReplaceRegex = regexp.MustCompile(`\W+`)

// DeriveName generates a patch name from the subject line of a commit message.
// It returns false for an empty message.
func DeriveName(message string) (string, bool) {
	if message == "" {
		return "", false
	}

	subject, _, _ := strings.Cut(strings.TrimLeft(message, " \t\r\n\v\f"), "\n")
	subject = strings.ToLower(subject)

	name := PatchNameReplaceRegex.ReplaceAllString(subject, "-")
	return strings.Trim(name, "-"), true
}
