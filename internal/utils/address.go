package utils

import (
	"regexp"
	"strings"

	pserrors "pstack.dev/pstack/internal/errors"
)

var (
	addressEscapeRegex = regexp.MustCompile(`[\\"]`)
	nameEmailRegex     = regexp.MustCompile(`^(.*)\s*<(.*)>\s*$`)
	emailNameRegex     = regexp.MustCompile(`^(.*)\s*\((.*)\)\s*$`)
	nameEmailDateRegex = regexp.MustCompile(`^(.*)\s*<(.*)>\s*(.*)\s*$`)
)

const (
	nameEmailFormat     = "name <email>/email (name)"
	nameEmailDateFormat = "name <email> date"
)

// escapeAddress backslash-escapes backslashes and double quotes
func escapeAddress(address string) string {
	return addressEscapeRegex.ReplaceAllString(address, `\$0`)
}

// ParseAddress returns the name and email of a "name <email>" or
// "email (name)" string.
func ParseAddress(address string) (string, string, error) {
	escaped := escapeAddress(address)

	if m := nameEmailRegex.FindStringSubmatch(escaped); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), nil
	}

	if m := emailNameRegex.FindStringSubmatch(escaped); m != nil {
		return strings.TrimSpace(m[2]), strings.TrimSpace(m[1]), nil
	}

	return "", "", pserrors.NewAddressFormatError(address, nameEmailFormat)
}

// ParseAddressWithDate returns the name, email and date of a
// "name <email> date" string.
func ParseAddressWithDate(address string) (string, string, string, error) {
	escaped := escapeAddress(address)

	m := nameEmailDateRegex.FindStringSubmatch(escaped)
	if m == nil {
		return "", "", "", pserrors.NewAddressFormatError(address, nameEmailDateFormat)
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), strings.TrimSpace(m[3]), nil
}
