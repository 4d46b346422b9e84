package langcode

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/language"
)

// codePattern matches the subset of BCP 47 tags the framework exchanges with
// providers: a lowercase primary subtag, an optional title-case script and an
// optional uppercase region, e.g. "en", "en-US", "zh-Hans", "zh-Hans-CN".
var codePattern = regexp.MustCompile(`^[a-z]{2,3}(-[A-Z][a-z]{3})?(-[A-Z]{2})?$`)

// IsValid reports whether code is a well-formed language code.
func IsValid(code string) bool {
	return codePattern.MatchString(code)
}

// Normalize validates code and returns it lowercased, the form providers are
// handed on the translate path. Returns ErrInvalidLanguageCode when the input
// fails the format check.
func Normalize(code string) (string, error) {
	if !IsValid(code) {
		return "", fmt.Errorf("%w: %q", ErrInvalidLanguageCode, code)
	}
	return strings.ToLower(code), nil
}

// Canonical parses code as a BCP 47 tag and returns its canonical form, e.g.
// "en-us" becomes "en-US" and "zh-hans" becomes "zh-Hans". Unlike Normalize
// it accepts any casing and the full BCP 47 grammar.
func Canonical(code string) (string, error) {
	tag, err := language.Parse(code)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrInvalidLanguageCode, code, err)
	}
	return tag.String(), nil
}
