// Package langcode validates and normalizes language-code strings.
//
// Providers exchange language codes in a narrow BCP 47 subset: a two- or
// three-letter primary subtag, an optional script subtag and an optional
// region subtag. IsValid checks that format, Normalize additionally lowers
// the case for the wire, and Canonical produces the canonical BCP 47 form via
// golang.org/x/text for display or interop with stricter APIs.
package langcode
