package langcode

import "errors"

// ErrInvalidLanguageCode indicates the input failed the language-code format
// check.
var ErrInvalidLanguageCode = errors.New("invalid language code")
