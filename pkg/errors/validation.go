package errors

import (
	"strings"
	"unicode"
)

// maxNounLength bounds nouns accepted from untrusted callers. The longest
// WordNet 3.0 noun is well under this.
const maxNounLength = 256

// ValidateNoun validates a noun received from an untrusted source such as an
// HTTP request. It does not check lexicon membership.
//
// The validation rules are intentionally conservative:
//   - No empty nouns (NULL_INPUT)
//   - No control characters or whitespace (nouns use underscores)
//   - No commas, which delimit synset records
//   - Maximum length of 256 bytes
func ValidateNoun(noun string) error {
	if noun == "" {
		return New(ErrCodeNullInput, "noun cannot be empty")
	}

	if len(noun) > maxNounLength {
		return New(ErrCodeInvalidInput, "noun too long (max %d characters)", maxNounLength)
	}

	for _, r := range noun {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "noun contains whitespace or control characters")
		}
	}

	if strings.Contains(noun, ",") {
		return New(ErrCodeInvalidInput, "noun contains invalid character: %q", ",")
	}

	return nil
}

// ValidatePath validates a data file path supplied via flag or config.
//
// Validation rules:
//   - Path cannot be empty (NULL_INPUT)
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeNullInput, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}

	return nil
}
