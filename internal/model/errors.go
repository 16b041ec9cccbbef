package model

import "errors"

// Error kinds surfaced by the generation pipeline. The CLI boundary maps
// them to messages and a non-zero exit code; nothing below it recovers.
var (
	// ErrDictionaryNotFound indicates the dictionary path does not exist.
	ErrDictionaryNotFound = errors.New("dictionary file not found")

	// ErrEmptyDictionary indicates the dictionary contains no usable words.
	ErrEmptyDictionary = errors.New("dictionary contains no usable words")

	// ErrInvalidCount indicates an out-of-range word or mutation count.
	ErrInvalidCount = errors.New("invalid count")

	// ErrInvalidRange indicates a degenerate random-draw range. Upstream
	// validation makes this unreachable in practice; hitting it is a
	// programming defect, not a user error.
	ErrInvalidRange = errors.New("invalid random range")
)
