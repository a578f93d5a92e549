package cat

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// idAlphabet excludes uppercase letters so IDs are easy to type and stay
// unambiguous in URLs and CLI arguments.
const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// DefaultIDLength is the number of random characters in a generated ID.
const DefaultIDLength = 8

// NewID generates a new record identifier with an optional prefix.
// A zero or negative length falls back to DefaultIDLength.
func NewID(prefix string, length int) string {
	if length <= 0 {
		length = DefaultIDLength
	}
	id := gonanoid.MustGenerate(idAlphabet, length)
	if prefix != "" {
		return prefix + "-" + id
	}
	return id
}
