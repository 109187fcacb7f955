package ir

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// ErrEmptyItem is returned when an item token is empty after normalization.
var ErrEmptyItem = errors.New("ir: empty item token")

// Item is a normalized item token. Two items are equal iff their
// normalized values are equal.
type Item string

// NormalizeItem trims surrounding whitespace, applies NFC and lower-cases
// the token. Returns ErrEmptyItem when nothing is left.
//
// cases.Caser carries state, so a fresh one is built per call.
func NormalizeItem(token string) (Item, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return "", ErrEmptyItem
	}
	lowered := cases.Lower(language.Und).String(norm.NFC.String(trimmed))
	return Item(lowered), nil
}

// MustNormalizeItem is like NormalizeItem but panics on error.
// Intended for tests and literals.
func MustNormalizeItem(token string) Item {
	item, err := NormalizeItem(token)
	if err != nil {
		panic(err)
	}
	return item
}
