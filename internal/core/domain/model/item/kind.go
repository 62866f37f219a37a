package item

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// Kind discriminates the closed set of catalog item variants.
// The catalog stores every variant in a single table, so the kind travels with
// the item as an explicit tag rather than being expressed through inheritance.
//
// The set is closed: Book, Album and Movie are the only variants, and each
// carries its own descriptive attributes (author/ISBN, artist, director/actor).
type Kind int

const (
	// Unknown represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized Kind values.
	Unknown Kind = iota

	// Book is a catalog item with an author and an ISBN.
	Book

	// Album is a catalog item with an artist.
	Album

	// Movie is a catalog item with a director and an actor.
	Movie
)

// getKindStrings returns a map of Kind values to their string representations.
func getKindStrings() map[Kind]string {
	return map[Kind]string{
		Unknown: "Unknown",
		Book:    "Book",
		Album:   "Album",
		Movie:   "Movie",
	}
}

// getValidKindStrings returns only the valid Kind values, used for validation
// and for parsing external input.
func getValidKindStrings() map[Kind]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Kind]string{
		Book:  "Book",
		Album: "Album",
		Movie: "Movie",
	}
}

// Validate checks if the Kind value belongs to the closed variant set.
// Unknown (0) and any other values are invalid.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
// Implements fmt.Stringer and is safe to call on any Kind value.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// KindFromString parses a Kind from its string representation.
// Used when reconstructing items from persistence or parsing API input.
// Returns a validation error for strings outside the closed set.
func KindFromString(s string) (Kind, error) {
	for kind, str := range getValidKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%q is not a valid kind", s))
}
