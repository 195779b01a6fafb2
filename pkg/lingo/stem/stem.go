// Package stem supplies the normalization function applied to every token.
// The pipeline treats stemming as an opaque collaborator: any pure, total
// func(string) string will do.
package stem

import (
	"fmt"

	"github.com/kljensen/snowball"
)

// Func normalizes a single word. Implementations must be pure, total and
// deterministic; they are called once per finalized token.
type Func func(word string) string

// Noop returns a stemmer that leaves every word unchanged.
func Noop() Func {
	return func(word string) string { return word }
}

// Snowball returns a stemmer backed by the snowball algorithm for the given
// language ("english", "russian", "french", ...). The language is validated
// up front; per-word failures fall back to the input word so the returned
// Func stays total.
func Snowball(language string) (Func, error) {
	if _, err := snowball.Stem("probe", language, false); err != nil {
		return nil, fmt.Errorf("stem: unsupported language %q: %w", language, err)
	}

	return func(word string) string {
		stemmed, err := snowball.Stem(word, language, false)
		if err != nil {
			return word
		}
		return stemmed
	}, nil
}
