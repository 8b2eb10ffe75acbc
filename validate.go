package wordsearch

import (
	"errors"
	"fmt"
)

// Grid sizes the generator accepts.
const (
	MinGridSize = 5
	MaxGridSize = 30
)

// MinWordLength is the shortest word worth hiding.
const MinWordLength = 2

var (
	ErrGridSize    = errors.New("grid size out of range")
	ErrNoWords     = errors.New("no words provided")
	ErrWordLength  = errors.New("word length out of range")
	ErrWordCharset = errors.New("word has characters outside A-Z")
)

// ValidateGridSize checks that size falls in [MinGridSize, MaxGridSize].
func ValidateGridSize(size int) error {
	if size < MinGridSize || size > MaxGridSize {
		return fmt.Errorf("%w: %d (want %d..%d)", ErrGridSize, size, MinGridSize, MaxGridSize)
	}
	return nil
}

// ValidateWords checks that the list is non-empty and that every word fits
// the grid using only uppercase A-Z. Generation itself trusts its inputs;
// callers validate at the boundary.
func ValidateWords(words []string, gridSize int) error {
	if len(words) == 0 {
		return ErrNoWords
	}
	for _, word := range words {
		if len(word) < MinWordLength || len(word) > gridSize {
			return fmt.Errorf("%w: %q is %d letters (want %d..%d)", ErrWordLength, word, len(word), MinWordLength, gridSize)
		}
		for _, r := range word {
			if r < 'A' || r > 'Z' {
				return fmt.Errorf("%w: %q contains %q", ErrWordCharset, word, r)
			}
		}
	}
	return nil
}
