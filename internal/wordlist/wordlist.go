// Package wordlist resolves the words a puzzle hides. Words can come from
// a file, the command line, BigQuery, Gemini, or the built-in default list;
// every source returns them normalized to uppercase.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Italian Christmas words, used when no other source is configured.
var defaultWords = []string{
	"addobbo", "angelo", "giuseppe", "cometa", "stella", "maria",
	"magi", "betlemme", "bue", "natale", "asinello", "stalla",
}

// Default returns the built-in Christmas-themed word list.
func Default() []string {
	return Normalize(defaultWords)
}

// Normalize trims surrounding whitespace, uppercases, and drops entries
// that end up empty. The argument is left unmodified.
func Normalize(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		out = append(out, w)
	}
	return out
}

// FromFile loads one word per line. Blank lines and lines starting with
// '#' are skipped; the rest are normalized.
func FromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word file: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, strings.ToUpper(word))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word file: %w", err)
	}

	log.WithFields(log.Fields{"path": path, "words": len(words)}).Info("loaded word file")
	return words, nil
}
