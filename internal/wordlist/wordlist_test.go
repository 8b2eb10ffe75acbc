package wordlist

import (
	"errors"
	"io/fs"
	"os"
	"slices"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{name: "uppercases", in: []string{"cat", "Dog"}, want: []string{"CAT", "DOG"}},
		{name: "trims", in: []string{"  cat  ", "\tdog\n"}, want: []string{"CAT", "DOG"}},
		{name: "drops empties", in: []string{"cat", "", "   ", "dog"}, want: []string{"CAT", "DOG"}},
		{name: "keeps duplicates", in: []string{"cat", "CAT"}, want: []string{"CAT", "CAT"}},
		{name: "nil", in: nil, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_LeavesInputAlone(t *testing.T) {
	in := []string{"cat"}
	Normalize(in)
	if in[0] != "cat" {
		t.Errorf("input mutated to %q", in[0])
	}
}

func TestDefault(t *testing.T) {
	words := Default()
	if len(words) != 12 {
		t.Fatalf("got %d default words, want 12", len(words))
	}
	if !slices.Contains(words, "NATALE") {
		t.Errorf("default words %v missing NATALE", words)
	}
	for _, w := range words {
		if !isUpperAZ(w) {
			t.Errorf("default word %q is not uppercase A-Z", w)
		}
	}
}

func TestFromFile(t *testing.T) {
	words, err := FromFile("testdata/words.txt")
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}

	want := []string{"TREE", "STAR", "GIFT", "SNOW"}
	if !slices.Equal(words, want) {
		t.Errorf("FromFile = %v, want %v", words, want)
	}
}

func TestFromFile_Missing(t *testing.T) {
	_, err := FromFile("testdata/no-such-file.txt")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("FromFile error = %v, want fs.ErrNotExist", err)
	}
}

func TestGeminiWords(t *testing.T) {
	projectID := os.Getenv("GCP_PROJECT_ID")
	if projectID == "" {
		t.Skip("GCP_PROJECT_ID not set, skipping integration test")
	}

	ctx := t.Context()
	src, err := NewGeminiSource(ctx, projectID, "")
	if err != nil {
		t.Fatalf("create source: %v", err)
	}

	words, err := src.Words(ctx, "ocean", 8, 10)
	if err != nil {
		t.Fatalf("fetch words: %v", err)
	}
	if len(words) == 0 || len(words) > 8 {
		t.Fatalf("got %d words, want 1..8", len(words))
	}
	for _, w := range words {
		if len(w) < 2 || len(w) > 10 || !isUpperAZ(w) {
			t.Errorf("unusable word %q survived filtering", w)
		}
	}
	t.Logf("Gemini words: %v", words)
}
