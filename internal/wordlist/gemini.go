package wordlist

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

const (
	defaultRegion = "europe-west1"
	defaultModel  = "gemini-2.5-flash"
)

const themePrompt = `List %d common %s words for a word-search puzzle.

Rules:
- Each entry is a single word, letters only, no spaces or hyphens.
- Each word is at most %d letters long.
- Respond ONLY with a JSON array of strings, no commentary and no markdown.`

// GeminiSource asks Gemini for themed words.
type GeminiSource struct {
	client *genai.Client
	model  string
}

// NewGeminiSource creates a source backed by VertexAI using Application
// Default Credentials.
func NewGeminiSource(ctx context.Context, projectID, region string) (*GeminiSource, error) {
	if region == "" {
		region = defaultRegion
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: region,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiSource{client: client, model: defaultModel}, nil
}

// Words asks for count words matching theme, each at most maxLen letters.
// Returned words outside those bounds are dropped rather than reported as
// errors; the model does not always follow instructions.
func (s *GeminiSource) Words(ctx context.Context, theme string, count, maxLen int) ([]string, error) {
	resp, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Role:  "user",
			Parts: []*genai.Part{{Text: fmt.Sprintf(themePrompt, count, theme, maxLen)}},
		}},
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(float32(0.7)),
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty gemini response")
	}

	var raw []string
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("parse word JSON: %w\nraw response: %s", err, text)
	}

	var words []string
	for _, w := range Normalize(raw) {
		if len(w) < 2 || len(w) > maxLen || !isUpperAZ(w) {
			log.WithField("word", w).Debug("dropping unusable gemini word")
			continue
		}
		words = append(words, w)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("gemini returned no usable words, raw response: %s", text)
	}
	if len(words) > count {
		words = words[:count]
	}

	log.WithFields(log.Fields{"theme": theme, "words": len(words)}).Info("loaded words from Gemini")
	return words, nil
}

func isUpperAZ(word string) bool {
	for _, r := range word {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
