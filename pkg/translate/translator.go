// Package translate localizes fixed system strings (menu labels, rejection
// and error messages) into the user's language.
package translate

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"telecom-complaint-be/pkg/llm"
)

const (
	temperature = 0.0
	maxTokens   = 500

	cacheTTL   = 12 * time.Hour
	cacheSweep = 1 * time.Hour
)

type Translator struct {
	provider llm.LLMProvider
	logger   *log.Logger
	cache    *gocache.Cache
}

func New(provider llm.LLMProvider, logger *log.Logger) *Translator {
	return &Translator{
		provider: provider,
		logger:   logger,
		cache:    gocache.New(cacheTTL, cacheSweep),
	}
}

// Translate returns text in targetLanguage. English targets (name or ISO
// code, case-insensitive) are returned unchanged without a gateway call.
// The same fixed strings are translated over and over across requests, so
// results are memoized per (language, text).
//
// Translation is best-effort: any failure returns the original text.
func (t *Translator) Translate(ctx context.Context, text, targetLanguage string) string {
	lang := strings.ToLower(strings.TrimSpace(targetLanguage))
	if lang == "english" || lang == "en" {
		return text
	}

	key := lang + "|" + text
	if cached, ok := t.cache.Get(key); ok {
		return cached.(string)
	}

	systemPrompt := fmt.Sprintf(
		"Translate the following text to %s. Keep formatting intact. Return ONLY the translation.",
		targetLanguage,
	)

	// Plain text in, plain text out. No JSON envelope for this stage.
	raw, err := t.provider.Chat(ctx,
		[]llm.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: text},
		},
		llm.WithTemperature(temperature),
		llm.WithMaxTokens(maxTokens),
	)
	if err != nil {
		t.logger.Printf("[WARN] translation to %q failed, returning original text: %v", targetLanguage, err)
		return text
	}

	translated := strings.TrimSpace(raw)
	if translated == "" {
		return text
	}

	t.cache.Set(key, translated, gocache.DefaultExpiration)
	return translated
}
