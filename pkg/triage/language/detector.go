// Package language identifies the dominant language of user text.
package language

import (
	"context"
	"log"

	"telecom-complaint-be/pkg/llm"
	"telecom-complaint-be/pkg/llm/parse"
)

// DefaultLanguage is the universal fallback locale. Detection failure never
// stalls the pipeline; it degrades to English.
const DefaultLanguage = "English"

const (
	temperature = 0.0
	maxTokens   = 50
)

const systemPrompt = "Detect the language of the following text. " +
	"Consider mixed-language input (e.g., Hinglish = Hindi + English). " +
	"For mixed languages, identify the DOMINANT language.\n" +
	`Respond with ONLY: {"language": "<language_name>", "code": "<iso_code>"}`

type detection struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

type Detector struct {
	provider llm.LLMProvider
	logger   *log.Logger
}

func New(provider llm.LLMProvider, logger *log.Logger) *Detector {
	return &Detector{
		provider: provider,
		logger:   logger,
	}
}

// Detect returns the dominant language name of text, or DefaultLanguage when
// the reasoning service fails or answers with something unusable.
func (d *Detector) Detect(ctx context.Context, text string) string {
	raw, err := d.provider.Chat(ctx,
		[]llm.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: text},
		},
		llm.WithTemperature(temperature),
		llm.WithMaxTokens(maxTokens),
	)
	if err != nil {
		d.logger.Printf("[WARN] language detection call failed, using %q: %v", DefaultLanguage, err)
		return DefaultLanguage
	}

	var det detection
	if err := parse.Into(raw, &det); err != nil {
		d.logger.Printf("[WARN] language detection output unparsable, using %q: %v", DefaultLanguage, err)
		return DefaultLanguage
	}
	if det.Language == "" {
		return DefaultLanguage
	}

	// Only the name is used downstream; the ISO code is informational.
	return det.Language
}
