// Package resolution produces the final structured troubleshooting reply.
package resolution

import (
	"context"
	"fmt"
	"log"

	"telecom-complaint-be/pkg/llm"
)

// Generation uses a moderate temperature: the resolution is the one stage
// where controlled variability is acceptable.
const (
	temperature = 0.4
	maxTokens   = 1000
)

type Generator struct {
	provider llm.LLMProvider
	logger   *log.Logger
}

func New(provider llm.LLMProvider, logger *log.Logger) *Generator {
	return &Generator{
		provider: provider,
		logger:   logger,
	}
}

// Generate renders the troubleshooting reply directly in the target language.
// Translating an already-generated reply would risk breaking that language's
// formatting conventions, so the prompt requests the language up front.
//
// This is a terminal stage: on failure it returns a fixed apology embedding
// the error detail, and is never retried.
func (g *Generator) Generate(ctx context.Context, query, sectorName, subprocessName, language string) string {
	systemPrompt := fmt.Sprintf(
		"You are an expert telecom customer support agent. The user has a complaint "+
			"under the sector: '%s' and subprocess: '%s'.\n\n"+
			"Provide a helpful response in the following format:\n"+
			"1. Acknowledge the issue empathetically\n"+
			"2. Provide 4-6 clear, actionable self-help troubleshooting steps the user can try\n"+
			"3. If the steps don't resolve the issue, advise them to contact their telecom "+
			"provider's customer care with their complaint reference\n"+
			"4. Provide a brief note about escalation options (nodal officer, TRAI portal, etc.)\n\n"+
			"IMPORTANT: Respond entirely in %s. "+
			"Keep the tone professional, empathetic, and helpful. "+
			"Use clear formatting with numbered steps.",
		sectorName, subprocessName, language,
	)

	raw, err := g.provider.Chat(ctx,
		[]llm.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: query},
		},
		llm.WithTemperature(temperature),
		llm.WithMaxTokens(maxTokens),
	)
	if err != nil {
		g.logger.Printf("[ERROR] resolution generation failed: %v", err)
		return fmt.Sprintf("I apologize, but I encountered an error generating the resolution. Please try again. Error: %v", err)
	}

	return raw
}
