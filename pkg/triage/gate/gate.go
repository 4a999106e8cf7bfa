// Package gate decides whether a complaint belongs to the telecom domain.
package gate

import (
	"context"
	"fmt"
	"log"
	"strings"

	"telecom-complaint-be/pkg/llm"
	"telecom-complaint-be/pkg/llm/parse"
)

const (
	temperature = 0.0
	maxTokens   = 120
)

// Decision is the domain-gate outcome for one query.
type Decision struct {
	InDomain  bool
	Reasoning string
}

// verdict mirrors the JSON the classifier is instructed to emit.
type verdict struct {
	Reasoning string `json:"reasoning"`
	IsTelecom bool   `json:"is_telecom"`
}

// Gate performs semantic in-domain classification. The model reasons about
// the user's intent, not about whether telecom keywords appear.
type Gate struct {
	provider llm.LLMProvider
	logger   *log.Logger
}

func New(provider llm.LLMProvider, logger *log.Logger) *Gate {
	return &Gate{
		provider: provider,
		logger:   logger,
	}
}

// Check classifies the query. sectorName and subprocessName may be empty when
// the user has not navigated the menu.
//
// Fallback policy is asymmetric on purpose: if the reasoning service fails or
// returns garbage AND sector context exists, the query is accepted: the user
// already navigated a telecom menu, so rejecting them there is the expensive
// mistake. Without sector context the gate fails closed.
func (g *Gate) Check(ctx context.Context, query, sectorName, subprocessName string) Decision {
	systemPrompt := g.buildPrompt(sectorName, subprocessName)

	raw, err := g.provider.Chat(ctx,
		[]llm.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: query},
		},
		llm.WithTemperature(temperature),
		llm.WithMaxTokens(maxTokens),
	)
	if err != nil {
		g.logger.Printf("[WARN] domain gate call failed, using fallback: %v", err)
		return g.fallback(sectorName)
	}

	var v verdict
	if err := parse.Into(raw, &v); err != nil {
		g.logger.Printf("[WARN] domain gate output unparsable, using fallback: %v", err)
		return g.fallback(sectorName)
	}

	return Decision{InDomain: v.IsTelecom, Reasoning: v.Reasoning}
}

func (g *Gate) fallback(sectorName string) Decision {
	if sectorName != "" {
		return Decision{InDomain: true, Reasoning: "Fallback: user navigated the telecom menu, giving benefit of the doubt"}
	}
	return Decision{InDomain: false, Reasoning: "Fallback: no menu context, failing closed"}
}

func (g *Gate) buildPrompt(sectorName, subprocessName string) string {
	var b strings.Builder

	b.WriteString("You are a semantic intent classifier for a TELECOM complaint chatbot.\n\n")
	b.WriteString("Your job is to determine whether the user's query is related to telecommunications.\n\n")
	b.WriteString("TELECOM includes (but is not limited to):\n")
	b.WriteString("- Mobile phone services (calls, SMS, data, prepaid, postpaid)\n")
	b.WriteString("- Internet/broadband/WiFi/fiber services\n")
	b.WriteString("- DTH/cable TV/satellite TV\n")
	b.WriteString("- Landline/fixed-line telephone\n")
	b.WriteString("- Enterprise telecom (leased lines, VPN, MPLS, SLA)\n")
	b.WriteString("- ANY billing, payment, refund, service quality, or customer care issue related to any of the above\n\n")
	b.WriteString("SEMANTIC REASONING RULES:\n")
	b.WriteString("1. Focus on the USER'S INTENT, not just the words they used.\n")
	b.WriteString("2. 'Money deducted' in a telecom context = telecom billing issue.\n")
	b.WriteString("3. 'Service not working' in a telecom context = telecom service disruption.\n")
	b.WriteString("4. Vague complaints ARE telecom if the user came through the telecom menu.\n")
	b.WriteString("5. Only reject if the query is CLEARLY about a non-telecom industry.\n")

	if sectorName != "" {
		b.WriteString("\n── USER'S MENU NAVIGATION ──\n")
		b.WriteString(fmt.Sprintf("The user already selected telecom sector: %q", sectorName))
		if subprocessName != "" {
			b.WriteString(fmt.Sprintf("\nThey also selected subprocess: %q", subprocessName))
		}
		b.WriteString("\n\nBecause the user navigated a TELECOM complaint menu to reach this point, ")
		b.WriteString("their query is almost certainly telecom-related. Generic complaints like ")
		b.WriteString("'money deducted', 'service not working', 'bad experience', 'want refund', ")
		b.WriteString("'not getting what I paid for' etc. should be interpreted in the telecom context.\n")
		b.WriteString("Only classify as NOT telecom if the query is EXPLICITLY about a completely ")
		b.WriteString("different industry (e.g., 'my pizza was cold', 'Amazon package not delivered', ")
		b.WriteString("'hospital appointment issue', 'my car insurance claim').\n")
	}

	b.WriteString("\nRespond with ONLY this JSON (no extra text):\n")
	b.WriteString(`{"reasoning": "<one sentence about why>", "is_telecom": true/false}`)

	return b.String()
}
