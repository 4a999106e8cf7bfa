// Package matcher maps a free-text complaint onto one of a sector's
// subprocesses by meaning, not keyword overlap.
package matcher

import (
	"context"
	"fmt"
	"log"
	"strings"

	"telecom-complaint-be/internal/taxonomy"
	"telecom-complaint-be/pkg/llm"
	"telecom-complaint-be/pkg/llm/parse"
)

// GeneralInquiry is the sentinel returned when no subprocess fits, the model
// invents a name outside the enumerated list, or the reasoning service fails.
const GeneralInquiry = "General Inquiry"

const (
	temperature = 0.0
	maxTokens   = 200
)

// Result is the matcher outcome for one query.
type Result struct {
	Subprocess string
	Confidence float64
	Reasoning  string
}

type modelAnswer struct {
	Reasoning         string  `json:"reasoning"`
	MatchedSubprocess string  `json:"matched_subprocess"`
	Confidence        float64 `json:"confidence"`
}

type Matcher struct {
	provider llm.LLMProvider
	logger   *log.Logger
}

func New(provider llm.LLMProvider, logger *log.Logger) *Matcher {
	return &Matcher{
		provider: provider,
		logger:   logger,
	}
}

// Match classifies the query into one of the sector's subprocesses.
//
// The returned name is guaranteed to be either a subprocess name enumerated
// for the sector or GeneralInquiry. A name the model invents is normalized
// to GeneralInquiry rather than fuzzy-matched to a "closest" entry.
func (m *Matcher) Match(ctx context.Context, query string, sector *taxonomy.Sector) Result {
	systemPrompt := m.buildPrompt(sector)

	raw, err := m.provider.Chat(ctx,
		[]llm.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: query},
		},
		llm.WithTemperature(temperature),
		llm.WithMaxTokens(maxTokens),
	)
	if err != nil {
		m.logger.Printf("[WARN] subprocess match call failed, using %q: %v", GeneralInquiry, err)
		return fallbackResult()
	}

	var answer modelAnswer
	if err := parse.Into(raw, &answer); err != nil {
		m.logger.Printf("[WARN] subprocess match output unparsable, using %q: %v", GeneralInquiry, err)
		return fallbackResult()
	}

	name := strings.TrimSpace(answer.MatchedSubprocess)
	if name != GeneralInquiry && !sector.HasSubprocessNamed(name) {
		m.logger.Printf("[WARN] model matched unknown subprocess %q for sector %q, using %q",
			name, sector.Name, GeneralInquiry)
		name = GeneralInquiry
	}

	return Result{
		Subprocess: name,
		Confidence: answer.Confidence,
		Reasoning:  answer.Reasoning,
	}
}

func fallbackResult() Result {
	return Result{
		Subprocess: GeneralInquiry,
		Reasoning:  "Fallback: subprocess could not be determined",
	}
}

func (m *Matcher) buildPrompt(sector *taxonomy.Sector) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("You are a semantic complaint classifier for: %s.\n", sector.Name))
	b.WriteString(fmt.Sprintf("Sector description: %s\n\n", sector.Description))
	b.WriteString("Below are the available subprocesses with descriptions of what each covers:\n\n")

	for _, sp := range sector.Matchable() {
		b.WriteString(fmt.Sprintf("SUBPROCESS: %q\n  Typical issues: %s\n\n", sp.Name, sp.SemanticScope))
	}

	b.WriteString("── YOUR TASK ──\n")
	b.WriteString("Analyze the user's complaint and determine which subprocess it belongs to.\n\n")
	b.WriteString("SEMANTIC MATCHING RULES:\n")
	b.WriteString("1. Think about what the user's ACTUAL PROBLEM is, not just matching keywords.\n")
	b.WriteString("2. A complaint about 'money gone but nothing happened' under Mobile = Billing issue.\n")
	b.WriteString("3. 'Phone shows no bars' = Network/Signal problem (even without the word 'network').\n")
	b.WriteString("4. 'Paid but plan not active' = Data Plan & Recharge issue.\n")
	b.WriteString("5. Consider synonyms, colloquial language, indirect descriptions.\n")
	b.WriteString("6. 'Net nahi chal raha' (Hindi for internet not working) under Broadband = Slow Speed/No Connectivity.\n")
	b.WriteString(fmt.Sprintf("7. If the complaint genuinely doesn't fit any subprocess, use '%s'.\n\n", GeneralInquiry))
	b.WriteString("Respond with ONLY this JSON:\n")
	b.WriteString(`{"reasoning": "<brief explanation of why this matches>", "matched_subprocess": "<exact subprocess name from the list>", "confidence": <0.0 to 1.0>}`)

	return b.String()
}
