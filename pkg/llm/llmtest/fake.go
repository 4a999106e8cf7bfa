// Package llmtest provides a scriptable LLMProvider for tests.
package llmtest

import (
	"context"
	"sync"

	"telecom-complaint-be/pkg/llm"
)

// Fake replays scripted responses in order and records every call. When the
// script runs out, the last response repeats. A non-nil Err fails every call,
// simulating an unreachable reasoning service.
type Fake struct {
	mu        sync.Mutex
	Responses []string
	Err       error

	Calls   int
	Prompts []string      // last user-message content per call
	Options []llm.Options // resolved options per call
}

var _ llm.LLMProvider = &Fake{}

func (f *Fake) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	opts := llm.Options{}
	for _, o := range options {
		o(&opts)
	}

	prompt := ""
	for _, m := range history {
		if m.Role == "user" {
			prompt = m.Content
		}
	}

	idx := f.Calls
	f.Calls++
	f.Prompts = append(f.Prompts, prompt)
	f.Options = append(f.Options, opts)

	if f.Err != nil {
		return "", f.Err
	}
	if len(f.Responses) == 0 {
		return "", nil
	}
	if idx >= len(f.Responses) {
		idx = len(f.Responses) - 1
	}
	return f.Responses[idx], nil
}

func (f *Fake) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

// CallCount returns the number of calls issued so far.
func (f *Fake) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls
}
