package matcher

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"telecom-complaint-be/internal/taxonomy"
	"telecom-complaint-be/pkg/llm/llmtest"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func mobileSector(t *testing.T) *taxonomy.Sector {
	t.Helper()
	sector, ok := taxonomy.DefaultMenu().Sector("1")
	if !ok {
		t.Fatal("mobile sector missing from default menu")
	}
	return &sector
}

func TestMatchSelectsEnumeratedSubprocess(t *testing.T) {
	fake := &llmtest.Fake{Responses: []string{
		`{"reasoning": "no 4G means a coverage problem", "matched_subprocess": "Network / Signal Problems", "confidence": 0.92}`,
	}}
	m := New(fake, testLogger())

	res := m.Match(context.Background(), "my 4G is not working at all", mobileSector(t))
	if res.Subprocess != "Network / Signal Problems" {
		t.Errorf("Subprocess = %q", res.Subprocess)
	}
	if res.Confidence != 0.92 {
		t.Errorf("Confidence = %v", res.Confidence)
	}
}

func TestMatchNormalizesInventedNames(t *testing.T) {
	// The model must not be trusted to stay inside the list; an invented
	// name maps to the sentinel, never to a "closest" subprocess.
	fake := &llmtest.Fake{Responses: []string{
		`{"reasoning": "made something up", "matched_subprocess": "Signal Troubles", "confidence": 0.8}`,
	}}
	m := New(fake, testLogger())

	res := m.Match(context.Background(), "bars missing", mobileSector(t))
	if res.Subprocess != GeneralInquiry {
		t.Errorf("Subprocess = %q, want %q", res.Subprocess, GeneralInquiry)
	}
}

func TestMatchFallbacks(t *testing.T) {
	tests := []struct {
		name string
		fake *llmtest.Fake
	}{
		{"gateway failure", &llmtest.Fake{Err: errors.New("timeout")}},
		{"malformed output", &llmtest.Fake{Responses: []string{"the user has a network problem"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.fake, testLogger())
			res := m.Match(context.Background(), "no bars", mobileSector(t))
			if res.Subprocess != GeneralInquiry {
				t.Errorf("Subprocess = %q, want %q", res.Subprocess, GeneralInquiry)
			}
		})
	}
}

func TestMatchPromptEnumeratesScopes(t *testing.T) {
	fake := &llmtest.Fake{Responses: []string{
		`{"reasoning": "ok", "matched_subprocess": "General Inquiry", "confidence": 0.1}`,
	}}
	m := New(fake, testLogger())
	sector := mobileSector(t)

	prompt := m.buildPrompt(sector)
	for _, sp := range sector.Matchable() {
		if !strings.Contains(prompt, sp.Name) {
			t.Errorf("prompt missing subprocess %q", sp.Name)
		}
	}
	if strings.Contains(prompt, `"`+taxonomy.OthersName+`"`) {
		t.Errorf("prompt should not enumerate %q", taxonomy.OthersName)
	}
}
