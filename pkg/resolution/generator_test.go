package resolution

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"telecom-complaint-be/pkg/llm/llmtest"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestGenerateReturnsModelOutput(t *testing.T) {
	reply := "I'm sorry to hear your 4G is down.\n1. Restart your phone\n2. Toggle airplane mode"
	fake := &llmtest.Fake{Responses: []string{reply}}
	g := New(fake, testLogger())

	got := g.Generate(context.Background(), "my 4G is not working",
		"Mobile Services (Prepaid / Postpaid)", "Network / Signal Problems", "English")
	if got != reply {
		t.Errorf("Generate = %q, want model output verbatim", got)
	}
	if fake.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", fake.CallCount())
	}
}

func TestGeneratePromptCarriesContext(t *testing.T) {
	fake := &llmtest.Fake{Responses: []string{"ok"}}
	g := New(fake, testLogger())
	g.Generate(context.Background(), "slow internet", "Broadband / Internet Services", "Slow Speed / No Connectivity", "Hindi")

	if len(fake.Options) != 1 {
		t.Fatalf("calls = %d, want 1", len(fake.Options))
	}
	if fake.Options[0].Temperature != temperature {
		t.Errorf("temperature = %v, want %v", fake.Options[0].Temperature, temperature)
	}
	if fake.Prompts[0] != "slow internet" {
		t.Errorf("user prompt = %q", fake.Prompts[0])
	}
}

func TestGenerateApologyOnFailure(t *testing.T) {
	fake := &llmtest.Fake{Err: errors.New("deployment not found")}
	g := New(fake, testLogger())

	got := g.Generate(context.Background(), "no dial tone", "Landline / Fixed Line Services", "No Dial Tone / Dead Line", "English")
	if !strings.Contains(got, "I apologize") {
		t.Errorf("fallback missing apology: %q", got)
	}
	if !strings.Contains(got, "deployment not found") {
		t.Errorf("fallback should embed error detail for diagnosability: %q", got)
	}
}
