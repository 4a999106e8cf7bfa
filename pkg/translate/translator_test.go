package translate

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"telecom-complaint-be/pkg/llm/llmtest"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// translate(text, "English") must be the identity, with zero gateway calls.
func TestTranslateEnglishIdentity(t *testing.T) {
	fake := &llmtest.Fake{Responses: []string{"should never be used"}}
	tr := New(fake, testLogger())

	texts := []string{"Billing & Payment Issues", "", "Please enter your complaint/query.", "नमस्ते"}
	targets := []string{"English", "english", "EN", "en"}

	for _, text := range texts {
		for _, target := range targets {
			if got := tr.Translate(context.Background(), text, target); got != text {
				t.Errorf("Translate(%q, %q) = %q, want identity", text, target, got)
			}
		}
	}

	if fake.CallCount() != 0 {
		t.Errorf("gateway calls = %d, want 0 for English targets", fake.CallCount())
	}
}

func TestTranslateReturnsGatewayOutput(t *testing.T) {
	fake := &llmtest.Fake{Responses: []string{"बिलिंग और भुगतान समस्याएँ"}}
	tr := New(fake, testLogger())

	got := tr.Translate(context.Background(), "Billing & Payment Issues", "Hindi")
	if got != "बिलिंग और भुगतान समस्याएँ" {
		t.Errorf("Translate = %q", got)
	}
}

func TestTranslateMemoizesPerLanguageAndText(t *testing.T) {
	fake := &llmtest.Fake{Responses: []string{"अनुवाद"}}
	tr := New(fake, testLogger())

	for i := 0; i < 3; i++ {
		tr.Translate(context.Background(), "Others", "Hindi")
	}
	if fake.CallCount() != 1 {
		t.Errorf("gateway calls = %d, want 1 (cached afterwards)", fake.CallCount())
	}

	tr.Translate(context.Background(), "Others", "Tamil")
	if fake.CallCount() != 2 {
		t.Errorf("gateway calls = %d, want 2 (different language misses cache)", fake.CallCount())
	}
}

func TestTranslateFallbackOnFailure(t *testing.T) {
	fake := &llmtest.Fake{Err: errors.New("gateway down")}
	tr := New(fake, testLogger())

	original := "I can only assist with telecom-related complaints."
	if got := tr.Translate(context.Background(), original, "Hindi"); got != original {
		t.Errorf("Translate = %q, want original text on failure", got)
	}
}
