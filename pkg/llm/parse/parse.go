// Package parse extracts structured JSON from reasoning-service replies.
//
// Models asked for "ONLY JSON" still wrap their answer in markdown code
// fences often enough that every call site needs the same unwrapping. The
// policy here is deliberate: strip the fence, then parse strictly. Malformed
// JSON is never patched up; callers receive a *ParseError and apply their
// stage's documented fallback.
package parse

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseError reports that a reply could not be interpreted as a JSON object.
type ParseError struct {
	Reason string
	Raw    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparsable model output: %s", e.Reason)
}

// Object extracts a JSON object from raw model output.
func Object(raw string) (map[string]any, error) {
	body, err := unwrap(raw)
	if err != nil {
		return nil, err
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		return nil, &ParseError{Reason: err.Error(), Raw: raw}
	}
	return out, nil
}

// Into extracts a JSON object from raw model output and unmarshals it into v.
func Into(raw string, v any) error {
	body, err := unwrap(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return &ParseError{Reason: err.Error(), Raw: raw}
	}
	return nil
}

// unwrap trims whitespace and removes a surrounding markdown code fence,
// including an optional language tag ("```json").
func unwrap(raw string) (string, error) {
	body := strings.TrimSpace(raw)
	if body == "" {
		return "", &ParseError{Reason: "empty output", Raw: raw}
	}

	if strings.HasPrefix(body, "```") {
		parts := strings.Split(body, "```")
		if len(parts) < 2 {
			return "", &ParseError{Reason: "unterminated code fence", Raw: raw}
		}
		body = parts[1]
		body = strings.TrimPrefix(body, "json")
		body = strings.TrimSpace(body)
	}

	return body, nil
}
