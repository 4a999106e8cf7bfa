package parse

import (
	"errors"
	"testing"
)

func TestObject(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    map[string]any
		wantErr bool
	}{
		{
			name: "bare JSON",
			raw:  `{"reasoning": "billing complaint", "is_telecom": true}`,
			want: map[string]any{"reasoning": "billing complaint", "is_telecom": true},
		},
		{
			name: "fenced with language tag",
			raw:  "```json\n{\"reasoning\": \"billing complaint\", \"is_telecom\": true}\n```",
			want: map[string]any{"reasoning": "billing complaint", "is_telecom": true},
		},
		{
			name: "fenced without language tag",
			raw:  "```\n{\"language\": \"Hindi\", \"code\": \"hi\"}\n```",
			want: map[string]any{"language": "Hindi", "code": "hi"},
		},
		{
			name: "surrounding whitespace",
			raw:  "  \n {\"confidence\": 0.9} \n ",
			want: map[string]any{"confidence": 0.9},
		},
		{
			name:    "prose instead of JSON",
			raw:     "Sure! The complaint is about billing.",
			wantErr: true,
		},
		{
			name:    "truncated JSON",
			raw:     `{"reasoning": "cut off`,
			wantErr: true,
		},
		{
			name:    "empty output",
			raw:     "   ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Object(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Object(%q) expected error, got %v", tt.raw, got)
				}
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Errorf("error is %T, want *ParseError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Object(%q) unexpected error: %v", tt.raw, err)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("key %q = %v, want %v", k, got[k], v)
				}
			}
		})
	}
}

// Fenced and unfenced forms of the same object must parse identically.
func TestObjectFenceEquivalence(t *testing.T) {
	plain := `{"matched_subprocess": "Network / Signal Problems", "confidence": 0.92}`
	fenced := "```json\n" + plain + "\n```"

	a, err := Object(plain)
	if err != nil {
		t.Fatalf("plain: %v", err)
	}
	b, err := Object(fenced)
	if err != nil {
		t.Fatalf("fenced: %v", err)
	}

	if a["matched_subprocess"] != b["matched_subprocess"] || a["confidence"] != b["confidence"] {
		t.Errorf("fenced parse %v differs from plain parse %v", b, a)
	}
}

func TestInto(t *testing.T) {
	type verdict struct {
		Reasoning string `json:"reasoning"`
		IsTelecom bool   `json:"is_telecom"`
	}

	var v verdict
	err := Into("```json\n{\"reasoning\": \"ok\", \"is_telecom\": false}\n```", &v)
	if err != nil {
		t.Fatalf("Into: %v", err)
	}
	if v.Reasoning != "ok" || v.IsTelecom {
		t.Errorf("Into parsed %+v", v)
	}

	if err := Into("not json at all", &v); err == nil {
		t.Error("Into with prose should error")
	}
}
