package gateway

import (
	"encoding/json"
	"testing"

	"github.com/valpere/trangate/internal/translator"
)

func TestReshapeDetect(t *testing.T) {
	tests := []struct {
		name     string
		input    []translator.DetectResult
		expected string
	}{
		{
			name:     "no results",
			input:    nil,
			expected: `[]`,
		},
		{
			name:     "no alternatives",
			input:    []translator.DetectResult{{Language: "de", Score: 1}},
			expected: `[{"PrimaryLanguage":"de","score":1,"SecondaryLanguage":[]}]`,
		},
		{
			name: "each segment keeps its own alternatives",
			input: []translator.DetectResult{
				{Language: "en", Score: 0.9, Alternatives: []translator.LanguageScore{{Language: "es", Score: 0.5}}},
				{Language: "fr", Score: 0.8, Alternatives: []translator.LanguageScore{{Language: "it", Score: 0.3}, {Language: "ca", Score: 0.2}}},
			},
			expected: `[{"PrimaryLanguage":"en","score":0.9,"SecondaryLanguage":[{"language":"es","score":0.5}]},` +
				`{"PrimaryLanguage":"fr","score":0.8,"SecondaryLanguage":[{"language":"it","score":0.3},{"language":"ca","score":0.2}]}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(reshapeDetect(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(data) != tt.expected {
				t.Errorf("reshapeDetect() = %s, want %s", data, tt.expected)
			}
		})
	}
}

func TestReshapeBreakSentence_Broadcast(t *testing.T) {
	input := []translator.BreakSentenceResult{
		{SentLen: []int{4}, DetectedLanguage: json.RawMessage(`{"language":"en","score":1}`)},
		{SentLen: []int{9, 9}, DetectedLanguage: json.RawMessage(`{"language":"de","score":1}`)},
	}

	out, err := reshapeBreakSentence(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(out))
	}
	for i, r := range out {
		if len(r.SentenceLength) != 1 || r.SentenceLength[0] != "Sentence 1 : 4" {
			t.Errorf("element %d: unexpected lengths %v", i, r.SentenceLength)
		}
		if string(r.PrimaryLanguageDetected) != `{"language":"en","score":1}` {
			t.Errorf("element %d: expected first detected language, got %s", i, r.PrimaryLanguageDetected)
		}
	}
}

func TestReshapeBreakSentence_Empty(t *testing.T) {
	if _, err := reshapeBreakSentence(nil); err == nil {
		t.Error("expected error for empty upstream answer")
	}
}

func TestReshapeBreakSentence_NoDetectedLanguage(t *testing.T) {
	out, err := reshapeBreakSentence([]translator.BreakSentenceResult{{SentLen: []int{2}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, _ := json.Marshal(out)
	if string(data) != `[{"SentenceLength":["Sentence 1 : 2"],"PrimaryLanguageDetected":null}]` {
		t.Errorf("unexpected output %s", data)
	}
}

func TestFirstTranslations(t *testing.T) {
	if _, err := firstTranslations(nil); err == nil {
		t.Error("expected error for empty results")
	}

	got, err := firstTranslations([]translator.DictionaryResult{{Translations: json.RawMessage("null")}})
	if err != nil || string(got) != "[]" {
		t.Errorf("expected [], got %s (%v)", got, err)
	}

	got, err = firstTranslations([]translator.DictionaryResult{
		{Translations: json.RawMessage(`[{"displayTarget":"a"}]`)},
		{Translations: json.RawMessage(`[{"displayTarget":"b"}]`)},
	})
	if err != nil || string(got) != `[{"displayTarget":"a"}]` {
		t.Errorf("expected first element translations, got %s (%v)", got, err)
	}
}
