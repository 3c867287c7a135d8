package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/valpere/trangate/internal/translator"
)

type DetectResponse struct {
	PrimaryLanguage   string                     `json:"PrimaryLanguage"`
	Score             float64                    `json:"score"`
	SecondaryLanguage []translator.LanguageScore `json:"SecondaryLanguage"`
}

type BreakSentenceResponse struct {
	SentenceLength          []string        `json:"SentenceLength"`
	PrimaryLanguageDetected json.RawMessage `json:"PrimaryLanguageDetected"`
}

// reshapeDetect keeps one element per detected segment; each segment lists
// its own alternatives as secondary languages.
func reshapeDetect(results []translator.DetectResult) []DetectResponse {
	out := make([]DetectResponse, 0, len(results))
	for _, r := range results {
		secondary := make([]translator.LanguageScore, 0, len(r.Alternatives))
		secondary = append(secondary, r.Alternatives...)
		out = append(out, DetectResponse{
			PrimaryLanguage:   r.Language,
			Score:             r.Score,
			SecondaryLanguage: secondary,
		})
	}
	return out
}

// reshapeBreakSentence labels the first segment's sentence lengths and
// broadcasts them, with its detected language, to every output element.
func reshapeBreakSentence(results []translator.BreakSentenceResult) ([]BreakSentenceResponse, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("upstream returned no sentence data")
	}

	first := results[0]
	lengths := make([]string, len(first.SentLen))
	for i, n := range first.SentLen {
		lengths[i] = fmt.Sprintf("Sentence %d : %d", i+1, n)
	}

	out := make([]BreakSentenceResponse, len(results))
	for i := range results {
		out[i] = BreakSentenceResponse{
			SentenceLength:          lengths,
			PrimaryLanguageDetected: first.DetectedLanguage,
		}
	}
	return out, nil
}

func firstTranslations(results []translator.DictionaryResult) (json.RawMessage, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("upstream returned no dictionary results")
	}
	if len(results[0].Translations) == 0 || string(results[0].Translations) == "null" {
		return json.RawMessage("[]"), nil
	}
	return results[0].Translations, nil
}
