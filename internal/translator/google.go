package translator

import (
	"context"
	"encoding/json"
	"fmt"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// GoogleService serves the subset of operations Cloud Translation v2 offers.
// Answers are reshaped into the Microsoft wire format so handlers stay uniform.
type GoogleService struct {
	client *translate.Client
}

var _ Service = (*GoogleService)(nil)

func NewGoogleService(ctx context.Context, cfg ServiceConfig, extra ...option.ClientOption) (*GoogleService, error) {
	opts := []option.ClientOption{}
	if cfg.Credentials != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Credentials))
	}
	if cfg.SubscriptionKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.SubscriptionKey))
	}
	if cfg.ProjectID != "" {
		opts = append(opts, option.WithQuotaProject(cfg.ProjectID))
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}
	opts = append(opts, extra...)

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &GoogleService{client: client}, nil
}

func (s *GoogleService) Name() string {
	return "google"
}

func (s *GoogleService) Close() error {
	return s.client.Close()
}

func (s *GoogleService) Languages(ctx context.Context, scope string) (json.RawMessage, error) {
	if scope != "translation" {
		return nil, fmt.Errorf("scope %q: %w", scope, ErrUnsupported)
	}

	langs, err := s.client.SupportedLanguages(ctx, language.English)
	if err != nil {
		return nil, fmt.Errorf("failed to list languages: %w", err)
	}

	catalog := make(map[string]map[string]string, len(langs))
	for _, l := range langs {
		catalog[l.Tag.String()] = map[string]string{"name": l.Name}
	}
	return json.Marshal(map[string]any{"translation": catalog})
}

func (s *GoogleService) Translate(ctx context.Context, req TranslateRequest) (json.RawMessage, error) {
	target, err := language.Parse(req.To)
	if err != nil {
		return nil, fmt.Errorf("invalid target language: %w", err)
	}

	translations, err := s.client.Translate(ctx, []string{req.Text}, target, &translate.Options{
		Format: translate.Text,
	})
	if err != nil {
		return nil, fmt.Errorf("translation failed: %w", err)
	}
	if len(translations) == 0 {
		return nil, fmt.Errorf("no translation returned")
	}

	type translation struct {
		Text string `json:"text"`
		To   string `json:"to"`
	}
	type result struct {
		DetectedLanguage *LanguageScore `json:"detectedLanguage,omitempty"`
		Translations     []translation  `json:"translations"`
	}

	out := make([]result, 0, len(translations))
	for _, t := range translations {
		r := result{Translations: []translation{{Text: t.Text, To: req.To}}}
		if t.Source != language.Und {
			r.DetectedLanguage = &LanguageScore{Language: t.Source.String(), Score: 1.0}
		}
		out = append(out, r)
	}
	return json.Marshal(out)
}

func (s *GoogleService) Detect(ctx context.Context, req DetectRequest) ([]DetectResult, error) {
	detections, err := s.client.DetectLanguage(ctx, []string{req.Text})
	if err != nil {
		return nil, fmt.Errorf("detection failed: %w", err)
	}

	out := make([]DetectResult, 0, len(detections))
	for _, ds := range detections {
		// Keep one result per input segment even when nothing was detected.
		if len(ds) == 0 {
			out = append(out, DetectResult{})
			continue
		}
		r := DetectResult{Language: ds[0].Language.String(), Score: ds[0].Confidence}
		for _, alt := range ds[1:] {
			r.Alternatives = append(r.Alternatives, LanguageScore{Language: alt.Language.String(), Score: alt.Confidence})
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *GoogleService) Transliterate(ctx context.Context, req TransliterateRequest) (json.RawMessage, error) {
	return nil, fmt.Errorf("transliterate: %w", ErrUnsupported)
}

func (s *GoogleService) BreakSentence(ctx context.Context, req BreakSentenceRequest) ([]BreakSentenceResult, error) {
	return nil, fmt.Errorf("breaksentence: %w", ErrUnsupported)
}

func (s *GoogleService) DictionaryLookup(ctx context.Context, req AlternateTranslationRequest) ([]DictionaryResult, error) {
	return nil, fmt.Errorf("dictionary lookup: %w", ErrUnsupported)
}

func (s *GoogleService) IsAvailable(ctx context.Context) error {
	return nil
}
