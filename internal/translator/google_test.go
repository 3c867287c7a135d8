package translator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/api/option"
)

func newTestGoogle(t *testing.T, handler http.HandlerFunc) *GoogleService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc, err := NewGoogleService(context.Background(), ServiceConfig{Endpoint: server.URL + "/"},
		option.WithoutAuthentication(), option.WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { svc.Close() })
	return svc
}

func TestGoogleService_Name(t *testing.T) {
	svc := newTestGoogle(t, func(w http.ResponseWriter, r *http.Request) {})

	if svc.Name() != "google" {
		t.Errorf("expected 'google', got %q", svc.Name())
	}
}

func TestGoogleService_Unsupported(t *testing.T) {
	svc := newTestGoogle(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected upstream call to %s", r.URL.Path)
	})
	ctx := context.Background()

	if _, err := svc.Transliterate(ctx, TransliterateRequest{Text: "a", Language: "th", FromScript: "Thai", ToScript: "Latn"}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
	if _, err := svc.BreakSentence(ctx, BreakSentenceRequest{Text: "a"}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
	if _, err := svc.DictionaryLookup(ctx, AlternateTranslationRequest{Text: "a", From: "en", To: "es"}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
	if _, err := svc.Languages(ctx, "dictionary"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}

func TestGoogleService_Translate_InvalidTarget(t *testing.T) {
	svc := newTestGoogle(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected upstream call to %s", r.URL.Path)
	})

	if _, err := svc.Translate(context.Background(), TranslateRequest{Text: "Hello", To: "not a tag!"}); err == nil {
		t.Error("expected error for invalid target language")
	}
}

func TestGoogleService_Translate(t *testing.T) {
	svc := newTestGoogle(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"translations":[{"translatedText":"Hola","detectedSourceLanguage":"en"}]}}`))
	})

	out, err := svc.Translate(context.Background(), TranslateRequest{Text: "Hello", To: "es"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var parsed []struct {
		DetectedLanguage LanguageScore `json:"detectedLanguage"`
		Translations     []struct {
			Text string `json:"text"`
			To   string `json:"to"`
		} `json:"translations"`
	}
	if err := json.Unmarshal(out, &parsed); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(parsed) != 1 || len(parsed[0].Translations) != 1 {
		t.Fatalf("unexpected shape %s", out)
	}
	if parsed[0].Translations[0].Text != "Hola" || parsed[0].Translations[0].To != "es" {
		t.Errorf("unexpected translation %+v", parsed[0].Translations[0])
	}
	if parsed[0].DetectedLanguage.Language != "en" {
		t.Errorf("expected detected 'en', got %q", parsed[0].DetectedLanguage.Language)
	}
}

func TestGoogleService_Detect(t *testing.T) {
	svc := newTestGoogle(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "detect") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"detections":[[{"language":"en","confidence":0.9},{"language":"es","confidence":0.5}]]}}`))
	})

	out, err := svc.Detect(context.Background(), DetectRequest{Text: "Hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].Language != "en" || out[0].Score != 0.9 {
		t.Fatalf("unexpected result %+v", out)
	}
	if len(out[0].Alternatives) != 1 || out[0].Alternatives[0].Language != "es" {
		t.Errorf("unexpected alternatives %+v", out[0].Alternatives)
	}
}

func TestGoogleService_Detect_EmptySegment(t *testing.T) {
	svc := newTestGoogle(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"detections":[[]]}}`))
	})

	out, err := svc.Detect(context.Background(), DetectRequest{Text: "?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected one result per segment, got %d", len(out))
	}
	if out[0].Language != "" || len(out[0].Alternatives) != 0 {
		t.Errorf("expected empty result, got %+v", out[0])
	}
}

func TestGoogleService_Languages(t *testing.T) {
	svc := newTestGoogle(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "languages") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"languages":[{"language":"en","name":"English"},{"language":"es","name":"Spanish"}]}}`))
	})

	out, err := svc.Languages(context.Background(), "translation")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var parsed map[string]map[string]struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(out, &parsed); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	catalog, ok := parsed["translation"]
	if !ok {
		t.Fatalf("expected translation scope, got %s", out)
	}
	if len(catalog) != 2 || catalog["en"].Name != "English" || catalog["es"].Name != "Spanish" {
		t.Errorf("unexpected catalog %+v", catalog)
	}
}
