package translator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// APIVersion is the Microsoft Translator API version sent on every call.
const APIVersion = "3.0"

// ErrUnsupported is returned by services that cannot perform an operation.
var ErrUnsupported = errors.New("operation not supported by upstream")

type ServiceConfig struct {
	Endpoint        string        `mapstructure:"endpoint" json:"endpoint"`
	SubscriptionKey string        `mapstructure:"subscriptionKey" json:"subscriptionKey"`
	Location        string        `mapstructure:"location" json:"location"`
	Timeout         time.Duration `mapstructure:"timeout" json:"timeout"`
	Credentials     string        `mapstructure:"credentials" json:"credentials"`
	ProjectID       string        `mapstructure:"projectId" json:"projectId"`
}

type TranslateRequest struct {
	Text string `json:"text" validate:"required" example:"Flower"`
	To   string `json:"to" validate:"required" example:"te"`
}

type DetectRequest struct {
	Text string `json:"text" validate:"required" example:"Good to see you"`
}

type TransliterateRequest struct {
	Text       string `json:"text" validate:"required" example:"สวัสดี"`
	Language   string `json:"language" validate:"required" example:"th"`
	FromScript string `json:"fromScript" validate:"required" example:"Thai"`
	ToScript   string `json:"toScript" validate:"required" example:"Latn"`
}

type BreakSentenceRequest struct {
	Text string `json:"text" validate:"required" example:"Hello, how are you? Hope you are doing great! Have a good time"`
}

type AlternateTranslationRequest struct {
	Text string `json:"text" validate:"required" example:"shark"`
	From string `json:"from" validate:"required" example:"en"`
	To   string `json:"to" validate:"required" example:"es"`
}

// LanguageScore is a candidate language with its confidence.
type LanguageScore struct {
	Language string  `json:"language"`
	Score    float64 `json:"score"`
}

type DetectResult struct {
	Language     string          `json:"language"`
	Score        float64         `json:"score"`
	Alternatives []LanguageScore `json:"alternatives,omitempty"`
}

type BreakSentenceResult struct {
	SentLen          []int           `json:"sentLen"`
	DetectedLanguage json.RawMessage `json:"detectedLanguage,omitempty"`
}

type DictionaryResult struct {
	NormalizedSource string          `json:"normalizedSource"`
	DisplaySource    string          `json:"displaySource"`
	Translations     json.RawMessage `json:"translations"`
}

// UpstreamError is a non-2xx answer from the translation service.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("Request failed with status code %d", e.StatusCode)
	}
	return fmt.Sprintf("Request failed with status code %d: %s", e.StatusCode, e.Message)
}

// Service is a translation upstream. Each method issues at most one outbound call.
type Service interface {
	Name() string
	Languages(ctx context.Context, scope string) (json.RawMessage, error)
	Translate(ctx context.Context, req TranslateRequest) (json.RawMessage, error)
	Detect(ctx context.Context, req DetectRequest) ([]DetectResult, error)
	Transliterate(ctx context.Context, req TransliterateRequest) (json.RawMessage, error)
	BreakSentence(ctx context.Context, req BreakSentenceRequest) ([]BreakSentenceResult, error)
	DictionaryLookup(ctx context.Context, req AlternateTranslationRequest) ([]DictionaryResult, error)
	IsAvailable(ctx context.Context) error
}
