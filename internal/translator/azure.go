package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

const DefaultAzureEndpoint = "https://api.cognitive.microsofttranslator.com"

// maxResponseSize caps how much of an upstream body is read.
const maxResponseSize = 10 << 20

// AzureService talks to the Microsoft Translator v3 REST API.
type AzureService struct {
	endpoint string
	key      string
	region   string
	client   *http.Client
	traceID  func() string
}

var _ Service = (*AzureService)(nil)

type textItem struct {
	Text string `json:"text"`
}

func NewAzureService(cfg ServiceConfig) *AzureService {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultAzureEndpoint
	}
	return &AzureService{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		key:      cfg.SubscriptionKey,
		region:   cfg.Location,
		client:   &http.Client{Timeout: cfg.Timeout},
		traceID:  uuid.NewString,
	}
}

func (s *AzureService) Name() string {
	return "azure"
}

func (s *AzureService) Languages(ctx context.Context, scope string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("scope", scope)

	var out json.RawMessage
	if err := s.call(ctx, http.MethodGet, "/languages", params, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *AzureService) Translate(ctx context.Context, req TranslateRequest) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("to", req.To)
	params.Set("profanityAction", "Marked")

	var out json.RawMessage
	if err := s.call(ctx, http.MethodPost, "/translate", params, []textItem{{Text: req.Text}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *AzureService) Detect(ctx context.Context, req DetectRequest) ([]DetectResult, error) {
	var out []DetectResult
	if err := s.call(ctx, http.MethodPost, "/detect", url.Values{}, []textItem{{Text: req.Text}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *AzureService) Transliterate(ctx context.Context, req TransliterateRequest) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("language", req.Language)
	params.Set("fromScript", req.FromScript)
	params.Set("toScript", req.ToScript)

	var out json.RawMessage
	if err := s.call(ctx, http.MethodPost, "/transliterate", params, []textItem{{Text: req.Text}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *AzureService) BreakSentence(ctx context.Context, req BreakSentenceRequest) ([]BreakSentenceResult, error) {
	var out []BreakSentenceResult
	if err := s.call(ctx, http.MethodPost, "/breaksentence", url.Values{}, []textItem{{Text: req.Text}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *AzureService) DictionaryLookup(ctx context.Context, req AlternateTranslationRequest) ([]DictionaryResult, error) {
	params := url.Values{}
	params.Set("from", req.From)
	params.Set("to", req.To)

	var out []DictionaryResult
	if err := s.call(ctx, http.MethodPost, "/dictionary/lookup", params, []textItem{{Text: req.Text}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *AzureService) IsAvailable(ctx context.Context) error {
	if s.key == "" {
		return fmt.Errorf("translator subscription key not configured")
	}
	return nil
}

// call performs a single request against the upstream and decodes the JSON
// answer into out. A nil body sends no payload.
func (s *AzureService) call(ctx context.Context, method, path string, params url.Values, body any, out any) error {
	params.Set("api-version", APIVersion)
	endpoint := s.endpoint + path + "?" + params.Encode()

	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Ocp-Apim-Subscription-Key", s.key)
	if s.region != "" {
		httpReq.Header.Set("Ocp-Apim-Subscription-Region", s.region)
	}
	httpReq.Header.Set("X-ClientTraceId", s.traceID())

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpstreamError{StatusCode: resp.StatusCode, Message: upstreamMessage(data)}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// upstreamMessage extracts error.message from a Translator error body.
func upstreamMessage(data []byte) string {
	var errResp struct {
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &errResp); err != nil {
		return ""
	}
	return errResp.Error.Message
}
