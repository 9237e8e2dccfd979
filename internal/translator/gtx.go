package translator

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

const DefaultGTXURL = "https://translate.googleapis.com/translate_a/single"

// GTXService talks to the keyless Google Translate web endpoint
// (client=gtx). Its response is an undocumented nested array, so decoding
// is lenient wherever a sensible default exists.
type GTXService struct {
	baseURL string
	client  *http.Client
}

func NewGTXService(baseURL string, timeout time.Duration) *GTXService {
	if baseURL == "" {
		baseURL = DefaultGTXURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &GTXService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *GTXService) Name() string {
	return "gtx"
}

func (s *GTXService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", req.SourceLang)
	params.Set("tl", req.TargetLang)
	params.Set("dt", "t")
	params.Set("q", req.Text)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		result.Error = fmt.Sprintf("failed to create request: %v", err)
		return result, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		err = stripURL(err)
		result.Error = fmt.Sprintf("request failed: %v", err)
		return result, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		result.Error = fmt.Sprintf("failed to read response: %v", err)
		return result, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		result.Error = fmt.Sprintf("API returned status %d", resp.StatusCode)
		return result, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	text, detected, err := parseGTXResponse(body)
	if err != nil {
		result.Error = fmt.Sprintf("failed to decode response: %v", err)
		return result, fmt.Errorf("failed to decode response: %w", err)
	}

	result.TranslatedText = text
	result.DetectedLang = detected

	return result, nil
}

// parseGTXResponse extracts the translation from a payload shaped like
//
//	[[["xin chào","hello",null,null,1], ...], null, "en", ...]
//
// Element 0 must be an array of segments, each an array whose first element
// is a string. Element 2 is the detected source language and is returned
// empty when missing or not a string.
func parseGTXResponse(body []byte) (string, string, error) {
	var data []any
	if err := sonic.Unmarshal(body, &data); err != nil {
		return "", "", err
	}
	if len(data) == 0 {
		return "", "", fmt.Errorf("empty response")
	}

	segments, ok := data[0].([]any)
	if !ok {
		return "", "", fmt.Errorf("unexpected response format: element 0 is %T, want array", data[0])
	}

	var sb strings.Builder
	for i, seg := range segments {
		parts, ok := seg.([]any)
		if !ok || len(parts) == 0 {
			return "", "", fmt.Errorf("unexpected response format: segment %d is %T", i, seg)
		}
		text, ok := parts[0].(string)
		if !ok {
			return "", "", fmt.Errorf("unexpected response format: segment %d text is %T", i, parts[0])
		}
		sb.WriteString(text)
	}

	var detected string
	if len(data) > 2 {
		detected, _ = data[2].(string)
	}

	return sb.String(), detected, nil
}

func (s *GTXService) IsAvailable(ctx context.Context) error {
	return nil
}

func (s *GTXService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return []string{
		"auto", "en", "vi", "fr", "de", "es", "it", "pt", "ru", "ja",
		"ko", "zh-CN", "zh-TW", "th", "id", "ms", "ar", "hi", "tr", "nl",
		"pl", "uk", "sv", "da", "no", "fi", "el", "he", "cs", "hu", "ro",
	}, nil
}
