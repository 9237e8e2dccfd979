package translator

import (
	"context"
	"errors"
	"net/url"
	"time"
)

// ServiceConfig carries provider settings resolved from configuration.
type ServiceConfig struct {
	BaseURL     string        `mapstructure:"base_url" json:"base_url"`
	Timeout     time.Duration `mapstructure:"timeout" json:"timeout"`
	Credentials string        `mapstructure:"credentials" json:"credentials"`
	ProjectID   string        `mapstructure:"project_id" json:"project_id"`
	Email       string        `mapstructure:"email" json:"email"`
}

type TranslateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

// ServiceResult is what a provider returns. DetectedLang is empty when the
// provider did not report a source language.
type ServiceResult struct {
	ServiceName    string        `json:"service_name"`
	TranslatedText string        `json:"translated_text"`
	DetectedLang   string        `json:"detected_lang,omitempty"`
	Latency        time.Duration `json:"latency"`
	Error          string        `json:"error,omitempty"`
}

type TranslationService interface {
	Name() string
	Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error)
	IsAvailable(ctx context.Context) error
	SupportedLanguages(ctx context.Context) ([]string, error)
}

func isAuto(lang string) bool {
	return lang == "" || lang == "auto"
}

// stripURL drops the request URL from transport errors. Query strings carry
// the user's text, which must not reach responses or logs.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
