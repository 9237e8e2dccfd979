// Package relay forwards a single translation request to a provider and
// reshapes the outcome for browser clients. Failures never escape as errors:
// they are reported in the Error field of the response.
package relay

import (
	"context"
	"time"

	"github.com/valpere/perelay/internal/translator"
)

const DefaultTimeout = 10 * time.Second

type Request struct {
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
	Text       string `json:"text"`
}

// Response fields are nil when absent and serialize as JSON null.
// TranslatedText and Error are never both set.
type Response struct {
	TranslatedText *string `json:"translated_text"`
	Src            *string `json:"src"`
	Dest           *string `json:"dest"`
	Error          *string `json:"error"`
}

// Failed reports whether the response carries an error.
func (r Response) Failed() bool {
	return r.Error != nil
}

type Relay struct {
	service translator.TranslationService
	timeout time.Duration
}

func New(service translator.TranslationService, timeout time.Duration) *Relay {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Relay{service: service, timeout: timeout}
}

func (r *Relay) ServiceName() string {
	return r.service.Name()
}

func (r *Relay) Translate(ctx context.Context, req Request) Response {
	if req.SourceLang == req.TargetLang {
		return Response{
			TranslatedText: ptr(req.Text),
			Src:            ptr(req.SourceLang),
			Dest:           ptr(req.TargetLang),
		}
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.service.Translate(ctx, translator.TranslateRequest{
		Text:       req.Text,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
	})
	switch {
	case err != nil:
		return failure(req, err.Error())
	case res == nil:
		return failure(req, "no translation returned")
	case res.Error != "":
		return failure(req, res.Error)
	}

	src := req.SourceLang
	if res.DetectedLang != "" {
		src = res.DetectedLang
	}

	return Response{
		TranslatedText: ptr(res.TranslatedText),
		Src:            ptr(src),
		Dest:           ptr(req.TargetLang),
	}
}

func failure(req Request, reason string) Response {
	if reason == "" {
		reason = "translation failed"
	}
	return Response{
		Src:   ptr(req.SourceLang),
		Dest:  ptr(req.TargetLang),
		Error: ptr(reason),
	}
}

func ptr(s string) *string {
	return &s
}
