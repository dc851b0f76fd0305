package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"Mainu/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MenuProcessingService turns recognized menu text into a structured template.
type MenuProcessingService interface {
	Submit(ctx context.Context, req models.ProcessingRequest) (models.MenuTemplate, error)
	PollStatus(ctx context.Context, templateID uuid.UUID) (models.ProcessingState, error)
}

// ProxyMenuProcessingService submits text to the translation proxy and
// decodes the menu JSON embedded in its chat-style envelope.
type ProxyMenuProcessingService struct {
	transport proxyTransport
	languages Languages
	logger    *zap.Logger
}

// Languages are the fallbacks used when a request leaves its languages empty.
type Languages struct {
	In  string
	Out string
}

func (l Languages) resolve(in, out string) (string, string) {
	in, out = strings.TrimSpace(in), strings.TrimSpace(out)
	if in == "" {
		in = l.In
	}
	if out == "" {
		out = l.Out
	}
	return in, out
}

// NewProxyMenuProcessingService wires the proxy client. A nil client gets the
// default 120s timeout; a nil logger is replaced by a no-op logger.
func NewProxyMenuProcessingService(endpoint, token string, client *http.Client, languages Languages, logger *zap.Logger) *ProxyMenuProcessingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProxyMenuProcessingService{
		transport: newProxyTransport(endpoint, token, client),
		languages: languages,
		logger:    logger.With(zap.String("component", "menu_proxy")),
	}
}

func (s *ProxyMenuProcessingService) Submit(ctx context.Context, req models.ProcessingRequest) (models.MenuTemplate, error) {
	text := strings.TrimSpace(req.RecognizedText)
	if text == "" {
		s.logger.Info("Submit aborted: empty recognized text")
		return models.MenuTemplate{}, ErrEmptyRecognizedText
	}

	langIn, langOut := s.languages.resolve(req.LanguageIn, req.LanguageOut)
	s.logger.Info("Submitting menu text",
		zap.String("upload_id", req.UploadID.String()),
		zap.Int("pages", req.PageCount),
		zap.String("lang_in", langIn),
		zap.String("lang_out", langOut))

	start := time.Now()
	status, body, err := s.transport.post(ctx, models.MenuProxyPayload{
		Text:    text,
		LangOut: langOut,
		LangIn:  langIn,
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			s.logger.Info("Submission abandoned", zap.Error(ctxErr))
			return models.MenuTemplate{}, fmt.Errorf("menu submission abandoned: %w", ctxErr)
		}
		s.logger.Warn("Proxy call failed", zap.Error(err))
		return models.MenuTemplate{}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	if !isSuccessStatus(status) {
		s.logger.Warn("Unexpected status code",
			zap.Int("status", status),
			zap.String("body", bodySnippet(body)))
		return models.MenuTemplate{}, &InvalidStatusCodeError{Code: status}
	}

	envelope, err := DecodeEnvelope(body)
	if err != nil {
		s.logger.Warn("Failed to decode proxy envelope", zap.String("body", bodySnippet(body)))
		return models.MenuTemplate{}, err
	}

	menuText, ok := envelope.MenuText()
	if !ok {
		s.logger.Warn("No menu payload found in proxy response")
		return models.MenuTemplate{}, ErrMissingMenuPayload
	}

	template, err := buildTemplate(req.UploadID, menuText)
	switch {
	case errors.Is(err, ErrEmptyMenu):
		s.logger.Warn("Menu payload contained no dishes")
		return models.MenuTemplate{}, err
	case err != nil:
		s.logger.Warn("Failed to decode menu JSON", zap.Error(err))
		return models.MenuTemplate{}, err
	}

	s.logger.Info("Menu processed",
		zap.String("upload_id", req.UploadID.String()),
		zap.Int("sections", len(template.Sections)),
		zap.Int("dishes", template.DishCount()),
		zap.Duration("elapsed", time.Since(start)))
	return template, nil
}

// PollStatus is not offered by the proxy; submissions are synchronous.
func (s *ProxyMenuProcessingService) PollStatus(ctx context.Context, templateID uuid.UUID) (models.ProcessingState, error) {
	return models.ProcessingState{}, ErrPollingUnsupported
}

// MockMenuProcessingService answers every submission with the sample menu.
type MockMenuProcessingService struct {
	Delay time.Duration
}

func NewMockMenuProcessingService() *MockMenuProcessingService {
	return &MockMenuProcessingService{Delay: 600 * time.Millisecond}
}

func (s *MockMenuProcessingService) Submit(ctx context.Context, req models.ProcessingRequest) (models.MenuTemplate, error) {
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return models.MenuTemplate{}, ctx.Err()
		case <-timer.C:
		}
	}
	return models.SampleTemplate().WithID(req.UploadID), nil
}

func (s *MockMenuProcessingService) PollStatus(ctx context.Context, templateID uuid.UUID) (models.ProcessingState, error) {
	return models.ReadyState(models.SampleTemplate().WithID(templateID)), nil
}
