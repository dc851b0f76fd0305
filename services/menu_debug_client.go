package services

import (
	"context"
	"net/http"
	"strings"
	"unicode/utf8"

	"Mainu/models"

	"go.uber.org/zap"
)

// MenuDebugClient sends the same text to the proxy purely to show what came
// back. It never returns an error: every failure yields nil.
type MenuDebugClient struct {
	transport proxyTransport
	logger    *zap.Logger
}

func NewMenuDebugClient(endpoint, token string, client *http.Client, logger *zap.Logger) *MenuDebugClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MenuDebugClient{
		transport: newProxyTransport(endpoint, token, client),
		logger:    logger.With(zap.String("component", "menu_debug")),
	}
}

func (c *MenuDebugClient) SendMenuText(ctx context.Context, text, langIn, langOut string) *models.DebugPayload {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	c.logger.Debug("Calling proxy", zap.String("lang_in", langIn), zap.String("lang_out", langOut))
	status, body, err := c.transport.post(ctx, models.MenuProxyPayload{
		Text:    text,
		LangOut: langOut,
		LangIn:  langIn,
	})
	if err != nil {
		c.logger.Debug("Call failed", zap.Error(err))
		return nil
	}
	if !isSuccessStatus(status) {
		c.logger.Debug("Unexpected status code", zap.Int("status", status), zap.String("body", bodySnippet(body)))
		return nil
	}

	envelope, err := DecodeEnvelope(body)
	if err != nil {
		c.logger.Debug("Failed to decode envelope", zap.Error(err))
		return nil
	}

	if snippet, ok := envelope.Snippet(DefaultSnippetLength); ok {
		c.logger.Debug("Response snippet", zap.String("text", snippet))
		return &models.DebugPayload{LangIn: langIn, LangOut: langOut, Text: snippet}
	}

	// No text where expected; show the raw body instead, if it is readable.
	var fallback string
	if utf8.Valid(body) {
		fallback = strings.TrimSpace(truncateRunes(string(body), DefaultSnippetLength))
	}
	c.logger.Debug("Response missing expected content", zap.String("fallback", fallback))
	if fallback == "" {
		return nil
	}
	return &models.DebugPayload{LangIn: langIn, LangOut: langOut, Text: fallback}
}
