package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"Mainu/models"
)

const (
	// DefaultProxyTimeout bounds one proxy round trip, body included.
	DefaultProxyTimeout = 120 * time.Second

	maxProxyResponseBytes = 8 << 20
)

// proxyTransport performs the single POST both proxy clients share.
type proxyTransport struct {
	endpoint string
	token    string
	client   *http.Client
}

func newProxyTransport(endpoint, token string, client *http.Client) proxyTransport {
	if client == nil {
		client = &http.Client{Timeout: DefaultProxyTimeout}
	}
	return proxyTransport{endpoint: endpoint, token: token, client: client}
}

// post returns the status code and body. Errors cover encoding, request
// construction and transport only; status handling is left to the caller.
func (t proxyTransport) post(ctx context.Context, payload models.MenuProxyPayload) (int, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+t.token)

	resp, err := t.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("proxy request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxProxyResponseBytes))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response: %w", err)
	}
	return resp.StatusCode, raw, nil
}

func isSuccessStatus(code int) bool {
	return code >= 200 && code <= 299
}

// bodySnippet renders at most DefaultSnippetLength runes of a body for logs.
func bodySnippet(body []byte) string {
	if len(body) == 0 {
		return "<no body>"
	}
	return truncateRunes(string(body), DefaultSnippetLength)
}
