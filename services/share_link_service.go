package services

import (
	"context"
	"net/url"
	"strings"
	"time"

	"Mainu/models"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

type ShareLinkGenerator interface {
	GenerateShareLink(ctx context.Context, menuID uuid.UUID) (models.MenuShareLink, error)
}

// MockShareLinkGenerator builds links locally; nothing is published.
type MockShareLinkGenerator struct {
	BaseURL string
	TTL     time.Duration
	Now     func() time.Time
}

func NewMockShareLinkGenerator(baseURL string, ttl time.Duration) *MockShareLinkGenerator {
	return &MockShareLinkGenerator{BaseURL: baseURL, TTL: ttl, Now: time.Now}
}

func (g *MockShareLinkGenerator) GenerateShareLink(ctx context.Context, menuID uuid.UUID) (models.MenuShareLink, error) {
	if err := ctx.Err(); err != nil {
		return models.MenuShareLink{}, err
	}
	link, err := url.JoinPath(strings.TrimSuffix(g.BaseURL, "/"), strings.ToUpper(menuID.String()))
	if err != nil {
		return models.MenuShareLink{}, err
	}
	return models.MenuShareLink{
		URL:       link,
		ExpiresAt: g.Now().Add(g.TTL),
	}, nil
}

// ExpiresDescription renders the expiry relative to now, e.g. "23 hours from now".
func ExpiresDescription(link models.MenuShareLink, now time.Time) string {
	return humanize.RelTime(link.ExpiresAt, now, "ago", "from now")
}
