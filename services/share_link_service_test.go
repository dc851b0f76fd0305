package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockShareLinkGenerator(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	gen := NewMockShareLinkGenerator("https://mainu.app/share/", 3*time.Hour)
	gen.Now = func() time.Time { return now }

	id := uuid.MustParse("a49fba6c-5602-4df6-8ab2-99e62b26e2fe")
	link, err := gen.GenerateShareLink(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, "https://mainu.app/share/A49FBA6C-5602-4DF6-8AB2-99E62B26E2FE", link.URL)
	assert.Equal(t, now.Add(3*time.Hour), link.ExpiresAt)
	assert.Equal(t, "3 hours from now", ExpiresDescription(link, now))
}

func TestMockShareLinkGenerator_BaseWithoutSlash(t *testing.T) {
	gen := NewMockShareLinkGenerator("https://example.test/s", time.Hour)
	link, err := gen.GenerateShareLink(context.Background(), uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/s/00000000-0000-0000-0000-000000000000", link.URL)
}

func TestMockShareLinkGenerator_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMockShareLinkGenerator("https://mainu.app/share/", time.Hour).GenerateShareLink(ctx, uuid.New())
	assert.ErrorIs(t, err, context.Canceled)
}
