package services

import (
	"testing"

	"Mainu/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingAnalyticsTracker(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	tracker := NewLoggingAnalyticsTracker(zap.New(core))

	menuID := uuid.New()
	tracker.Track(models.MenuScanned(menuID))
	tracker.Track(models.OrderFinalized(3))

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	scanned := entries[0].ContextMap()
	assert.Equal(t, "menu_scanned", scanned["event"])
	assert.Equal(t, menuID.String(), scanned["menu_id"])
	assert.Equal(t, "analytics", scanned["component"])

	finalized := entries[1].ContextMap()
	assert.Equal(t, "order_finalized", finalized["event"])
	assert.Equal(t, int64(3), finalized["items"])
}
