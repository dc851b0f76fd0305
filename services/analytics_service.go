package services

import (
	"Mainu/models"

	"go.uber.org/zap"
)

// AnalyticsTracker receives fire-and-forget product events.
type AnalyticsTracker interface {
	Track(event models.AnalyticsEvent)
}

type NoopAnalyticsTracker struct{}

func (NoopAnalyticsTracker) Track(models.AnalyticsEvent) {}

// LoggingAnalyticsTracker writes each event as a structured log line.
type LoggingAnalyticsTracker struct {
	logger *zap.Logger
}

func NewLoggingAnalyticsTracker(logger *zap.Logger) *LoggingAnalyticsTracker {
	return &LoggingAnalyticsTracker{logger: logger.With(zap.String("component", "analytics"))}
}

func (t *LoggingAnalyticsTracker) Track(event models.AnalyticsEvent) {
	fields := []zap.Field{zap.String("event", string(event.Kind))}
	switch event.Kind {
	case models.EventOrderFinalized:
		fields = append(fields, zap.Int("items", event.Items))
	default:
		fields = append(fields, zap.String("menu_id", event.MenuID.String()))
	}
	t.logger.Info("Analytics event", fields...)
}
