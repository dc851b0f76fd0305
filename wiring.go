package main

import (
	"fmt"
	"net/http"
	"time"

	"Mainu/config/environment"
	"Mainu/services"

	"go.uber.org/zap"
)

// newProcessingService picks the backend named in the config.
func newProcessingService(cfg *environment.Config, logger *zap.Logger) (services.MenuProcessingService, error) {
	languages := services.Languages{In: cfg.Languages.DefaultIn, Out: cfg.Languages.DefaultOut}

	switch cfg.Backend {
	case environment.BackendProxy:
		warnIfTokenExpired(cfg.Proxy.Token, logger)
		client := &http.Client{Timeout: cfg.Proxy.Timeout}
		return services.NewProxyMenuProcessingService(cfg.Proxy.Endpoint, cfg.Proxy.Token, client, languages, logger), nil
	case environment.BackendOpenAI:
		return services.NewOpenAIMenuService(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model, languages, logger), nil
	case environment.BackendMock:
		return services.NewMockMenuProcessingService(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// newDebugClient returns nil unless the proxy is the primary backend and its
// debug channel is on. Other backends never send menu text to the proxy.
func newDebugClient(cfg *environment.Config, logger *zap.Logger) *services.MenuDebugClient {
	if cfg.Backend != environment.BackendProxy || !cfg.Proxy.DebugEnabled || cfg.Proxy.Token == "" {
		return nil
	}
	client := &http.Client{Timeout: cfg.Proxy.Timeout}
	return services.NewMenuDebugClient(cfg.Proxy.Endpoint, cfg.Proxy.Token, client, logger)
}

func newScanService(cfg *environment.Config, sessions *services.SessionService, analytics services.AnalyticsTracker, logger *zap.Logger) (*services.ScanService, error) {
	processing, err := newProcessingService(cfg, logger)
	if err != nil {
		return nil, err
	}
	languages := services.Languages{In: cfg.Languages.DefaultIn, Out: cfg.Languages.DefaultOut}
	return services.NewScanService(processing, newDebugClient(cfg, logger), sessions, analytics, languages, logger), nil
}

func warnIfTokenExpired(token string, logger *zap.Logger) {
	info, err := environment.InspectToken(token)
	if err != nil {
		logger.Debug("Proxy token is opaque", zap.Error(err))
		return
	}
	if info.Expired(time.Now()) {
		logger.Warn("Proxy token has expired; requests will likely be rejected",
			zap.Time("expired_at", *info.ExpiresAt),
			zap.String("subject", info.Subject))
	}
}
