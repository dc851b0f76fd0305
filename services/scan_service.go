package services

import (
	"context"
	"strings"

	"Mainu/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ScanResult is what one submission produced.
type ScanResult struct {
	Template       models.MenuTemplate  `json:"template"`
	RecognizedText string               `json:"recognized_text"`
	Debug          *models.DebugPayload `json:"debug,omitempty"`
}

// ScanService runs a submission: the primary backend and the optional debug
// side channel in parallel, joined before the result is stored.
type ScanService struct {
	Processing MenuProcessingService
	Debug      *MenuDebugClient
	Sessions   *SessionService
	Analytics  AnalyticsTracker
	Languages  Languages
	logger     *zap.Logger
}

func NewScanService(processing MenuProcessingService, debug *MenuDebugClient, sessions *SessionService, analytics AnalyticsTracker, languages Languages, logger *zap.Logger) *ScanService {
	if analytics == nil {
		analytics = NoopAnalyticsTracker{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScanService{
		Processing: processing,
		Debug:      debug,
		Sessions:   sessions,
		Analytics:  analytics,
		Languages:  languages,
		logger:     logger.With(zap.String("component", "scan")),
	}
}

// Process submits req. A primary failure is returned as-is and cancels the
// debug call; the debug call can never fail or delay the primary result past the join.
func (s *ScanService) Process(ctx context.Context, req models.ProcessingRequest) (ScanResult, error) {
	if req.UploadID == uuid.Nil {
		req.UploadID = uuid.New()
	}
	req.LanguageIn, req.LanguageOut = s.Languages.resolve(req.LanguageIn, req.LanguageOut)

	g, gctx := errgroup.WithContext(ctx)

	var debug *models.DebugPayload
	if s.Debug != nil {
		g.Go(func() error {
			debug = s.Debug.SendMenuText(gctx, req.RecognizedText, req.LanguageIn, req.LanguageOut)
			return nil
		})
	}

	var template models.MenuTemplate
	g.Go(func() error {
		var err error
		template, err = s.Processing.Submit(gctx, req)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn("Menu processing failed",
			zap.String("upload_id", req.UploadID.String()),
			zap.String("code", ErrorCode(err)),
			zap.Error(err))
		return ScanResult{}, err
	}

	result := ScanResult{
		Template:       template,
		RecognizedText: strings.TrimSpace(req.RecognizedText),
		Debug:          debug,
	}
	if s.Sessions != nil {
		s.Sessions.Save(template, result.RecognizedText, debug)
	}
	s.Analytics.Track(models.MenuScanned(template.ID))
	return result, nil
}

// PollStatus delegates to the processing backend.
func (s *ScanService) PollStatus(ctx context.Context, templateID uuid.UUID) (models.ProcessingState, error) {
	return s.Processing.PollStatus(ctx, templateID)
}
