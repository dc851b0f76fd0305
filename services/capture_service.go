package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"Mainu/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUnsupportedImage = errors.New("only JPEG and PNG menu photos are supported")
	ErrWritingFailed    = errors.New("failed to write capture file")
	ErrNoCapturedPages  = errors.New("add at least one menu page to get started")
)

// TextRecognizer extracts text from one page image.
type TextRecognizer interface {
	RecognizeText(ctx context.Context, imagePath string) (string, error)
}

// CommandTextRecognizer shells out to an OCR binary that prints the text of
// an image to stdout, e.g. "tesseract <file> stdout".
type CommandTextRecognizer struct {
	Command string
}

func (r CommandTextRecognizer) RecognizeText(ctx context.Context, imagePath string) (string, error) {
	out, err := exec.CommandContext(ctx, r.Command, imagePath, "stdout").Output()
	if err != nil {
		return "", fmt.Errorf("%s failed: %w", r.Command, err)
	}
	return string(out), nil
}

// CaptureStorage keeps page images in a single scratch directory. The
// directory may be shared; only files written by Persist are ever removed.
type CaptureStorage struct {
	mu         sync.Mutex
	dir        string
	createdDir bool
}

func NewCaptureStorage(dir string) *CaptureStorage {
	return &CaptureStorage{dir: filepath.Clean(dir)}
}

func (s *CaptureStorage) Dir() string { return s.dir }

// Persist writes data under a fresh name and returns the path.
func (s *CaptureStorage) Persist(data []byte, ext string) (string, error) {
	if err := s.ensureDir(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingFailed, err)
	}
	destination := filepath.Join(s.dir, uuid.NewString()+ext)
	tmp, err := os.CreateTemp(s.dir, ".capture-*")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingFailed, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("%w: %w", ErrWritingFailed, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingFailed, err)
	}
	if err := os.Rename(tmp.Name(), destination); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingFailed, err)
	}
	return destination, nil
}

// Remove deletes path only if it lives inside the capture directory.
func (s *CaptureStorage) Remove(path string) {
	cleaned := filepath.Clean(path)
	if !strings.HasPrefix(cleaned, s.dir+string(os.PathSeparator)) {
		return
	}
	_ = os.Remove(cleaned)
}

func (s *CaptureStorage) ensureDir() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := os.Stat(s.dir); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	s.createdDir = true
	return nil
}

// Cleanup removes the capture directory if this storage created it and it is
// empty. A pre-existing directory is left alone.
func (s *CaptureStorage) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.createdDir {
		return
	}
	if err := os.Remove(s.dir); err == nil {
		s.createdDir = false
	}
}

// CaptureService tracks the pages photographed in each capture session.
type CaptureService struct {
	mu         sync.Mutex
	sessions   map[string][]models.CapturedPage
	storage    *CaptureStorage
	recognizer TextRecognizer
	logger     *zap.Logger
}

func NewCaptureService(storage *CaptureStorage, recognizer TextRecognizer, logger *zap.Logger) *CaptureService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CaptureService{
		sessions:   map[string][]models.CapturedPage{},
		storage:    storage,
		recognizer: recognizer,
		logger:     logger.With(zap.String("component", "capture")),
	}
}

// Append stores the photo and runs text recognition on it. A recognizer
// failure keeps the page without text rather than rejecting it.
func (s *CaptureService) Append(ctx context.Context, sessionID string, data []byte) (models.CapturedPage, error) {
	var ext string
	switch http.DetectContentType(data) {
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	default:
		return models.CapturedPage{}, ErrUnsupportedImage
	}

	path, err := s.storage.Persist(data, ext)
	if err != nil {
		return models.CapturedPage{}, err
	}

	page := models.CapturedPage{
		ID:        uuid.New(),
		FilePath:  path,
		CreatedAt: time.Now(),
	}
	if s.recognizer != nil {
		text, err := s.recognizer.RecognizeText(ctx, path)
		if err != nil {
			s.logger.Warn("Text recognition failed", zap.String("page", page.ID.String()), zap.Error(err))
		} else {
			page.RecognizedText = &text
			s.logger.Debug("Page recognized", zap.String("page", page.ID.String()), zap.Int("text_length", len(text)))
		}
	}

	s.mu.Lock()
	s.sessions[sessionID] = append(s.sessions[sessionID], page)
	s.mu.Unlock()
	return page, nil
}

func (s *CaptureService) Pages(sessionID string) []models.CapturedPage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CapturedPage{}, s.sessions[sessionID]...)
}

func (s *CaptureService) PageCount(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions[sessionID])
}

// Remove drops one page and its file. It reports whether the page existed.
func (s *CaptureService) Remove(sessionID string, pageID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	pages := s.sessions[sessionID]
	for i, page := range pages {
		if page.ID == pageID {
			s.storage.Remove(page.FilePath)
			s.sessions[sessionID] = append(pages[:i:i], pages[i+1:]...)
			return true
		}
	}
	return false
}

// Reset drops every page of the session and their files.
func (s *CaptureService) Reset(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, page := range s.sessions[sessionID] {
		s.storage.Remove(page.FilePath)
	}
	delete(s.sessions, sessionID)
}

// Close deletes the files of every tracked page and then the capture
// directory when it was created by this service.
func (s *CaptureService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for sessionID, pages := range s.sessions {
		for _, page := range pages {
			s.storage.Remove(page.FilePath)
		}
		delete(s.sessions, sessionID)
	}
	s.storage.Cleanup()
}

// ConcatenatedText joins the trimmed, non-empty page texts with blank lines.
func (s *CaptureService) ConcatenatedText(sessionID string) string {
	return ConcatenateRecognizedText(s.Pages(sessionID))
}

func ConcatenateRecognizedText(pages []models.CapturedPage) string {
	var parts []string
	for _, page := range pages {
		if page.RecognizedText == nil {
			continue
		}
		if text := strings.TrimSpace(*page.RecognizedText); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n")
}
