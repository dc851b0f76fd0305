package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"Mainu/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngHeader  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	jpegHeader = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00")
)

type fakeRecognizer struct {
	texts []string
	err   error
	calls int
}

func (f *fakeRecognizer) RecognizeText(ctx context.Context, imagePath string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	text := f.texts[f.calls%len(f.texts)]
	f.calls++
	return text, nil
}

func newTestCaptureService(t *testing.T, recognizer TextRecognizer) (*CaptureService, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "captures")
	return NewCaptureService(NewCaptureStorage(dir), recognizer, nil), dir
}

func TestCaptureService_AppendAndConcatenate(t *testing.T) {
	recognizer := &fakeRecognizer{texts: []string{"  ANTIPASTI\nBruschetta 7  ", "DOLCI\nTiramisu 6"}}
	svc, dir := newTestCaptureService(t, recognizer)

	first, err := svc.Append(context.Background(), "table-4", pngHeader)
	require.NoError(t, err)
	second, err := svc.Append(context.Background(), "table-4", jpegHeader)
	require.NoError(t, err)

	assert.Equal(t, ".png", filepath.Ext(first.FilePath))
	assert.Equal(t, ".jpg", filepath.Ext(second.FilePath))
	assert.Equal(t, dir, filepath.Dir(first.FilePath))
	assert.FileExists(t, first.FilePath)

	assert.Equal(t, 2, svc.PageCount("table-4"))
	assert.Equal(t, 0, svc.PageCount("table-5"))
	assert.Equal(t, "ANTIPASTI\nBruschetta 7\n\nDOLCI\nTiramisu 6", svc.ConcatenatedText("table-4"))
}

func TestCaptureService_RejectsUnsupportedImage(t *testing.T) {
	svc, _ := newTestCaptureService(t, nil)
	_, err := svc.Append(context.Background(), "s", []byte("GIF89a....."))
	assert.ErrorIs(t, err, ErrUnsupportedImage)
	assert.Equal(t, 0, svc.PageCount("s"))
}

func TestCaptureService_RecognizerFailureKeepsPage(t *testing.T) {
	svc, _ := newTestCaptureService(t, &fakeRecognizer{err: errors.New("tesseract missing")})
	page, err := svc.Append(context.Background(), "s", pngHeader)
	require.NoError(t, err)
	assert.Nil(t, page.RecognizedText)
	assert.Equal(t, 1, svc.PageCount("s"))
	assert.Equal(t, "", svc.ConcatenatedText("s"))
}

func TestCaptureService_RemoveAndReset(t *testing.T) {
	svc, _ := newTestCaptureService(t, &fakeRecognizer{texts: []string{"page"}})
	first, err := svc.Append(context.Background(), "s", pngHeader)
	require.NoError(t, err)
	second, err := svc.Append(context.Background(), "s", pngHeader)
	require.NoError(t, err)

	assert.True(t, svc.Remove("s", first.ID))
	assert.False(t, svc.Remove("s", first.ID))
	assert.NoFileExists(t, first.FilePath)
	require.Len(t, svc.Pages("s"), 1)
	assert.Equal(t, second.ID, svc.Pages("s")[0].ID)

	svc.Reset("s")
	assert.Equal(t, 0, svc.PageCount("s"))
	assert.NoFileExists(t, second.FilePath)
}

func TestCaptureStorage_RemoveStaysInsideDir(t *testing.T) {
	outside := filepath.Join(t.TempDir(), "keep.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))

	storage := NewCaptureStorage(filepath.Join(t.TempDir(), "captures"))
	storage.Remove(outside)
	assert.FileExists(t, outside)
}

func TestConcatenateRecognizedText_SkipsBlankPages(t *testing.T) {
	text := func(s string) *string { return &s }
	pages := []models.CapturedPage{
		{RecognizedText: text("one")},
		{RecognizedText: nil},
		{RecognizedText: text("   ")},
		{RecognizedText: text(" two ")},
	}
	assert.Equal(t, "one\n\ntwo", ConcatenateRecognizedText(pages))
}

func TestCaptureService_CloseKeepsUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	unrelated := filepath.Join(dir, "unrelated.txt")
	require.NoError(t, os.WriteFile(unrelated, []byte("keep me"), 0o644))

	svc := NewCaptureService(NewCaptureStorage(dir), &fakeRecognizer{texts: []string{"page"}}, nil)
	page, err := svc.Append(context.Background(), "s", pngHeader)
	require.NoError(t, err)

	svc.Close()
	assert.NoFileExists(t, page.FilePath)
	assert.FileExists(t, unrelated)
	assert.DirExists(t, dir)
	assert.Equal(t, 0, svc.PageCount("s"))
}

func TestCaptureService_CloseRemovesDirectoryItCreated(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "captures")
	svc := NewCaptureService(NewCaptureStorage(dir), nil, nil)
	_, err := svc.Append(context.Background(), "s", jpegHeader)
	require.NoError(t, err)
	assert.DirExists(t, dir)

	svc.Close()
	assert.NoDirExists(t, dir)
}
