package models

import (
	"time"

	"github.com/google/uuid"
)

// CapturedPage is one photographed menu page held in transient storage.
type CapturedPage struct {
	ID             uuid.UUID `json:"id"`
	FilePath       string    `json:"file_path"`
	CreatedAt      time.Time `json:"created_at"`
	RecognizedText *string   `json:"recognized_text,omitempty"`
}
