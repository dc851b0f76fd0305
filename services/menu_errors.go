package services

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyRecognizedText = errors.New("recognized text is empty")
	ErrInvalidResponse     = errors.New("invalid response from menu backend")
	ErrMissingMenuPayload  = errors.New("menu payload missing from response")
	ErrMalformedMenuJSON   = errors.New("menu payload is not valid menu JSON")
	ErrEmptyMenu           = errors.New("menu payload contained no dishes")
	ErrPollingUnsupported  = errors.New("status polling is not supported by this backend")
)

// InvalidStatusCodeError reports a non-2xx answer from the menu backend.
type InvalidStatusCodeError struct {
	Code int
}

func (e *InvalidStatusCodeError) Error() string {
	return fmt.Sprintf("menu backend returned status %d", e.Code)
}

// ErrorCode names a processing failure for API clients.
func ErrorCode(err error) string {
	var statusErr *InvalidStatusCodeError
	switch {
	case errors.Is(err, ErrEmptyRecognizedText):
		return "empty_recognized_text"
	case errors.As(err, &statusErr):
		return "invalid_status_code"
	case errors.Is(err, ErrInvalidResponse):
		return "invalid_response"
	case errors.Is(err, ErrMissingMenuPayload):
		return "missing_menu_payload"
	case errors.Is(err, ErrMalformedMenuJSON):
		return "malformed_menu_json"
	case errors.Is(err, ErrEmptyMenu):
		return "empty_menu"
	case errors.Is(err, ErrPollingUnsupported):
		return "polling_unsupported"
	default:
		return "internal"
	}
}
