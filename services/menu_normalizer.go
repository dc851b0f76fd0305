package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"Mainu/models"
)

// NormalizeMenuJSON decodes the embedded menu document. Decoding is strict per
// batch: one bad item fails the whole payload with ErrMalformedMenuJSON.
// An empty item list is returned as-is; callers decide whether that is ErrEmptyMenu.
func NormalizeMenuJSON(text string) ([]models.MenuItemPayload, error) {
	var payload models.MenuItemsPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMenuJSON, err)
	}
	return payload.Items, nil
}

var codeFence = regexp.MustCompile("(?s)```(?:json)?(.*?)```")

// cleanJSONResponse strips markdown code fences models like to wrap JSON in.
func cleanJSONResponse(response string) string {
	cleaned := codeFence.ReplaceAllString(response, "$1")
	return strings.TrimSpace(cleaned)
}
