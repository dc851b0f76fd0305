package services

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// DefaultSnippetLength caps diagnostic snippets, in runes.
const DefaultSnippetLength = 200

// menuPayloadSlot is where the proxy puts the structured answer; slot 0 is a short acknowledgement.
const menuPayloadSlot = 1

// MenuEnvelope is the proxy's chat-style response: output[].content[].text.
// Absent or null fields count as absent; present fields of the wrong type are rejected.
type MenuEnvelope struct {
	outputs [][]string
}

// DecodeEnvelope fails with ErrInvalidResponse when body is not a JSON object
// or when output, content or text is present with the wrong type.
func DecodeEnvelope(body []byte) (*MenuEnvelope, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: envelope is not valid JSON", ErrInvalidResponse)
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: envelope is not an object", ErrInvalidResponse)
	}

	envelope := &MenuEnvelope{}
	output := root.Get("output")
	if isAbsent(output) {
		return envelope, nil
	}
	if !output.IsArray() {
		return nil, fmt.Errorf("%w: output is not an array", ErrInvalidResponse)
	}

	for i, entry := range output.Array() {
		if !entry.IsObject() {
			return nil, fmt.Errorf("%w: output[%d] is not an object", ErrInvalidResponse, i)
		}
		var texts []string
		content := entry.Get("content")
		switch {
		case isAbsent(content):
		case !content.IsArray():
			return nil, fmt.Errorf("%w: output[%d].content is not an array", ErrInvalidResponse, i)
		default:
			for j, block := range content.Array() {
				if !block.IsObject() {
					return nil, fmt.Errorf("%w: output[%d].content[%d] is not an object", ErrInvalidResponse, i, j)
				}
				text := block.Get("text")
				switch {
				case isAbsent(text):
				case text.Type != gjson.String:
					return nil, fmt.Errorf("%w: output[%d].content[%d].text is not a string", ErrInvalidResponse, i, j)
				default:
					texts = append(texts, text.String())
				}
			}
		}
		envelope.outputs = append(envelope.outputs, texts)
	}
	return envelope, nil
}

func isAbsent(r gjson.Result) bool {
	return !r.Exists() || r.Type == gjson.Null
}

// TextAt returns the first non-blank text of output[index], trimmed.
func (e *MenuEnvelope) TextAt(index int) (string, bool) {
	if index < 0 || index >= len(e.outputs) {
		return "", false
	}
	return firstNonBlank(e.outputs[index])
}

// FirstAvailableText scans every output in order.
func (e *MenuEnvelope) FirstAvailableText() (string, bool) {
	for _, texts := range e.outputs {
		if text, ok := firstNonBlank(texts); ok {
			return text, true
		}
	}
	return "", false
}

// MenuText prefers the payload slot and falls back to the first text anywhere.
func (e *MenuEnvelope) MenuText() (string, bool) {
	if text, ok := e.TextAt(menuPayloadSlot); ok {
		return text, true
	}
	return e.FirstAvailableText()
}

// Snippet is MenuText truncated to maxLength runes.
func (e *MenuEnvelope) Snippet(maxLength int) (string, bool) {
	text, ok := e.MenuText()
	if !ok {
		return "", false
	}
	return truncateRunes(text, maxLength), true
}

func firstNonBlank(texts []string) (string, bool) {
	for _, text := range texts {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			return trimmed, true
		}
	}
	return "", false
}

func truncateRunes(s string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == maxLength {
			return s[:i]
		}
		count++
	}
	return s
}
