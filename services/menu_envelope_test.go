package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEnvelope_PrefersPayloadSlot(t *testing.T) {
	body := []byte(`{"output":[{"content":[{"text":"ack"}]},{"content":[{"text":"  {\"items\":[]}  "}]}]}`)

	envelope, err := DecodeEnvelope(body)
	require.NoError(t, err)

	text, ok := envelope.MenuText()
	require.True(t, ok)
	assert.Equal(t, `{"items":[]}`, text)
}

func TestDecodeEnvelope_FallsBackToFirstText(t *testing.T) {
	body := []byte(`{"output":[{"content":[{"text":"only slot"}]},{"content":[{"text":"   "}]}]}`)

	envelope, err := DecodeEnvelope(body)
	require.NoError(t, err)

	text, ok := envelope.MenuText()
	require.True(t, ok)
	assert.Equal(t, "only slot", text)
}

func TestDecodeEnvelope_SkipsBlankBlocksWithinSlot(t *testing.T) {
	body := []byte(`{"output":[{"content":[]},{"content":[{"text":""},{"text":"second block"}]}]}`)

	envelope, err := DecodeEnvelope(body)
	require.NoError(t, err)

	text, ok := envelope.TextAt(1)
	require.True(t, ok)
	assert.Equal(t, "second block", text)

	_, ok = envelope.TextAt(0)
	assert.False(t, ok)
	_, ok = envelope.TextAt(5)
	assert.False(t, ok)
}

func TestDecodeEnvelope_ToleratesAbsentFields(t *testing.T) {
	cases := map[string]string{
		"no output":       `{}`,
		"null output":     `{"output":null}`,
		"content missing": `{"output":[{},{"role":"assistant"}]}`,
		"null content":    `{"output":[{"content":null}]}`,
		"text missing":    `{"output":[{"content":[{"type":"output_text"}]}]}`,
		"null text":       `{"output":[{"content":[{"text":null}]}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			envelope, err := DecodeEnvelope([]byte(body))
			require.NoError(t, err)
			_, ok := envelope.MenuText()
			assert.False(t, ok)
		})
	}
}

func TestDecodeEnvelope_RejectsWrongTypes(t *testing.T) {
	cases := map[string]string{
		"null body":         `null`,
		"array body":        `[1,2]`,
		"string body":       `"hello"`,
		"output not array":  `{"output":"nope"}`,
		"output entry":      `{"output":[42]}`,
		"content not array": `{"output":[{"content":{"text":"x"}}]}`,
		"block not object":  `{"output":[{"content":["x"]}]}`,
		"text not string":   `{"output":[{"content":[{"text":42}]}]}`,
		"text object":       `{"output":[{"content":[{"text":"ok"}]},{"content":[{"text":{"a":1}}]}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeEnvelope([]byte(body))
			assert.ErrorIs(t, err, ErrInvalidResponse)
		})
	}
}

func TestDecodeEnvelope_InvalidJSON(t *testing.T) {
	_, err := DecodeEnvelope([]byte(`not json`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestEnvelopeSnippet_TruncatesRunes(t *testing.T) {
	long := strings.Repeat("é", 250)
	body := []byte(`{"output":[{"content":[{"text":"ack"}]},{"content":[{"text":"` + long + `"}]}]}`)

	envelope, err := DecodeEnvelope(body)
	require.NoError(t, err)

	snippet, ok := envelope.Snippet(DefaultSnippetLength)
	require.True(t, ok)
	assert.Equal(t, DefaultSnippetLength, len([]rune(snippet)))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "", truncateRunes("abc", 0))
	assert.Equal(t, "ab", truncateRunes("abc", 2))
	assert.Equal(t, "abc", truncateRunes("abc", 3))
	assert.Equal(t, "日本", truncateRunes("日本語", 2))
}
