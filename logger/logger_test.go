package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithErrorWritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	previous := logger
	defer Set(previous)
	Set(zerolog.New(&buf))

	WithError(errors.New("boom")).Str("article_id", "42").Msg("update failed")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "42", entry["article_id"])
	assert.Equal(t, "update failed", entry["message"])
}
