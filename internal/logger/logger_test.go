package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutput_EmitsRoleAndTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput("poller", &buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "poller", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	l.Error().Msg("should go nowhere")
}

func TestFromContext_FallsBackToGlobal(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput("test", &buf)
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("via ctx")

	assert.Contains(t, buf.String(), "via ctx")
}
