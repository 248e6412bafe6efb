package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var m map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &m))
	return m
}

func TestZerologLogger_PairsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(&buf, "info", false)

	log.Info(context.Background(), "hello", "email", "a@b.com")

	m := lastLine(t, &buf)
	assert.Equal(t, "hello", m["message"])
	assert.Equal(t, "info", m["level"])
	assert.Equal(t, "a@b.com", m["email"])
}

func TestZerologLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(&buf, "error", false)

	log.Info(context.Background(), "dropped")
	assert.Zero(t, buf.Len())

	log.Error(context.Background(), "kept")
	assert.NotZero(t, buf.Len())
}

func TestZerologLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(&buf, "info", false)

	child := log.With("component", "gateway")
	child.Warn(context.Background(), "slow response")

	m := lastLine(t, &buf)
	assert.Equal(t, "gateway", m["component"])
	assert.Equal(t, "warn", m["level"])
}

func TestParseLevel_Defaults(t *testing.T) {
	assert.Equal(t, "info", parseLevel("").String())
	assert.Equal(t, "info", parseLevel("loud").String())
	assert.Equal(t, "warn", parseLevel("WARNING").String())
}
