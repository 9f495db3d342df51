package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWriter_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, slog.LevelInfo, true)

	logger.Debug("hidden")
	logger.Info("book added", "isbn", "978")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "book added")
	assert.Contains(t, out, "isbn=978")
	assert.NotContains(t, out, "\x1b[", "no ANSI escapes when color is off")
}
