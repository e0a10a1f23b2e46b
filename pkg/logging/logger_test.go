package logging

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}

	for input, want := range cases {
		assert.Equal(t, want, ParseLevel(input), "input %q", input)
	}
}

func TestNewLoggerWithFormat_DispatchesByFormat(t *testing.T) {
	for _, format := range []string{"json", "text", "", "bogus"} {
		logger := NewLoggerWithFormat(slog.LevelInfo, format)
		assert.NotNil(t, logger, "format %q", format)
	}
}
