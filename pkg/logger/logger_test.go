package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Init is once-per-process, so the failed attempt must come first: Get has to
// hand out a usable fallback even though the retry inside it is a no-op.
func TestGetAfterFailedInit(t *testing.T) {
	require.Error(t, Init(Config{Level: "bogus", Encoding: "console"}))

	log := Get()
	require.NotNil(t, log, "Get must never return a nil logger")
	log.Info("fallback logger is usable")

	// package-level helpers ride on the same fallback
	Info("still usable")
	Error("still usable")
	_ = Sync() // syncing stderr may legitimately fail, only the call matters
}

func TestNewLoggerInvalidLevel(t *testing.T) {
	_, err := newLogger(Config{Level: "nope", Encoding: "console"})
	assert.Error(t, err)
}

func TestNewLoggerDefaults(t *testing.T) {
	log, err := newLogger(Config{Level: "debug", Encoding: "json"})
	require.NoError(t, err)
	assert.NotNil(t, log)
}
