package slogadapters_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/datamapper/dm-is-versioned/testutil/helper"
	"github.com/datamapper/dm-is-versioned/versioned/slogadapters"
)

func Test_HandlerLogger_ForwardsAllLevels(t *testing.T) {
	spy := helper.NewLogHandlerSpy(false)
	logger := slogadapters.NewHandlerLogger(spy)

	logger.Debug("debug message", "key", "value")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message", "error", "boom")

	assert.Equal(t, 4, spy.RecordCount())
	assert.Equal(t, []string{"debug message", "info message", "warn message", "error message"}, spy.Messages())
}

func Test_TintLogger_IsUsableAtAnyLevel(t *testing.T) {
	logger := slogadapters.NewTintLogger(slog.LevelWarn)

	assert.NotPanics(t, func() {
		logger.Debug("suppressed")
		logger.Warn("visible")
	})
}
