package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asrivast28/ramble-go/internal/logger"
)

func TestDefault_LevelGating(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Info, &buf)
	l.Debug("should not appear")
	l.Info("hello %d", 1)
	out := buf.String()
	assert.NotContains(t, out, "should not appear")
	assert.Contains(t, out, "hello 1")
}

func TestDefault_Off_SuppressesEverything(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Off, &buf)
	l.Error("boom")
	assert.Zero(t, buf.Len())
}

func TestDefault_WithFields_AppearsInOutput(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Trace, &buf).WithField("target", "X")
	l.Info("checking")
	assert.Contains(t, buf.String(), "target=X")
}

func TestParseLevel_UnknownDefaultsToInfo(t *testing.T) {
	assert.Equal(t, logger.Info, logger.ParseLevel("bogus"))
	assert.Equal(t, logger.Trace, logger.ParseLevel("trace"))
}

func TestNull_DiscardsSilently(t *testing.T) {
	var l logger.Logger = logger.Null{}
	l.Error("x")
	l.WithField("a", 1).Info("y")
}
