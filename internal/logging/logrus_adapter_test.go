package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newCaptureAdapter(level string) (Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(buf)
	lvl, _ := logrus.ParseLevel(level)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return NewLogrusAdapterFromLogger(logger), buf
}

func TestNewLogrusAdapterInvalidLevelFallsBack(t *testing.T) {
	// Must not panic, must still produce a usable logger.
	logger := NewLogrusAdapter("nope", "text")
	assert.NotNil(t, logger)
}

func TestInfoIncludesFields(t *testing.T) {
	logger, buf := newCaptureAdapter("info")

	logger.Info("parsed file",
		Field{Key: FieldFile, Value: "transactions.csv"},
		Field{Key: FieldCount, Value: 4},
	)

	out := buf.String()
	assert.Contains(t, out, "parsed file")
	assert.Contains(t, out, "file_path=transactions.csv")
	assert.Contains(t, out, "count=4")
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	logger, buf := newCaptureAdapter("info")

	logger.Debug("should not appear")

	assert.Empty(t, strings.TrimSpace(buf.String()))
}

func TestWithErrorAttachesError(t *testing.T) {
	logger, buf := newCaptureAdapter("info")

	logger.WithError(errors.New("boom")).Error("parse failed")

	out := buf.String()
	assert.Contains(t, out, "parse failed")
	assert.Contains(t, out, "boom")
}

func TestWithFieldReturnsIndependentLogger(t *testing.T) {
	logger, buf := newCaptureAdapter("info")

	withFile := logger.WithField(FieldFile, "a.csv")
	logger.Info("plain")
	withFile.Info("with file")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.NotContains(t, lines[0], "a.csv")
	assert.Contains(t, lines[1], "a.csv")
}
