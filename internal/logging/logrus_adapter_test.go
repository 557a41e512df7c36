package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCapturedAdapter(level string) (Logger, *bytes.Buffer) {
	logger := logrus.New()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)

	return NewLogrusAdapterFromLogger(logger), &buf
}

func TestLogrusAdapterFields(t *testing.T) {
	log, buf := newCapturedAdapter("info")

	log.Info("converted statement",
		Field{Key: FieldRows, Value: 12},
		Field{Key: FieldFile, Value: "statement.pdf"})

	output := buf.String()
	assert.Contains(t, output, "converted statement")
	assert.Contains(t, output, `"rows":12`)
	assert.Contains(t, output, "statement.pdf")
}

func TestLogrusAdapterWithError(t *testing.T) {
	log, buf := newCapturedAdapter("info")

	log.WithError(errors.New("broken pipe")).Warn("cleanup failed")
	assert.Contains(t, buf.String(), "broken pipe")
}

func TestLogrusAdapterLevelFiltering(t *testing.T) {
	log, buf := newCapturedAdapter("warn")

	log.Debug("hidden")
	log.Info("also hidden")
	log.Warn("visible")

	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "visible")
}

func TestNewLogrusAdapterInvalidLevel(t *testing.T) {
	// Falls back to info rather than failing.
	log := NewLogrusAdapter("nonsense", "text")
	require.NotNil(t, log)
}

func TestMockLoggerCapturesEntries(t *testing.T) {
	mock := &MockLogger{}

	mock.Info("staged upload", Field{Key: FieldRequestID, Value: "abc"})
	mock.Error("conversion failed")

	assert.True(t, mock.HasEntry("INFO", "staged upload"))
	assert.True(t, mock.HasEntry("ERROR", "conversion failed"))
	assert.False(t, mock.HasEntry("WARN", "staged upload"))
	require.Len(t, mock.Entries, 2)
	assert.Equal(t, "abc", mock.Entries[0].Fields[0].Value)
}
