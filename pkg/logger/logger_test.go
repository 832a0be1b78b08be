package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	log := New()
	assert.NotNil(t, log)
	assert.NotNil(t, log.entry)
}

func TestLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, logrus.Fields{"service": "course"})

	log.Info("User %s created course %d", "u-1", 42)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "User u-1 created course 42", line["message"])
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "course", line["service"])
	assert.Contains(t, line, "timestamp")
}

func TestLogger_WithField(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, logrus.Fields{}).WithField("course_id", "c-1")

	log.Error("Failed: %v", "boom")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "c-1", line["course_id"])
	assert.Equal(t, "error", line["level"])
}

func TestLogger_DebugSuppressedByDefault(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	var buf bytes.Buffer
	log := newLogger(&buf, logrus.Fields{})

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.Warn("Warning: %s count is %d", "items", 5)
	assert.Contains(t, buf.String(), "Warning: items count is 5")
}

func TestLevelFromEnv(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, levelFromEnv("debug"))
	assert.Equal(t, logrus.WarnLevel, levelFromEnv("warn"))
	assert.Equal(t, logrus.ErrorLevel, levelFromEnv("error"))
	assert.Equal(t, logrus.InfoLevel, levelFromEnv("verbose"))
}
