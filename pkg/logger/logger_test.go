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
	log := New("debug")
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)

	// Некорректный уровень заменяется на info
	assert.Equal(t, logrus.InfoLevel, New("verbose").GetLevel())
}

func TestNewWithOutput_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("info", &buf)

	log.WithField("stage", "persisting").Info("Location analysis completed")
	log.Debug("hidden")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "Location analysis completed", line["message"])
	assert.Equal(t, "persisting", line["stage"])
	assert.Equal(t, "info", line["level"])
	assert.Contains(t, line, "ts")
	assert.NotContains(t, line, "msg")
}
