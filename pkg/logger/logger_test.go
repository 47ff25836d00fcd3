package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_LevelParsing(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected logrus.Level
	}{
		{name: "debug level", level: "debug", expected: logrus.DebugLevel},
		{name: "warn level", level: "WARN", expected: logrus.WarnLevel},
		{name: "invalid falls back to info", level: "shout", expected: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			InitLogger(tt.level, true)
			require.NotNil(t, GetLogger())
			assert.Equal(t, tt.expected, GetLogger().GetLevel())
		})
	}
}

func TestLogging_WithFields(t *testing.T) {
	InitLogger("debug", true)
	var buf bytes.Buffer
	GetLogger().SetOutput(&buf)

	Info("transfer complete", logrus.Fields{"bucket": "eodata", "key": "a/b"})

	out := buf.String()
	assert.Contains(t, out, "transfer complete")
	assert.Contains(t, out, "bucket=eodata")
}

func TestGetLogger_LazyInit(t *testing.T) {
	logger = nil
	require.NotNil(t, GetLogger())
	assert.Equal(t, logrus.InfoLevel, GetLogger().GetLevel())
}
