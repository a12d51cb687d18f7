package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	defer func() {
		Logger().SetOutput(os.Stdout)
		Init("info", "development")
	}()

	t.Run("production uses JSON", func(t *testing.T) {
		var buf bytes.Buffer
		Logger().SetOutput(&buf)
		Init("debug", "production")

		LogWithContext("counter", "increment").Debug("hello")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "counter", line["component"])
		assert.Equal(t, "increment", line["operation"])
		assert.Equal(t, "hello", line["msg"])
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		Logger().SetOutput(&buf)
		Init("chatty", "development")

		assert.Equal(t, logrus.InfoLevel, Logger().GetLevel())
	})
}
