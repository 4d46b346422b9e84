package translatekit_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/mod/semver"

	"github.com/translatekit/translatekit"
	"github.com/translatekit/translatekit/pkg/logger"
)

func TestVersion(t *testing.T) {
	assert.True(t, semver.IsValid("v"+translatekit.Version), "Version must be valid semver")
}

func TestConfigureLogging(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	translatekit.ConfigureLogging(logger.WithOutput(&buf))

	slog.Info("framework ready")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "framework ready", record["msg"])
}
