package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_ParsesAndDefaults(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("LOG_DIR", "./_testlogs")
	t.Setenv("RESOURCES_FILE", "res.yaml")
	t.Setenv("WEBHOOK_URL", "https://hooks.slack.com/services/T/B/x")
	t.Setenv("WEBHOOK_SERVICE", "slack")
	t.Setenv("ACCESS_TOKEN", "tok")
	t.Setenv("CHECK_INTERVAL_MS", "60000")
	t.Setenv("CHECK_TIMEOUT_MS", "1234")
	t.Setenv("MAX_CONCURRENT_CHECKS", "7")

	cfg := FromEnv()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "./_testlogs", cfg.LogDir)
	assert.Equal(t, "res.yaml", cfg.ResourcesFile)
	assert.Equal(t, "https://hooks.slack.com/services/T/B/x", cfg.WebhookURL)
	assert.Equal(t, "slack", cfg.WebhookService)
	assert.Equal(t, "tok", cfg.AccessToken)
	assert.Equal(t, time.Minute, cfg.CheckInterval)
	assert.Equal(t, 1234*time.Millisecond, cfg.CheckTimeout)
	assert.Equal(t, 7, cfg.MaxConcurrent)

	// defaults don't crash with missing env
	os.Unsetenv("ADDR")
	_ = FromEnv()
}

func TestLoadResources_OK(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resources.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
resources:
  - url: https://example.com/app.js
    digest: sha384-oqVuAfXRKap7fdgcCY5uykM6+R9GqQ8K/uxy9rx7HNQlGYl1kPzQho1wx4JwY8wC
  - url: https://example.com/style.css
    digest: sha256-uU0nuZNNPgilLlLX2n2r+sSE7+N6U4DukIj3rOLvzek=
`), 0o644))

	resources, err := LoadResources(path)
	require.NoError(t, err)
	require.Len(t, resources, 2)
	assert.Equal(t, "https://example.com/app.js", resources[0].URL)
	assert.Equal(t, "sha256-uU0nuZNNPgilLlLX2n2r+sSE7+N6U4DukIj3rOLvzek=", resources[1].Digest)
}

func TestLoadResources_RejectsBadDigestPrefix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resources.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
resources:
  - url: https://example.com/app.js
    digest: md5-abc
`), 0o644))

	_, err := LoadResources(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sha256-")
}

func TestLoadResources_MissingFile(t *testing.T) {
	_, err := LoadResources(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
