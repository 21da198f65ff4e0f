package providers

import (
	"devstats/internal/structures"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
webServer:
  host: 127.0.0.1
  port: 8088
logger:
  level: info
  mode: 0644
  dir: /tmp
enquiries:
  filePath: /tmp/enquiries.xlsx
cache:
  enabled: true
  size: 4
  ttl: 30s
metrics:
  enabled: true
`

func writeConfig(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestNewConfigProvider_LoadsFileAndDefaults(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	path := writeConfig(t, testConfigYAML)

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path, DebugMode: true})
	require.NoError(t, err)

	assert.Equal(t, "DevStats", conf.AppName)
	assert.True(t, conf.Debug)
	assert.Equal(t, path, conf.Path)
	assert.Equal(t, "127.0.0.1", conf.WebServer.Host)
	assert.Equal(t, 8088, conf.WebServer.Port)
	assert.Equal(t, "/tmp/enquiries.xlsx", conf.Enquiries.FilePath)
	assert.Equal(t, 30*time.Second, conf.Cache.TTL)
	assert.Equal(t, "https://leetcode.com/graphql", conf.Upstream.LeetCodeURL)
	assert.Equal(t, "https://api.github.com", conf.Upstream.GitHubAPIURL)
	assert.Equal(t, 10*time.Second, conf.Upstream.Timeout)
	assert.Empty(t, conf.Upstream.GitHubToken)
}

func TestNewConfigProvider_EnvOverrides(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "ghp_test")
	t.Setenv("PORT", "9099")
	t.Setenv("DEVSTATS_LOG_LEVEL", "debug")
	path := writeConfig(t, testConfigYAML)

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	require.NoError(t, err)

	assert.Equal(t, "ghp_test", conf.Upstream.GitHubToken)
	assert.Equal(t, 9099, conf.WebServer.Port)
	assert.Equal(t, "debug", conf.Logger.Level)
}

func TestNewConfigProvider_MissingFile(t *testing.T) {
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: filepath.Join(t.TempDir(), "absent.yaml")})
	assert.Error(t, err)
}

func TestNewConfigProvider_InvalidConfig(t *testing.T) {
	path := writeConfig(t, `
logger:
  level: loud
  mode: 0644
  dir: /tmp
`)
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	assert.Error(t, err)
}
