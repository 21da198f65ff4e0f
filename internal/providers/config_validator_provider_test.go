package providers

import (
	"devstats/internal/structures"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *structures.Config {
	return &structures.Config{
		WebServer: structures.Server{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Enquiries: structures.EnquiriesConfig{
			FilePath: "/tmp/enquiries.xlsx",
		},
		Upstream: structures.UpstreamConfig{
			LeetCodeURL:      "https://leetcode.com/graphql",
			GitHubAPIURL:     "https://api.github.com",
			GitHubGraphQLURL: "https://api.github.com/graphql",
			Timeout:          10 * time.Second,
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyHost(t *testing.T) {
	c := validConfig()
	c.WebServer.Host = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ZeroPort(t *testing.T) {
	c := validConfig()
	c.WebServer.Port = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_EmptyLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "verbose"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_EmptyEnquiryPath(t *testing.T) {
	c := validConfig()
	c.Enquiries.FilePath = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_InvalidUpstreamURL(t *testing.T) {
	c := validConfig()
	c.Upstream.LeetCodeURL = "not a url"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ZeroTimeout(t *testing.T) {
	c := validConfig()
	c.Upstream.Timeout = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_TokenIsOptional(t *testing.T) {
	c := validConfig()
	c.Upstream.GitHubToken = ""
	v := NewCnfValidator(c)
	assert.NoError(t, v.Validate())
}
