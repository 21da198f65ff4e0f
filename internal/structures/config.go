package structures

import (
	"net/http"
	"time"
)

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type Route struct {
	Url     string
	Handler http.Handler
}

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type EnquiriesConfig struct {
	FilePath string `yaml:"filePath" validate:"required|unixPath"`
}

// UpstreamConfig holds the endpoints of the external APIs. An empty
// GitHubToken disables contribution stats and sends repository listings
// unauthenticated.
type UpstreamConfig struct {
	LeetCodeURL      string        `yaml:"leetCodeURL" validate:"required|fullUrl"`
	GitHubAPIURL     string        `yaml:"gitHubAPIURL" validate:"required|fullUrl"`
	GitHubGraphQLURL string        `yaml:"gitHubGraphQLURL" validate:"required|fullUrl"`
	GitHubToken      string        `yaml:"gitHubToken"`
	Timeout          time.Duration `yaml:"timeout" validate:"required|min:1"`
}

// CacheConfig sizes the response cache. Size is in MB; payloads larger than
// Size/1024 MB do not fit freecache and are kept in a separate LRU of at most
// LargeEntries items.
type CacheConfig struct {
	Enabled      bool          `yaml:"enabled"`
	Size         int           `yaml:"size"`
	LargeEntries int           `yaml:"largeEntries"`
	TTL          time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type CorsConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server          `yaml:"webServer"`
	Logger    LoggerConfig    `yaml:"logger"`
	Enquiries EnquiriesConfig `yaml:"enquiries"`
	Upstream  UpstreamConfig  `yaml:"upstream"`
	Cache     CacheConfig     `yaml:"cache"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Cors      CorsConfig      `yaml:"cors"`
}
