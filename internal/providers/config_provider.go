package providers

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"devstats/internal/structures"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	// .env is optional; real environment variables win over it
	_ = godotenv.Load()

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	v.SetDefault("webServer.host", "0.0.0.0")
	v.SetDefault("webServer.port", 4000)
	v.SetDefault("enquiries.filePath", "enquiries.xlsx")
	v.SetDefault("upstream.leetCodeURL", "https://leetcode.com/graphql")
	v.SetDefault("upstream.gitHubAPIURL", "https://api.github.com")
	v.SetDefault("upstream.gitHubGraphQLURL", "https://api.github.com/graphql")
	v.SetDefault("upstream.timeout", 10*time.Second)
	v.SetDefault("cache.ttl", 5*time.Minute)
	v.SetDefault("cache.largeEntries", defaultLargeEntries)

	v.BindEnv("logger.level", "DEVSTATS_LOG_LEVEL")
	v.BindEnv("webServer.port", "PORT")
	v.BindEnv("upstream.gitHubToken", "GITHUB_TOKEN")
	v.BindEnv("enquiries.filePath", "DEVSTATS_ENQUIRIES_FILE")
	v.BindEnv("cache.enabled", "DEVSTATS_CACHE_ENABLED")
	v.BindEnv("cache.size", "DEVSTATS_CACHE_SIZE")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "DevStats"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
