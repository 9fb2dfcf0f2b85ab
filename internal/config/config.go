package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// Upstream movie API
	APIBaseURL string

	// Image CDN host prepended to non-absolute poster/thumb URLs
	ImageHost string

	// Wrapper player used for synthetic episode embeds; its host is also
	// the first deny-list entry for iframe embedding
	PlayerBaseURL string

	// Extra hosts that must never be rendered in an iframe
	EmbedDenyHosts []string

	// Cache
	CacheTTLMinutes int

	// Search history
	HistoryLimit int

	// Server
	ServerPort string

	// Paths
	DatabaseFile string // $CONFIG_DIR/gophim.db

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Setup viper FIRST to load .env file
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Load .env file if it exists (ignore if not found)
	_ = viper.ReadInConfig()

	// Set defaults
	viper.SetDefault("API_BASE_URL", "https://phimapi.com")
	viper.SetDefault("IMAGE_HOST", "phimimg.com")
	viper.SetDefault("PLAYER_BASE_URL", "https://player.phimapi.com/player/")
	viper.SetDefault("CACHE_TTL_MINUTES", 5)
	viper.SetDefault("HISTORY_LIMIT", 10)
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")

	// NOW read CONFIG_DIR from viper (which has loaded .env file)
	configDir := viper.GetString("CONFIG_DIR")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config", "gophim")
	} else {
		// Convert relative path to absolute path
		absPath, err := filepath.Abs(configDir)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path for CONFIG_DIR: %w", err)
		}
		configDir = absPath
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config := &Config{
		APIBaseURL:      strings.TrimRight(viper.GetString("API_BASE_URL"), "/"),
		ImageHost:       viper.GetString("IMAGE_HOST"),
		PlayerBaseURL:   viper.GetString("PLAYER_BASE_URL"),
		EmbedDenyHosts:  splitHosts(viper.GetString("EMBED_DENY_HOSTS")),
		CacheTTLMinutes: viper.GetInt("CACHE_TTL_MINUTES"),
		HistoryLimit:    viper.GetInt("HISTORY_LIMIT"),
		ServerPort:      viper.GetString("SERVER_PORT"),
		DatabaseFile:    filepath.Join(configDir, "gophim.db"),
		LogLevel:        viper.GetString("LOG_LEVEL"),
	}

	// Validate required fields
	if config.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required")
	}
	if config.PlayerBaseURL == "" {
		return nil, fmt.Errorf("PLAYER_BASE_URL is required")
	}
	if config.HistoryLimit <= 0 {
		return nil, fmt.Errorf("HISTORY_LIMIT must be positive")
	}

	return config, nil
}

// splitHosts parses a comma-separated host list
func splitHosts(raw string) []string {
	var hosts []string
	for _, h := range strings.Split(raw, ",") {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" {
			hosts = append(hosts, h)
		}
	}
	return hosts
}
