package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultSinkTimeout = 10 * time.Second

// Config aggregates every setting the service reads from the environment.
type Config struct {
	Server   ServerConfig
	Supabase SupabaseConfig
	Webhook  WebhookConfig
}

// Load builds the configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	supabase, err := loadSupabaseConfig()
	if err != nil {
		return nil, err
	}

	webhook, err := loadWebhookConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Supabase: supabase, Webhook: webhook}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" verbatim.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// SupabaseConfig describes the durable record store.
type SupabaseConfig struct {
	URL     string
	Key     string
	Table   string
	Timeout time.Duration
}

// Enabled reports whether both credentials were provided.
func (c SupabaseConfig) Enabled() bool {
	return c.URL != "" && c.Key != ""
}

func loadSupabaseConfig() (SupabaseConfig, error) {
	timeout, err := loadSinkTimeout()
	if err != nil {
		return SupabaseConfig{}, err
	}

	return SupabaseConfig{
		URL:     strings.TrimSpace(os.Getenv("SUPABASE_URL")),
		Key:     strings.TrimSpace(os.Getenv("SUPABASE_KEY")),
		Table:   getEnvOrDefault("SUPABASE_TABLE", "patient_sessions"),
		Timeout: timeout,
	}, nil
}

// WebhookConfig describes the ward notification endpoint.
type WebhookConfig struct {
	URL     string
	Timeout time.Duration
}

// Enabled reports whether a notification URL was provided.
func (c WebhookConfig) Enabled() bool {
	return c.URL != ""
}

func loadWebhookConfig() (WebhookConfig, error) {
	timeout, err := loadSinkTimeout()
	if err != nil {
		return WebhookConfig{}, err
	}

	return WebhookConfig{
		URL:     strings.TrimSpace(os.Getenv("WEBHOOK_URL")),
		Timeout: timeout,
	}, nil
}

// loadSinkTimeout parses SINK_TIMEOUT in seconds, shared by both sinks.
func loadSinkTimeout() (time.Duration, error) {
	seconds, err := parseOptionalIntEnv("SINK_TIMEOUT")
	if err != nil {
		return 0, err
	}
	if seconds == nil {
		return defaultSinkTimeout, nil
	}
	if *seconds <= 0 {
		return 0, fmt.Errorf("invalid SINK_TIMEOUT value: %d", *seconds)
	}
	return time.Duration(*seconds) * time.Second, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
