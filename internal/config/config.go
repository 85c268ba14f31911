package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds process-wide settings. None of them change the printed report
// or the exit code; they only steer logging, metrics and event publication.
type Config struct {
	Service       ServiceConfig
	Observability ObservabilityConfig
	Kafka         KafkaConfig
}

// ServiceConfig identifies this tool to downstream consumers.
type ServiceConfig struct {
	Principal string
}

// ObservabilityConfig controls logging and metrics export.
type ObservabilityConfig struct {
	LogLevel        string
	LogFormat       string
	MetricsTextfile string
}

// KafkaConfig controls publication of check outcome events.
type KafkaConfig struct {
	Enabled        bool
	Brokers        []string
	Topic          string
	Principal      string
	PublishTimeout time.Duration
}

func Load() *Config {
	principal := envOrDefault("SERVICE_PRINCIPAL", "svc-schema-checker")

	return &Config{
		Service: ServiceConfig{
			Principal: principal,
		},
		Observability: ObservabilityConfig{
			LogLevel:        envOrDefault("LOG_LEVEL", "warn"),
			LogFormat:       envOrDefault("LOG_FORMAT", "console"),
			MetricsTextfile: envOrDefault("METRICS_TEXTFILE", ""),
		},
		Kafka: KafkaConfig{
			Enabled:        envOrDefaultBool("KAFKA_ENABLED", false),
			Brokers:        envOrDefaultList("KAFKA_BROKERS", []string{"localhost:9092"}),
			Topic:          envOrDefault("KAFKA_TOPIC", "schema.check.completed"),
			Principal:      envOrDefault("KAFKA_PRINCIPAL", principal),
			PublishTimeout: envOrDefaultDuration("KAFKA_PUBLISH_TIMEOUT", 5*time.Second),
		},
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

// envOrDefaultList splits a comma-separated value, dropping empty entries.
func envOrDefaultList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
