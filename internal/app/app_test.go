package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"json-schema-checker/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Service: config.ServiceConfig{Principal: "test-svc"},
		Observability: config.ObservabilityConfig{
			LogLevel:  "debug",
			LogFormat: "json",
		},
		Kafka: config.KafkaConfig{Topic: "test.checks", Principal: "test-svc"},
	}
}

func TestApplication_Lifecycle(t *testing.T) {
	var logs bytes.Buffer
	a := New(testConfig(), &logs)

	require.NoError(t, a.Start())
	assert.False(t, a.StartupTime.IsZero())
	require.NotNil(t, a.Publisher)

	a.Shutdown()
	a.Shutdown()

	assert.Contains(t, logs.String(), `"component":"application"`)
	assert.Contains(t, logs.String(), "Schema checker shutting down")
}

func TestApplication_NewChecker(t *testing.T) {
	a := New(testConfig(), &bytes.Buffer{})
	require.NoError(t, a.Start())
	defer a.Shutdown()

	var out bytes.Buffer
	c, err := a.NewChecker(&out)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "s.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"title":"S"}`), 0o644))

	assert.True(t, c.Check(context.Background(), path))
	assert.Contains(t, out.String(), "   Title: S\n")
}

func TestApplication_Shutdown_WritesMetricsTextfile(t *testing.T) {
	cfg := testConfig()
	cfg.Observability.MetricsTextfile = filepath.Join(t.TempDir(), "checker.prom")

	a := New(cfg, &bytes.Buffer{})
	require.NoError(t, a.Start())
	a.Metrics.RecordCheck("valid", 0.001, 10)
	a.Shutdown()

	data, err := os.ReadFile(cfg.Observability.MetricsTextfile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "json_schema_checker_checks_total")
}

func TestApplication_Shutdown_WithoutStart(t *testing.T) {
	cfg := testConfig()
	cfg.Observability.MetricsTextfile = filepath.Join(t.TempDir(), "checker.prom")

	a := New(cfg, &bytes.Buffer{})
	a.Shutdown()

	_, err := os.Stat(cfg.Observability.MetricsTextfile)
	assert.True(t, os.IsNotExist(err))
}
