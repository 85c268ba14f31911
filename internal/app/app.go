package app

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"json-schema-checker/internal/config"
	"json-schema-checker/internal/events"
	"json-schema-checker/internal/observability/logging"
	"json-schema-checker/internal/observability/metrics"
	"json-schema-checker/internal/schema"
	"json-schema-checker/internal/service/checker"
)

// Application holds process-wide state for one checker invocation.
type Application struct {
	StartupTime time.Time
	Logger      zerolog.Logger
	Cfg         *config.Config
	Publisher   *events.Publisher
	Metrics     *metrics.Metrics

	gatherer prometheus.Gatherer
	started  bool
}

// New constructs a new Application from the provided configuration. Logs go
// to logOut; stdout is left to the report.
func New(cfg *config.Config, logOut io.Writer) *Application {
	logCfg := logging.DefaultConfig()
	if cfg.Observability.LogLevel != "" {
		logCfg.Level = cfg.Observability.LogLevel
	}
	if cfg.Observability.LogFormat != "" {
		logCfg.Format = cfg.Observability.LogFormat
	}
	logging.Init(logCfg, logOut)

	a := &Application{
		Cfg:      cfg,
		Logger:   logging.WithComponent("application"),
		Metrics:  metrics.DefaultMetrics,
		gatherer: prometheus.DefaultGatherer,
	}

	a.Logger.Debug().
		Str("method", "New").
		Str("logLevel", cfg.Observability.LogLevel).
		Msg("Schema checker application created")
	return a
}

// Start performs the startup work needed before a check runs: it connects
// the event publisher. Nothing here touches the schema file.
func (a *Application) Start() error {
	startLogger := a.Logger.With().
		Str("method", "Start").
		Logger()

	a.StartupTime = time.Now().UTC()
	a.Publisher = events.New(&events.Config{
		Enabled:        a.Cfg.Kafka.Enabled,
		Brokers:        a.Cfg.Kafka.Brokers,
		Topic:          a.Cfg.Kafka.Topic,
		Principal:      a.Cfg.Kafka.Principal,
		PublishTimeout: a.Cfg.Kafka.PublishTimeout,
	})
	a.started = true

	startLogger.Debug().
		Time("startupTime", a.StartupTime).
		Bool("kafkaEnabled", a.Cfg.Kafka.Enabled).
		Msg("Schema checker starting")
	return nil
}

// NewChecker builds a checker that prints reports to out.
func (a *Application) NewChecker(out io.Writer) (*checker.Checker, error) {
	validator, err := schema.New()
	if err != nil {
		return nil, err
	}
	return checker.New(validator, a.Publisher, out), nil
}

// Shutdown performs a best-effort cleanup before process exit: it exports
// metrics when configured and closes the publisher. It is a no-op when
// Start was never called.
func (a *Application) Shutdown() {
	shutdownLogger := a.Logger.With().
		Str("method", "Shutdown").
		Logger()

	if !a.started {
		return
	}
	a.started = false

	if path := a.Cfg.Observability.MetricsTextfile; path != "" {
		if err := metrics.WriteTextfile(path, a.gatherer); err != nil {
			shutdownLogger.Error().Err(err).Msg("Failed to export metrics")
		}
	}

	if a.Publisher != nil {
		if err := a.Publisher.Close(); err != nil {
			shutdownLogger.Error().Err(err).Msg("Failed to close publisher")
		}
	}

	shutdownLogger.Debug().
		Dur("uptime", time.Since(a.StartupTime)).
		Msg("Schema checker shutting down")
}
