// Package checker loads a schema file, validates it against the draft-07
// meta-schema and prints a summary report.
package checker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"json-schema-checker/internal/events"
	"json-schema-checker/internal/models"
	"json-schema-checker/internal/observability/logging"
	"json-schema-checker/internal/observability/metrics"
	"json-schema-checker/internal/schema"
)

// Checker runs schema checks and writes their reports to out.
type Checker struct {
	fs        afero.Fs
	validator *schema.Validator
	publisher *events.Publisher
	metrics   *metrics.Metrics
	out       io.Writer
}

// New creates a checker reading from the OS filesystem. publisher may be nil.
func New(validator *schema.Validator, publisher *events.Publisher, out io.Writer) *Checker {
	return NewWithFs(afero.NewOsFs(), validator, publisher, out)
}

// NewWithFs creates a checker reading from the given filesystem.
func NewWithFs(fsys afero.Fs, validator *schema.Validator, publisher *events.Publisher, out io.Writer) *Checker {
	return &Checker{
		fs:        fsys,
		validator: validator,
		publisher: publisher,
		metrics:   metrics.DefaultMetrics,
		out:       out,
	}
}

// Check validates the schema file at path, prints the report and returns
// whether the file is a valid schema. It never returns an error: every
// failure is reported and turned into false.
func (c *Checker) Check(ctx context.Context, path string) bool {
	logger := logging.WithFile("checker", path)

	start := time.Now()
	summary, size, err := c.inspect(path)
	elapsed := time.Since(start)

	if werr := writeReport(c.out, path, summary, err); werr != nil {
		logger.Error().Err(werr).Msg("Failed to write report")
		if err == nil {
			err = &Error{Kind: KindUnexpected, Path: path, Err: werr}
		}
	}

	c.record(ctx, logger, path, summary, size, err, elapsed)
	return err == nil
}

// Inspect validates the schema file at path without printing anything.
// Failures are *Error values.
func (c *Checker) Inspect(path string) (*models.SchemaSummary, error) {
	summary, _, err := c.inspect(path)
	return summary, err
}

func (c *Checker) inspect(path string) (summary *models.SchemaSummary, size int, err error) {
	size = -1
	defer func() {
		if r := recover(); r != nil {
			summary = nil
			err = &Error{Kind: KindUnexpected, Path: path, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	data, err := c.read(path)
	if err != nil {
		return nil, size, err
	}
	size = len(data)

	if !utf8.Valid(data) {
		return nil, size, &Error{Kind: KindUnexpected, Path: path, Err: errInvalidUTF8}
	}

	doc, err := schema.Decode(data)
	if err != nil {
		return nil, size, &Error{Kind: KindJSONSyntax, Path: path, Err: err}
	}

	if err := c.validator.Validate(doc); err != nil {
		return nil, size, &Error{Kind: KindSchemaFormat, Path: path, Err: err}
	}

	s := schema.Summarize(doc)
	return &s, size, nil
}

func (c *Checker) read(path string) ([]byte, error) {
	f, err := c.fs.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &Error{Kind: KindFileNotFound, Path: path, Err: err}
		}
		return nil, &Error{Kind: KindUnexpected, Path: path, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &Error{Kind: KindUnexpected, Path: path, Err: err}
	}
	return data, nil
}

func (c *Checker) record(
	ctx context.Context,
	logger zerolog.Logger,
	path string,
	summary *models.SchemaSummary,
	size int,
	err error,
	elapsed time.Duration,
) {
	outcome := metrics.OutcomeValid
	if err != nil {
		outcome = string(KindOf(err))
		logger.Warn().
			Str("outcome", outcome).
			Err(err).
			Dur("duration", elapsed).
			Msg("Schema check failed")
	} else {
		logger.Debug().
			Int("bytes", size).
			Dur("duration", elapsed).
			Msg("Schema check passed")
	}

	c.metrics.RecordCheck(outcome, elapsed.Seconds(), size)
	if summary != nil && summary.HasProperties {
		c.metrics.RecordProperties(summary.PropertyCount)
	}

	if c.publisher == nil {
		return
	}

	event := models.CheckCompleted{
		EventType:  models.EventTypeCheckCompleted,
		CheckID:    uuid.NewString(),
		Principal:  c.publisher.Principal(),
		Path:       path,
		Valid:      err == nil,
		Outcome:    outcome,
		Summary:    summary,
		DurationMs: elapsed.Milliseconds(),
		Timestamp:  time.Now().UnixMilli(),
	}
	if err != nil {
		event.Message = err.Error()
	}

	if perr := c.publisher.PublishCheck(ctx, event); perr != nil {
		logger.Warn().Err(perr).Msg("Failed to publish check outcome")
	}
}
