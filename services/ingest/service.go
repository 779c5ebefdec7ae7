package ingest

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"time"

	"eventizer/lib/chrono"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/singleflight"
)

type Result struct {
	Group    *Group
	Stats    Stats
	Duration time.Duration
}

// Service runs ingestions against a database. Runs for different groups may
// happen concurrently, each with its own resolver, concurrent requests for
// the same group share a single run.
type Service struct {
	store   *Store
	source  Source
	clock   chrono.Clock
	options Options

	runs singleflight.Group
}

func NewService(database *sql.DB, source Source, clock chrono.Clock, options Options) *Service {
	if clock == nil {
		clock = chrono.NewStandardClock()
	}
	return &Service{
		store:   NewStore(database),
		source:  source,
		clock:   clock,
		options: options,
	}
}

func (s *Service) Store() *Store {
	return s.store
}

// Ingest runs a full ingestion of a group.
func (s *Service) Ingest(ctx context.Context, urlName string) (Result, error) {
	key := strings.ToLower(urlName)
	value, err, shared := s.runs.Do(key, func() (any, error) {
		return s.ingest(ctx, urlName)
	})
	if shared {
		slog.DebugContext(ctx, "joined an ingestion already in flight", "group", urlName)
	}
	if err != nil {
		return Result{}, err
	}
	return value.(Result), nil
}

func (s *Service) ingest(ctx context.Context, urlName string) (Result, error) {
	start := s.clock.Now()
	ingestor := NewIngestor(s.source, s.store, s.clock, s.options)

	group, err := ingestor.Ingest(ctx, urlName)
	duration := s.clock.Now().Sub(start)

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	runCounter.Add(ctx, 1, attrs)
	runDuration.Record(ctx, duration.Seconds(), attrs)

	if err != nil {
		slog.ErrorContext(ctx, "ingestion failed", "group", urlName, "err", err)
		return Result{}, err
	}
	slog.InfoContext(
		ctx, "ingestion finished",
		"group", urlName,
		"duration", duration,
		"events_updated", ingestor.Stats().EventsUpdated,
		"events_unchanged", ingestor.Stats().EventsUnchanged,
	)
	return Result{
		Group:    group,
		Stats:    ingestor.Stats(),
		Duration: duration,
	}, nil
}

// IngestAll ingests every group in order. A failed group does not stop the
// others, every failure is returned joined together.
func (s *Service) IngestAll(ctx context.Context, groups []string) ([]Result, error) {
	var results []Result
	var errs []error
	for _, name := range groups {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		result, err := s.Ingest(ctx, name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		results = append(results, result)
	}
	return results, errors.Join(errs...)
}

// DeleteGroup removes a stored group with its events and their answers.
func (s *Service) DeleteGroup(ctx context.Context, urlName string) (bool, error) {
	ctx, span := tracer.Start(ctx, "DeleteGroup")
	defer span.End()
	span.SetAttributes(attribute.String("group", urlName))
	return s.store.DeleteGroup(ctx, urlName)
}

// DeleteEvent removes a stored event with its answers.
func (s *Service) DeleteEvent(ctx context.Context, sourceID string) (bool, error) {
	ctx, span := tracer.Start(ctx, "DeleteEvent")
	defer span.End()
	span.SetAttributes(attribute.String("event", sourceID))
	return s.store.DeleteEvent(ctx, sourceID)
}

func (s *Service) Counts(ctx context.Context) (Counts, error) {
	return s.store.Counts(ctx)
}

func (s *Service) GroupSummaries(ctx context.Context) ([]GroupSummary, error) {
	return s.store.GroupSummaries(ctx)
}
