package ingest

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var tracer = otel.Tracer("services/ingest")
var meter = otel.Meter("services/ingest")

var resolvedCounter, _ = meter.Int64Counter(
	"ingest.resolved",
	metric.WithDescription("entities matched against storage, by kind and whether the row was created"),
)
var runCounter, _ = meter.Int64Counter(
	"ingest.runs",
	metric.WithDescription("finished ingestion runs, by outcome"),
)
var runDuration, _ = meter.Float64Histogram(
	"ingest.run_duration",
	metric.WithUnit("s"),
)
