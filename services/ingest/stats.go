package ingest

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Kind string

const (
	KindLocation Kind = "location"
	KindTopic    Kind = "topic"
	KindCategory Kind = "category"
	KindMember   Kind = "member"
	KindGroup    Kind = "group"
	KindEvent    Kind = "event"
	KindResponse Kind = "response"
)

var Kinds = []Kind{
	KindGroup,
	KindMember,
	KindEvent,
	KindResponse,
	KindLocation,
	KindTopic,
	KindCategory,
}

// Stats counts what a single run resolved.
type Stats struct {
	Created  map[Kind]int
	Existing map[Kind]int

	EventsUpdated    int
	EventsUnchanged  int
	DroppedResponses int
}

func newStats() Stats {
	return Stats{
		Created:  map[Kind]int{},
		Existing: map[Kind]int{},
	}
}

func (s *Stats) record(ctx context.Context, kind Kind, state IdentityState) {
	switch state {
	case Created:
		s.Created[kind]++
	case Existing:
		s.Existing[kind]++
	default:
		return
	}
	resolvedCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", string(kind)),
		attribute.String("state", state.String()),
	))
}

// Resolved is the number of distinct entities of a kind matched in the run.
func (s Stats) Resolved(kind Kind) int {
	return s.Created[kind] + s.Existing[kind]
}
