package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"eventizer/lib/chrono"
	"eventizer/lib/scrapers/meetup"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Source is where group graphs are read from, *meetup.Client implements it.
type Source interface {
	Group(ctx context.Context, urlName string) (meetup.Group, error)
	Member(ctx context.Context, id int64) (meetup.Member, error)
	Members(groupUrlName string) *meetup.Cursor[meetup.Member]
	Events(groupUrlName string) *meetup.Cursor[meetup.Event]
	RSVPs(eventID string) *meetup.Cursor[meetup.RSVP]
}

type Options struct {
	// pause before reading the answers of each event
	EventDelay time.Duration
	// when set, events whose updated timestamp has not moved keep the
	// answers already stored instead of having them read again
	SkipUnchangedResponses bool
}

// Ingestor assembles the graph of one group: the group, its members, its
// events and the answers to each event. The traversal is depth first and
// strictly sequential.
type Ingestor struct {
	source   Source
	store    *Store
	resolver *Resolver
	clock    chrono.Clock
	options  Options
}

// NewIngestor makes an ingestor for a single run.
func NewIngestor(source Source, store *Store, clock chrono.Clock, options Options) *Ingestor {
	return &Ingestor{
		source:   source,
		store:    store,
		resolver: NewResolver(store),
		clock:    clock,
		options:  options,
	}
}

func (i *Ingestor) Stats() Stats {
	return i.resolver.Stats()
}

// Ingest reads the group with the given url name and everything hanging off
// it into storage. Any error aborts the run, rows written before the error
// stay in place and a later run picks up from them.
func (i *Ingestor) Ingest(ctx context.Context, urlName string) (*Group, error) {
	ctx, span := tracer.Start(ctx, "Ingest")
	defer span.End()
	span.SetAttributes(attribute.String("group", urlName))

	group, err := i.ingest(ctx, urlName)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "ingestion failed")
		return nil, err
	}
	return group, nil
}

func (i *Ingestor) ingest(ctx context.Context, urlName string) (*Group, error) {
	raw, err := i.source.Group(ctx, urlName)
	if err != nil {
		return nil, err
	}
	group, err := i.resolver.Group(ctx, raw, i.member)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "group resolved", "group", group.UrlName, "state", group.State)

	err = i.members(ctx, group)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "members resolved", "group", group.UrlName, "count", len(group.Members))

	err = i.events(ctx, group)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "events resolved", "group", group.UrlName, "count", len(group.Events))

	return group, nil
}

// member returns a member resolved earlier in the run, or reads and resolves
// it otherwise.
func (i *Ingestor) member(ctx context.Context, id int64) (*Member, error) {
	if m, ok := i.resolver.CachedMember(id); ok {
		return m, nil
	}
	raw, err := i.source.Member(ctx, id)
	if err != nil {
		return nil, err
	}
	return i.resolver.Member(ctx, raw)
}

func (i *Ingestor) members(ctx context.Context, group *Group) error {
	ctx, span := tracer.Start(ctx, "members")
	defer span.End()

	var members []*Member
	cursor := i.source.Members(group.UrlName)
	for cursor.Next(ctx) {
		m, err := i.resolver.Member(ctx, cursor.Record())
		if err != nil {
			return err
		}
		members = append(members, m)
	}
	if err := cursor.Err(); err != nil {
		return fmt.Errorf("list members of %s: %w", group.UrlName, err)
	}

	group.Members = members
	return i.store.SetGroupMembers(ctx, group.ID, members)
}

func (i *Ingestor) events(ctx context.Context, group *Group) error {
	ctx, span := tracer.Start(ctx, "events")
	defer span.End()

	cursor := i.source.Events(group.UrlName)
	for cursor.Next(ctx) {
		e, err := i.event(ctx, group, cursor.Record())
		if err != nil {
			return err
		}
		group.Events = append(group.Events, e)
	}
	if err := cursor.Err(); err != nil {
		return fmt.Errorf("list events of %s: %w", group.UrlName, err)
	}
	return nil
}

func (i *Ingestor) event(ctx context.Context, group *Group, raw meetup.Event) (*Event, error) {
	e, changed, err := i.resolver.Event(ctx, raw, group)
	if err != nil {
		return nil, err
	}

	if !changed && i.options.SkipUnchangedResponses && e.State == Existing {
		e.Responses, err = i.resolver.StoredResponses(ctx, e)
		if err != nil {
			return nil, fmt.Errorf("load responses of %s: %w", e.SourceID, err)
		}
		return e, nil
	}

	err = i.clock.Sleep(ctx, i.options.EventDelay)
	if err != nil {
		return nil, err
	}

	responses := []*Response{}
	cursor := i.source.RSVPs(raw.ID)
	for cursor.Next(ctx) {
		rsvp := cursor.Record()
		if rsvp.ID == meetup.SentinelRSVPID {
			i.resolver.stats.DroppedResponses++
			continue
		}
		member, err := i.member(ctx, rsvp.Member.MemberID)
		if err != nil {
			return nil, fmt.Errorf("resolve member of response %d: %w", rsvp.ID, err)
		}
		resp, err := i.resolver.Response(ctx, rsvp, e, member)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list responses of %s: %w", raw.ID, err)
	}

	e.Responses = responses
	return e, nil
}
