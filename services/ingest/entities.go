package ingest

import (
	"strings"
	"time"

	"eventizer/lib/timezone"
)

// IdentityState says whether an entity has been matched against storage and,
// if so, whether the match created its row.
type IdentityState int

const (
	Unresolved IdentityState = iota
	Created
	Existing
)

func (s IdentityState) String() string {
	switch s {
	case Created:
		return "created"
	case Existing:
		return "existing"
	default:
		return "unresolved"
	}
}

// Identity is the storage identity of an entity.
type Identity struct {
	ID    int64
	State IdentityState
}

func newIdentity(id int64, created bool) Identity {
	if created {
		return Identity{ID: id, State: Created}
	}
	return Identity{ID: id, State: Existing}
}

func (i Identity) Resolved() bool {
	return i.State != Unresolved
}

type Location struct {
	Identity
	Country string
	City    string
}

func (l *Location) Key() string {
	return locationKey(l.Country, l.City)
}

// countries compare case-insensitively, cities do not
func locationKey(country, city string) string {
	return strings.ToUpper(country) + ":" + city
}

type Topic struct {
	Identity
	UrlKey string
	Name   string
}

type Category struct {
	Identity
	ShortName string
	Name      string
}

type Member struct {
	Identity
	SourceID int64
	Name     string
	Link     string
	Joined   time.Time
	Status   string
	Location *Location
	Topics   []*Topic

	// link and joined have been written, epoch zero is a valid joined time
	provenance bool
}

type Group struct {
	Identity
	SourceID    int64
	Name        string
	Link        string
	UrlName     string
	Description string
	Rating      float64
	Created     time.Time
	Organizer   *Member
	Location    *Location
	Category    *Category
	Topics      []*Topic
	Members     []*Member
	Events      []*Event
}

type Rating struct {
	Count   float64
	Average float64
}

type Event struct {
	Identity
	SourceID    string
	Group       *Group
	Name        string
	Description string
	Headcount   int64
	Status      string
	Rating      *Rating
	Url         string
	Created     time.Time
	Updated     time.Time
	Time        time.Time
	// offset from UTC of the place the event happens at, in milliseconds
	UtcOffset int64
	// wall clock start time at the event's location, expressed in UTC
	LocalTime time.Time
	Location  *Location
	Responses []*Response

	// descriptive fields have been written at least once
	synced bool
}

// UtcOffsetHours is the event's UTC offset in whole hours.
func (e *Event) UtcOffsetHours() int64 {
	return timezone.OffsetHours(e.UtcOffset)
}

type Response struct {
	Identity
	SourceID int64
	Value    string
	Event    *Event
	Member   *Member
}
