package ingest

import (
	"context"
	"fmt"
	"strings"

	"eventizer/lib/scrapers/meetup"
	"eventizer/lib/timezone"
	"eventizer/services/ingest/db"
)

// OrganizerFunc resolves the organizer of a group seen for the first time.
type OrganizerFunc func(ctx context.Context, memberID int64) (*Member, error)

// Resolver maps remote records onto stored entities, creating rows that do
// not exist yet. Its caches live exactly as long as the Resolver, so a new
// one should be made for every run. A Resolver is not safe for concurrent use.
type Resolver struct {
	store *Store
	stats Stats

	locations     map[string]*Location
	locationsByID map[int64]*Location
	topics        map[string]*Topic
	categories    map[string]*Category
	members       map[int64]*Member
	membersByID   map[int64]*Member
	groups        map[int64]*Group
	events        map[string]*Event
	responses     map[int64]*Response

	// loaded from storage by row id, a record naming one of these still
	// counts as the first sighting and refreshes its name
	topicsByID     map[int64]*Topic
	categoriesByID map[int64]*Category
}

func NewResolver(store *Store) *Resolver {
	return &Resolver{
		store:          store,
		stats:          newStats(),
		locations:      map[string]*Location{},
		locationsByID:  map[int64]*Location{},
		topics:         map[string]*Topic{},
		categories:     map[string]*Category{},
		members:        map[int64]*Member{},
		membersByID:    map[int64]*Member{},
		groups:         map[int64]*Group{},
		events:         map[string]*Event{},
		responses:      map[int64]*Response{},
		topicsByID:     map[int64]*Topic{},
		categoriesByID: map[int64]*Category{},
	}
}

func (r *Resolver) Stats() Stats {
	return r.stats
}

func (r *Resolver) cacheLocation(l *Location) {
	r.locations[l.Key()] = l
	r.locationsByID[l.ID] = l
}

// Location resolves a (country, city) pair. Countries are compared
// case-insensitively and stored upper-cased.
func (r *Resolver) Location(ctx context.Context, country, city string) (*Location, error) {
	key := locationKey(country, city)
	if l, ok := r.locations[key]; ok {
		return l, nil
	}

	row, created, err := r.store.FindOrCreateLocation(ctx, strings.ToUpper(country), city)
	if err != nil {
		return nil, fmt.Errorf("resolve location %s: %w", key, err)
	}
	l := &Location{
		Identity: newIdentity(row.ID, created),
		Country:  row.Country,
		City:     row.City,
	}
	r.cacheLocation(l)
	r.stats.record(ctx, KindLocation, l.State)
	return l, nil
}

// records without any place information have no location
func (r *Resolver) optionalLocation(ctx context.Context, country, city string) (*Location, error) {
	if country == "" && city == "" {
		return nil, nil
	}
	return r.Location(ctx, country, city)
}

func (r *Resolver) locationByID(ctx context.Context, id int64) (*Location, error) {
	if l, ok := r.locationsByID[id]; ok {
		return l, nil
	}
	row, err := r.store.LocationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	l := &Location{
		Identity: newIdentity(row.ID, false),
		Country:  row.Country,
		City:     row.City,
	}
	r.cacheLocation(l)
	r.stats.record(ctx, KindLocation, l.State)
	return l, nil
}

func (r *Resolver) Topic(ctx context.Context, raw meetup.Topic) (*Topic, error) {
	if t, ok := r.topics[raw.UrlKey]; ok {
		return t, nil
	}

	row, created, err := r.store.FindOrCreateTopic(ctx, raw.UrlKey, raw.Name)
	if err != nil {
		return nil, fmt.Errorf("resolve topic %s: %w", raw.UrlKey, err)
	}
	if !created && row.Name != raw.Name {
		err = r.store.RenameTopic(ctx, row.ID, raw.Name)
		if err != nil {
			return nil, fmt.Errorf("rename topic %s: %w", raw.UrlKey, err)
		}
	}
	t, ok := r.topicsByID[row.ID]
	if !ok {
		t = &Topic{UrlKey: row.Urlkey}
		r.topicsByID[row.ID] = t
	}
	t.Identity = newIdentity(row.ID, created)
	t.Name = raw.Name
	r.topics[raw.UrlKey] = t
	r.stats.record(ctx, KindTopic, t.State)
	return t, nil
}

// topicSet resolves a list of topics, dropping repeats.
func (r *Resolver) topicSet(ctx context.Context, raws []meetup.Topic) ([]*Topic, error) {
	out := make([]*Topic, 0, len(raws))
	seen := map[*Topic]bool{}
	for _, raw := range raws {
		t, err := r.Topic(ctx, raw)
		if err != nil {
			return nil, err
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out, nil
}

func (r *Resolver) Category(ctx context.Context, raw meetup.Category) (*Category, error) {
	if c, ok := r.categories[raw.ShortName]; ok {
		return c, nil
	}

	row, created, err := r.store.FindOrCreateCategory(ctx, raw.ShortName, raw.Name)
	if err != nil {
		return nil, fmt.Errorf("resolve category %s: %w", raw.ShortName, err)
	}
	if !created && row.Name != raw.Name {
		err = r.store.RenameCategory(ctx, row.ID, raw.Name)
		if err != nil {
			return nil, fmt.Errorf("rename category %s: %w", raw.ShortName, err)
		}
	}
	c, ok := r.categoriesByID[row.ID]
	if !ok {
		c = &Category{ShortName: row.Shortname}
		r.categoriesByID[row.ID] = c
	}
	c.Identity = newIdentity(row.ID, created)
	c.Name = raw.Name
	r.categories[raw.ShortName] = c
	r.stats.record(ctx, KindCategory, c.State)
	return c, nil
}

func (r *Resolver) categoryByID(ctx context.Context, id int64) (*Category, error) {
	if c, ok := r.categoriesByID[id]; ok {
		return c, nil
	}
	row, err := r.store.CategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c := &Category{
		Identity:  newIdentity(row.ID, false),
		ShortName: row.Shortname,
		Name:      row.Name,
	}
	r.categoriesByID[id] = c
	return c, nil
}

func (r *Resolver) cacheMember(m *Member) {
	r.members[m.SourceID] = m
	r.membersByID[m.ID] = m
}

// CachedMember returns a member already resolved during this run.
func (r *Resolver) CachedMember(sourceID int64) (*Member, bool) {
	m, ok := r.members[sourceID]
	return m, ok
}

func (r *Resolver) memberFromRow(ctx context.Context, row db.Member, created bool) (*Member, error) {
	m := &Member{
		Identity: newIdentity(row.ID, created),
		SourceID: row.SourceID,
		Name:     row.Name,
		Link:     row.Link,
		Joined:   fromNullTime(row.Joined),
		Status:   row.Status,

		provenance: row.Joined.Valid,
	}
	if row.LocationID.Valid {
		l, err := r.locationByID(ctx, row.LocationID.Int64)
		if err != nil {
			return nil, err
		}
		m.Location = l
	}
	return m, nil
}

// memberByID loads a stored member by row id without refreshing it.
func (r *Resolver) memberByID(ctx context.Context, id int64) (*Member, error) {
	if m, ok := r.membersByID[id]; ok {
		return m, nil
	}
	row, err := r.store.MemberByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m, err := r.memberFromRow(ctx, row, false)
	if err != nil {
		return nil, err
	}
	topics, err := r.store.MemberTopics(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	for _, row := range topics {
		t, ok := r.topicsByID[row.ID]
		if !ok {
			t = &Topic{
				Identity: newIdentity(row.ID, false),
				UrlKey:   row.Urlkey,
				Name:     row.Name,
			}
			r.topicsByID[row.ID] = t
		}
		m.Topics = append(m.Topics, t)
	}
	r.cacheMember(m)
	r.stats.record(ctx, KindMember, m.State)
	return m, nil
}

// Member resolves a member record and applies it: the profile link and
// joined timestamp are only written the first time the member is stored,
// everything else is refreshed on every sighting.
func (r *Resolver) Member(ctx context.Context, raw meetup.Member) (*Member, error) {
	m, ok := r.members[raw.ID]
	if !ok {
		row, created, err := r.store.FindOrCreateMember(ctx, raw.ID)
		if err != nil {
			return nil, fmt.Errorf("resolve member %d: %w", raw.ID, err)
		}
		m, err = r.memberFromRow(ctx, row, created)
		if err != nil {
			return nil, fmt.Errorf("resolve member %d: %w", raw.ID, err)
		}
		r.cacheMember(m)
		r.stats.record(ctx, KindMember, m.State)
	}

	// a row left behind by an aborted run has no provenance yet
	if !m.provenance {
		m.Link = raw.Link
		m.Joined = timezone.FromEpochMillis(raw.Joined)
		m.provenance = true
	}

	location, err := r.optionalLocation(ctx, raw.Country, raw.City)
	if err != nil {
		return nil, err
	}
	topics, err := r.topicSet(ctx, raw.Topics)
	if err != nil {
		return nil, err
	}
	m.Name = raw.Name
	m.Status = raw.Status
	m.Location = location
	m.Topics = topics

	err = r.store.SaveMember(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("save member %d: %w", raw.ID, err)
	}
	return m, nil
}

func (r *Resolver) groupFromRow(ctx context.Context, row db.MeetupGroup, created bool) (*Group, error) {
	g := &Group{
		Identity:    newIdentity(row.ID, created),
		SourceID:    row.SourceID,
		Name:        row.Name,
		Link:        row.Link,
		UrlName:     row.Urlname,
		Description: row.Description,
		Rating:      row.Rating,
		Created:     fromNullTime(row.Created),
	}
	if row.OrganizerID.Valid {
		organizer, err := r.memberByID(ctx, row.OrganizerID.Int64)
		if err != nil {
			return nil, err
		}
		g.Organizer = organizer
	}
	if row.CategoryID.Valid {
		category, err := r.categoryByID(ctx, row.CategoryID.Int64)
		if err != nil {
			return nil, err
		}
		g.Category = category
	}
	if row.LocationID.Valid {
		location, err := r.locationByID(ctx, row.LocationID.Int64)
		if err != nil {
			return nil, err
		}
		g.Location = location
	}
	return g, nil
}

// Group resolves a group record and applies it: name, link, url name,
// creation time and organizer are only written the first time the group is
// stored, everything else is refreshed on every sighting.
func (r *Resolver) Group(ctx context.Context, raw meetup.Group, organizer OrganizerFunc) (*Group, error) {
	g, ok := r.groups[raw.ID]
	if !ok {
		row, created, err := r.store.FindOrCreateGroup(ctx, raw.ID)
		if err != nil {
			return nil, fmt.Errorf("resolve group %s: %w", raw.UrlName, err)
		}
		g, err = r.groupFromRow(ctx, row, created)
		if err != nil {
			return nil, fmt.Errorf("resolve group %s: %w", raw.UrlName, err)
		}
		r.groups[raw.ID] = g
		r.stats.record(ctx, KindGroup, g.State)
	}

	location, err := r.optionalLocation(ctx, raw.Country, raw.City)
	if err != nil {
		return nil, err
	}
	var category *Category
	if raw.Category != nil {
		category, err = r.Category(ctx, *raw.Category)
		if err != nil {
			return nil, err
		}
	}
	topics, err := r.topicSet(ctx, raw.Topics)
	if err != nil {
		return nil, err
	}

	// a row left behind by an aborted run has no provenance yet
	if g.UrlName == "" {
		g.Name = raw.Name
		g.Link = raw.Link
		g.UrlName = raw.UrlName
		g.Created = timezone.FromEpochMillis(raw.Created)
		g.Organizer, err = organizer(ctx, raw.Organizer.MemberID)
		if err != nil {
			return nil, fmt.Errorf("resolve organizer of %s: %w", raw.UrlName, err)
		}
	}

	g.Rating = raw.Rating
	g.Description = raw.Description
	g.Location = location
	g.Category = category
	g.Topics = topics

	err = r.store.SaveGroup(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("save group %s: %w", raw.UrlName, err)
	}
	return g, nil
}

func (r *Resolver) eventFromRow(ctx context.Context, row db.Event, created bool) (*Event, error) {
	e := &Event{
		Identity:    newIdentity(row.ID, created),
		SourceID:    row.SourceID,
		Name:        row.Name,
		Description: row.Description,
		Headcount:   row.Headcount,
		Status:      row.Status,
		Url:         row.EventUrl,
		Created:     fromNullTime(row.Created),
		Updated:     fromNullTime(row.Updated),
		Time:        fromNullTime(row.Time),
		UtcOffset:   row.UtcOffset.Int64,
		LocalTime:   fromNullTime(row.LocalTime),

		synced: row.Updated.Valid,
	}
	if row.RatingCount.Valid || row.RatingAverage.Valid {
		e.Rating = &Rating{Count: row.RatingCount.Float64, Average: row.RatingAverage.Float64}
	}
	if row.LocationID.Valid {
		location, err := r.locationByID(ctx, row.LocationID.Int64)
		if err != nil {
			return nil, err
		}
		e.Location = location
	}
	return e, nil
}

// Event resolves an event record and applies it. Descriptive and time fields
// are only rewritten when the record's updated timestamp differs from the
// stored one, headcount and rating are always refreshed. It reports whether
// the descriptive fields were rewritten.
func (r *Resolver) Event(ctx context.Context, raw meetup.Event, group *Group) (*Event, bool, error) {
	e, ok := r.events[raw.ID]
	if !ok {
		row, created, err := r.store.FindOrCreateEvent(ctx, raw.ID, group.ID)
		if err != nil {
			return nil, false, fmt.Errorf("resolve event %s: %w", raw.ID, err)
		}
		e, err = r.eventFromRow(ctx, row, created)
		if err != nil {
			return nil, false, fmt.Errorf("resolve event %s: %w", raw.ID, err)
		}
		r.events[raw.ID] = e
		r.stats.record(ctx, KindEvent, e.State)
	}
	e.Group = group

	changed := !e.synced || timezone.ToEpochMillis(e.Updated) != raw.Updated
	if changed {
		e.synced = true
		e.Name = raw.Name
		e.Description = raw.Description
		e.Time = timezone.FromEpochMillis(raw.Time)
		e.UtcOffset = raw.UtcOffset
		e.LocalTime = timezone.LocalWallClock(raw.Time, raw.UtcOffset)
		e.Created = timezone.FromEpochMillis(raw.Created)
		e.Updated = timezone.FromEpochMillis(raw.Updated)
		e.Status = raw.Status
		e.Url = raw.EventUrl
		if raw.Venue != nil {
			location, err := r.optionalLocation(ctx, raw.Venue.Country, raw.Venue.City)
			if err != nil {
				return nil, false, err
			}
			e.Location = location
		}
	}

	e.Headcount = raw.Headcount
	e.Rating = nil
	if raw.Rating != nil {
		e.Rating = &Rating{Count: raw.Rating.Count, Average: raw.Rating.Average}
	}

	var err error
	if changed {
		err = r.store.SaveEvent(ctx, e)
		r.stats.EventsUpdated++
	} else {
		err = r.store.SaveEventCounters(ctx, e)
		r.stats.EventsUnchanged++
	}
	if err != nil {
		return nil, false, fmt.Errorf("save event %s: %w", raw.ID, err)
	}
	return e, changed, nil
}

// Response resolves an answer to an event. Answers are written once and
// never changed afterwards.
func (r *Resolver) Response(ctx context.Context, raw meetup.RSVP, event *Event, member *Member) (*Response, error) {
	if resp, ok := r.responses[raw.ID]; ok {
		return resp, nil
	}

	row, created, err := r.store.FindOrCreateResponse(ctx, raw.ID, event.ID, member.ID, raw.Response)
	if err != nil {
		return nil, fmt.Errorf("resolve response %d: %w", raw.ID, err)
	}
	resp := &Response{
		Identity: newIdentity(row.ID, created),
		SourceID: row.SourceID,
		Value:    row.Response,
		Event:    event,
		Member:   member,
	}
	r.responses[raw.ID] = resp
	r.stats.record(ctx, KindResponse, resp.State)
	return resp, nil
}

// StoredResponses loads the answers already stored for an event.
func (r *Resolver) StoredResponses(ctx context.Context, event *Event) ([]*Response, error) {
	rows, err := r.store.EventResponses(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	out := make([]*Response, 0, len(rows))
	for _, row := range rows {
		if resp, ok := r.responses[row.SourceID]; ok {
			out = append(out, resp)
			continue
		}
		member, err := r.memberByID(ctx, row.MemberID)
		if err != nil {
			return nil, err
		}
		resp := &Response{
			Identity: newIdentity(row.ID, false),
			SourceID: row.SourceID,
			Value:    row.Response,
			Event:    event,
			Member:   member,
		}
		r.responses[row.SourceID] = resp
		out = append(out, resp)
	}
	return out, nil
}
