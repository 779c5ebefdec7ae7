package ingest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"eventizer/lib/timezone"
	"eventizer/services/ingest/db"
)

// ErrNotStored is returned when a lookup by a storage key finds nothing.
var ErrNotStored = errors.New("not stored")

// Store is the storage gateway of the entity graph.
type Store struct {
	db  *sql.DB
	qry *db.Queries
}

func NewStore(database *sql.DB) *Store {
	return &Store{
		db:  database,
		qry: db.New(database),
	}
}

// findOrCreate inserts a row keyed by a unique constraint, doing nothing on
// conflict, then reads the row back. The unique constraint makes concurrent
// calls with the same key agree on a single row.
func findOrCreate[T any](insert func() (int64, error), get func() (T, error)) (T, bool, error) {
	inserted, err := insert()
	if err != nil {
		var zero T
		return zero, false, err
	}
	row, err := get()
	if err != nil {
		return row, false, err
	}
	return row, inserted > 0, nil
}

func notStored(err error, kind string, key any) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", kind, key, ErrNotStored)
	}
	return err
}

func (s *Store) FindOrCreateLocation(ctx context.Context, country, city string) (db.Location, bool, error) {
	return findOrCreate(
		func() (int64, error) {
			return s.qry.InsertLocation(ctx, db.InsertLocationParams{Country: country, City: city})
		},
		func() (db.Location, error) {
			return s.qry.GetLocation(ctx, db.GetLocationParams{Country: country, City: city})
		},
	)
}

func (s *Store) LocationByID(ctx context.Context, id int64) (db.Location, error) {
	row, err := s.qry.GetLocationByID(ctx, id)
	return row, notStored(err, "location", id)
}

func (s *Store) FindOrCreateTopic(ctx context.Context, urlkey, name string) (db.Topic, bool, error) {
	return findOrCreate(
		func() (int64, error) {
			return s.qry.InsertTopic(ctx, db.InsertTopicParams{Urlkey: urlkey, Name: name})
		},
		func() (db.Topic, error) {
			return s.qry.GetTopic(ctx, urlkey)
		},
	)
}

func (s *Store) RenameTopic(ctx context.Context, id int64, name string) error {
	return s.qry.UpdateTopicName(ctx, db.UpdateTopicNameParams{ID: id, Name: name})
}

func (s *Store) FindOrCreateCategory(ctx context.Context, shortname, name string) (db.Category, bool, error) {
	return findOrCreate(
		func() (int64, error) {
			return s.qry.InsertCategory(ctx, db.InsertCategoryParams{Shortname: shortname, Name: name})
		},
		func() (db.Category, error) {
			return s.qry.GetCategory(ctx, shortname)
		},
	)
}

func (s *Store) CategoryByID(ctx context.Context, id int64) (db.Category, error) {
	row, err := s.qry.GetCategoryByID(ctx, id)
	return row, notStored(err, "category", id)
}

func (s *Store) RenameCategory(ctx context.Context, id int64, name string) error {
	return s.qry.UpdateCategoryName(ctx, db.UpdateCategoryNameParams{ID: id, Name: name})
}

func (s *Store) FindOrCreateMember(ctx context.Context, sourceID int64) (db.Member, bool, error) {
	return findOrCreate(
		func() (int64, error) {
			return s.qry.InsertMember(ctx, sourceID)
		},
		func() (db.Member, error) {
			return s.qry.GetMember(ctx, sourceID)
		},
	)
}

func (s *Store) MemberByID(ctx context.Context, id int64) (db.Member, error) {
	row, err := s.qry.GetMemberByID(ctx, id)
	return row, notStored(err, "member", id)
}

func (s *Store) FindOrCreateGroup(ctx context.Context, sourceID int64) (db.MeetupGroup, bool, error) {
	return findOrCreate(
		func() (int64, error) {
			return s.qry.InsertGroup(ctx, sourceID)
		},
		func() (db.MeetupGroup, error) {
			return s.qry.GetGroup(ctx, sourceID)
		},
	)
}

// GroupByUrlName finds a stored group by its url name, ignoring case.
func (s *Store) GroupByUrlName(ctx context.Context, urlName string) (db.MeetupGroup, error) {
	row, err := s.qry.GetGroupByUrlname(ctx, urlName)
	return row, notStored(err, "group", urlName)
}

func (s *Store) FindOrCreateEvent(ctx context.Context, sourceID string, groupID int64) (db.Event, bool, error) {
	return findOrCreate(
		func() (int64, error) {
			return s.qry.InsertEvent(ctx, db.InsertEventParams{SourceID: sourceID, GroupID: groupID})
		},
		func() (db.Event, error) {
			return s.qry.GetEvent(ctx, sourceID)
		},
	)
}

func (s *Store) FindOrCreateResponse(ctx context.Context, sourceID, eventID, memberID int64, value string) (db.Response, bool, error) {
	return findOrCreate(
		func() (int64, error) {
			return s.qry.InsertResponse(ctx, db.InsertResponseParams{
				SourceID: sourceID,
				EventID:  eventID,
				MemberID: memberID,
				Response: value,
			})
		},
		func() (db.Response, error) {
			return s.qry.GetResponse(ctx, sourceID)
		},
	)
}

func (s *Store) EventResponses(ctx context.Context, eventID int64) ([]db.Response, error) {
	return s.qry.ListEventResponses(ctx, eventID)
}

func (s *Store) GroupEvents(ctx context.Context, groupID int64) ([]db.Event, error) {
	return s.qry.ListGroupEvents(ctx, groupID)
}

func (s *Store) GroupMembers(ctx context.Context, groupID int64) ([]db.Member, error) {
	return s.qry.ListGroupMembers(ctx, groupID)
}

func (s *Store) MemberTopics(ctx context.Context, memberID int64) ([]db.Topic, error) {
	return s.qry.ListMemberTopics(ctx, memberID)
}

func (s *Store) GroupTopics(ctx context.Context, groupID int64) ([]db.Topic, error) {
	return s.qry.ListGroupTopics(ctx, groupID)
}

func nullTime(t time.Time) sql.NullInt64 {
	if t.IsZero() {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: timezone.ToEpochMillis(t), Valid: true}
}

func fromNullTime(v sql.NullInt64) time.Time {
	if !v.Valid {
		return time.Time{}
	}
	return timezone.FromEpochMillis(v.Int64)
}

func (i Identity) nullID() sql.NullInt64 {
	if !i.Resolved() {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: i.ID, Valid: true}
}

func locationID(l *Location) sql.NullInt64 {
	if l == nil {
		return sql.NullInt64{}
	}
	return l.nullID()
}

func memberID(m *Member) sql.NullInt64 {
	if m == nil {
		return sql.NullInt64{}
	}
	return m.nullID()
}

func categoryID(c *Category) sql.NullInt64 {
	if c == nil {
		return sql.NullInt64{}
	}
	return c.nullID()
}

func topicIDs(topics []*Topic) []int64 {
	ids := make([]int64, len(topics))
	for i, t := range topics {
		ids[i] = t.ID
	}
	return ids
}

func (s *Store) inTx(ctx context.Context, fn func(txqry *db.Queries) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = fn(s.qry.WithTx(tx))
	if err != nil {
		return err
	}
	return tx.Commit()
}

// SaveMember writes the member's attributes and replaces its topic set.
func (s *Store) SaveMember(ctx context.Context, m *Member) error {
	return s.inTx(ctx, func(txqry *db.Queries) error {
		err := txqry.UpdateMember(ctx, db.UpdateMemberParams{
			ID:         m.ID,
			Name:       m.Name,
			Link:       m.Link,
			Joined:     sql.NullInt64{Int64: timezone.ToEpochMillis(m.Joined), Valid: m.provenance},
			Status:     m.Status,
			LocationID: locationID(m.Location),
		})
		if err != nil {
			return err
		}
		err = txqry.DeleteMemberTopics(ctx, m.ID)
		if err != nil {
			return err
		}
		for _, id := range topicIDs(m.Topics) {
			err = txqry.AddMemberTopic(ctx, db.AddMemberTopicParams{MemberID: m.ID, TopicID: id})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// SaveGroup writes the group's attributes and replaces its topic set.
func (s *Store) SaveGroup(ctx context.Context, g *Group) error {
	return s.inTx(ctx, func(txqry *db.Queries) error {
		err := txqry.UpdateGroup(ctx, db.UpdateGroupParams{
			ID:          g.ID,
			Name:        g.Name,
			Link:        g.Link,
			Urlname:     g.UrlName,
			Description: g.Description,
			Rating:      g.Rating,
			Created:     nullTime(g.Created),
			OrganizerID: memberID(g.Organizer),
			LocationID:  locationID(g.Location),
			CategoryID:  categoryID(g.Category),
		})
		if err != nil {
			return err
		}
		err = txqry.DeleteGroupTopics(ctx, g.ID)
		if err != nil {
			return err
		}
		for _, id := range topicIDs(g.Topics) {
			err = txqry.AddGroupTopic(ctx, db.AddGroupTopicParams{GroupID: g.ID, TopicID: id})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// SetGroupMembers replaces the membership of a group.
func (s *Store) SetGroupMembers(ctx context.Context, groupID int64, members []*Member) error {
	return s.inTx(ctx, func(txqry *db.Queries) error {
		err := txqry.DeleteGroupMembers(ctx, groupID)
		if err != nil {
			return err
		}
		for _, m := range members {
			err = txqry.AddGroupMember(ctx, db.AddGroupMemberParams{GroupID: groupID, MemberID: m.ID})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func ratingColumns(r *Rating) (sql.NullFloat64, sql.NullFloat64) {
	if r == nil {
		return sql.NullFloat64{}, sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: r.Count, Valid: true},
		sql.NullFloat64{Float64: r.Average, Valid: true}
}

// SaveEvent writes every attribute of the event.
func (s *Store) SaveEvent(ctx context.Context, e *Event) error {
	ratingCount, ratingAverage := ratingColumns(e.Rating)
	return s.qry.UpdateEvent(ctx, db.UpdateEventParams{
		ID:            e.ID,
		GroupID:       e.Group.ID,
		Name:          e.Name,
		Description:   e.Description,
		Headcount:     e.Headcount,
		Status:        e.Status,
		RatingCount:   ratingCount,
		RatingAverage: ratingAverage,
		EventUrl:      e.Url,
		Created:       nullTime(e.Created),
		Updated:       sql.NullInt64{Int64: timezone.ToEpochMillis(e.Updated), Valid: e.synced},
		Time:          nullTime(e.Time),
		UtcOffset:     sql.NullInt64{Int64: e.UtcOffset, Valid: !e.Time.IsZero()},
		LocalTime:     nullTime(e.LocalTime),
		LocationID:    locationID(e.Location),
	})
}

// SaveEventCounters writes only the headcount and rating of the event.
func (s *Store) SaveEventCounters(ctx context.Context, e *Event) error {
	ratingCount, ratingAverage := ratingColumns(e.Rating)
	return s.qry.UpdateEventCounters(ctx, db.UpdateEventCountersParams{
		ID:            e.ID,
		Headcount:     e.Headcount,
		RatingCount:   ratingCount,
		RatingAverage: ratingAverage,
	})
}

// DeleteGroup removes a group by url name along with its events and their
// responses. It reports whether a group was removed.
func (s *Store) DeleteGroup(ctx context.Context, urlName string) (bool, error) {
	group, err := s.GroupByUrlName(ctx, urlName)
	if errors.Is(err, ErrNotStored) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	deleted, err := s.qry.DeleteGroup(ctx, group.ID)
	return deleted > 0, err
}

// DeleteEvent removes an event by source id along with its responses.
func (s *Store) DeleteEvent(ctx context.Context, sourceID string) (bool, error) {
	event, err := s.qry.GetEvent(ctx, sourceID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	deleted, err := s.qry.DeleteEvent(ctx, event.ID)
	return deleted > 0, err
}

type Counts = db.CountAllRow

func (s *Store) Counts(ctx context.Context) (Counts, error) {
	return s.qry.CountAll(ctx)
}

type GroupSummary = db.ListGroupSummariesRow

func (s *Store) GroupSummaries(ctx context.Context) ([]GroupSummary, error) {
	return s.qry.ListGroupSummaries(ctx)
}
