package ingest

import (
	"context"
	"errors"
	"sync"
	"testing"

	"eventizer/lib/scrapers/meetup"
	"eventizer/lib/testutil"
	"eventizer/services/ingest/db"

	"github.com/stretchr/testify/require"
)

func setupStore(t testing.TB) (*Store, func()) {
	res, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "ingest",
		DbSchema: db.Schema,
	})
	return NewStore(res.DB), cleanup
}

func topicRecord(urlkey, name string) meetup.Topic {
	return meetup.Topic{UrlKey: urlkey, Name: name}
}

func TestFindOrCreate(t *testing.T) {
	store, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	location, created, err := store.FindOrCreateLocation(ctx, "ES", "Madrid")
	if err != nil {
		t.Fatal(err)
	}
	require.True(t, created)

	again, created, err := store.FindOrCreateLocation(ctx, "ES", "Madrid")
	if err != nil {
		t.Fatal(err)
	}
	require.False(t, created)
	require.Equal(t, location, again)

	other, created, err := store.FindOrCreateLocation(ctx, "ES", "madrid")
	if err != nil {
		t.Fatal(err)
	}
	require.True(t, created)
	require.NotEqual(t, location.ID, other.ID)

	topic, created, err := store.FindOrCreateTopic(ctx, "go", "Go")
	if err != nil {
		t.Fatal(err)
	}
	require.True(t, created)
	// the name given on a later lookup is not applied
	topic2, created, err := store.FindOrCreateTopic(ctx, "go", "Golang")
	if err != nil {
		t.Fatal(err)
	}
	require.False(t, created)
	require.Equal(t, topic, topic2)

	member, created, err := store.FindOrCreateMember(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	require.True(t, created)
	require.Equal(t, int64(10), member.SourceID)
	require.Empty(t, member.Link)
	require.False(t, member.Joined.Valid)
}

func TestFindOrCreateConcurrent(t *testing.T) {
	store, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	const workers = 8
	ids := make([]int64, workers)
	created := make([]bool, workers)
	errs := make([]error, workers)

	wg := sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			row, ok, err := store.FindOrCreateTopic(ctx, "sqlite", "SQLite")
			ids[i], created[i], errs[i] = row.ID, ok, err
		}(i)
	}
	wg.Wait()

	creators := 0
	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatal(errs[i])
		}
		require.Equal(t, ids[0], ids[i])
		if created[i] {
			creators++
		}
	}
	require.Equal(t, 1, creators)
}

func TestNotStored(t *testing.T) {
	store, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	_, err := store.GroupByUrlName(ctx, "nobody")
	require.True(t, errors.Is(err, ErrNotStored))

	_, err = store.LocationByID(ctx, 42)
	require.True(t, errors.Is(err, ErrNotStored))

	_, err = store.MemberByID(ctx, 42)
	require.True(t, errors.Is(err, ErrNotStored))
}

func TestSaveMemberReplacesTopics(t *testing.T) {
	store, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	resolver := NewResolver(store)
	first, err := resolver.Topic(ctx, topicRecord("go", "Go"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := resolver.Topic(ctx, topicRecord("sqlite", "SQLite"))
	if err != nil {
		t.Fatal(err)
	}

	row, _, err := store.FindOrCreateMember(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	member := &Member{
		Identity: newIdentity(row.ID, true),
		SourceID: 10,
		Name:     "Ada",
		Topics:   []*Topic{first, second},
	}
	err = store.SaveMember(ctx, member)
	if err != nil {
		t.Fatal(err)
	}

	member.Topics = []*Topic{second}
	err = store.SaveMember(ctx, member)
	if err != nil {
		t.Fatal(err)
	}

	topics, err := store.MemberTopics(ctx, member.ID)
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, topics, 1)
	require.Equal(t, "sqlite", topics[0].Urlkey)

	stored, err := store.MemberByID(ctx, member.ID)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "Ada", stored.Name)
	require.False(t, stored.LocationID.Valid)
}

func TestTopicRename(t *testing.T) {
	store, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	_, err := NewResolver(store).Topic(ctx, topicRecord("go", "Go"))
	if err != nil {
		t.Fatal(err)
	}

	resolver := NewResolver(store)
	topic, err := resolver.Topic(ctx, topicRecord("go", "Golang"))
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, Existing, topic.State)
	require.Equal(t, "Golang", topic.Name)

	row, _, err := store.FindOrCreateTopic(ctx, "go", "")
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "Golang", row.Name)
	require.Equal(t, 1, resolver.Stats().Existing[KindTopic])
}
