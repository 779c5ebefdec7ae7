package commands

import (
	"context"
	"fmt"
	"testing"

	"eventizer/services/ingest"

	"github.com/stretchr/testify/require"
)

type fakeIngester struct {
	failing map[string]bool
	calls   []string
	cancel  func()
}

func (f *fakeIngester) Ingest(ctx context.Context, urlName string) (ingest.Result, error) {
	f.calls = append(f.calls, urlName)
	if f.failing[urlName] {
		if f.cancel != nil {
			f.cancel()
		}
		return ingest.Result{}, fmt.Errorf("group %s not found", urlName)
	}
	return ingest.Result{Group: &ingest.Group{UrlName: urlName}}, nil
}

func TestFetchGroups(t *testing.T) {
	ingester := &fakeIngester{}
	var reported []string
	err := fetchGroups(context.Background(), ingester, []string{"a", "b"}, func(r ingest.Result) {
		reported = append(reported, r.Group.UrlName)
	})
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, []string{"a", "b"}, reported)
}

func TestFetchGroupsReportsFailures(t *testing.T) {
	ingester := &fakeIngester{failing: map[string]bool{"a": true}}
	var reported []string
	err := fetchGroups(context.Background(), ingester, []string{"a", "b", "c"}, func(r ingest.Result) {
		reported = append(reported, r.Group.UrlName)
	})
	require.EqualError(t, err, "1 of 3 groups failed to ingest")
	// a failure does not stop the remaining groups
	require.Equal(t, []string{"a", "b", "c"}, ingester.calls)
	require.Equal(t, []string{"b", "c"}, reported)
}

func TestFetchGroupsStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ingester := &fakeIngester{failing: map[string]bool{"a": true}, cancel: cancel}

	err := fetchGroups(ctx, ingester, []string{"a", "b"}, func(ingest.Result) {})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, []string{"a"}, ingester.calls)
}
