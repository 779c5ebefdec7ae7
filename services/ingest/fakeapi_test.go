package ingest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"eventizer/lib/chrono"
	"eventizer/lib/scrapers/meetup"
	"eventizer/lib/testutil"
	"eventizer/services/ingest/db"
)

// fakeAPI serves a single group graph in the shape of the Meetup v2 API.
type fakeAPI struct {
	mutex sync.Mutex

	group      meetup.Group
	groupTotal int
	// members listed for the group
	members []meetup.Member
	// members that can only be looked up one by one
	hidden []meetup.Member
	events []meetup.Event
	rsvps  map[string][]meetup.RSVP

	hits map[string]int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		groupTotal: 1,
		rsvps:      map[string][]meetup.RSVP{},
		hits:       map[string]int{},
	}
}

func (f *fakeAPI) update(fn func(f *fakeAPI)) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	fn(f)
}

func (f *fakeAPI) hitCount(prefix string) int {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	total := 0
	for path, n := range f.hits {
		if strings.HasPrefix(path, prefix) {
			total += n
		}
	}
	return total
}

func writePage[T any](w http.ResponseWriter, results []T, total int) {
	if results == nil {
		results = []T{}
	}
	json.NewEncoder(w).Encode(map[string]any{
		"results": results,
		"meta":    map[string]any{"next": "", "total_count": total},
	})
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	path := strings.TrimPrefix(req.URL.Path, "/2/")
	f.hits[path]++
	query := req.URL.Query()

	switch {
	case path == "groups":
		var results []meetup.Group
		if f.groupTotal > 0 && strings.EqualFold(query.Get("group_urlname"), f.group.UrlName) {
			results = append(results, f.group)
		}
		writePage(w, results, f.groupTotal)
	case path == "members":
		writePage(w, f.members, len(f.members))
	case strings.HasPrefix(path, "member/"):
		id, _ := strconv.ParseInt(strings.TrimPrefix(path, "member/"), 10, 64)
		for _, m := range append(append([]meetup.Member{}, f.members...), f.hidden...) {
			if m.ID == id {
				json.NewEncoder(w).Encode(m)
				return
			}
		}
		fmt.Fprint(w, "not found")
	case path == "events":
		writePage(w, f.events, len(f.events))
	case path == "rsvps":
		rsvps := f.rsvps[query.Get("event_id")]
		writePage(w, rsvps, len(rsvps))
	default:
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"code":"not_found","problem":"unknown endpoint"}`)
	}
}

const (
	scenarioStart  int64 = 1_426_000_000_000
	scenarioOffset int64 = 3_600_000
)

// scenario is a group organized by member 10 with a single event that
// member 10 answered.
func scenario() *fakeAPI {
	api := newFakeAPI()
	api.group = meetup.Group{
		ID:          7,
		Name:        "SQLite Users",
		Link:        "http://www.meetup.com/sqlite-users/",
		UrlName:     "sqlite-users",
		Description: "all things sqlite",
		Rating:      4.5,
		Created:     1_300_000_000_000,
		Country:     "es",
		City:        "Madrid",
		Organizer:   meetup.MemberRef{MemberID: 10, Name: "Ada"},
		Category:    &meetup.Category{ID: 34, Name: "Tech", ShortName: "tech"},
		Topics: []meetup.Topic{
			{ID: 1, UrlKey: "sqlite", Name: "SQLite"},
			{ID: 2, UrlKey: "databases", Name: "Databases"},
		},
	}
	api.members = []meetup.Member{{
		ID:      10,
		Name:    "Ada",
		Link:    "http://www.meetup.com/members/10",
		Joined:  1_300_000_000_000,
		Status:  "active",
		Country: "ES",
		City:    "Madrid",
		Topics:  []meetup.Topic{{ID: 1, UrlKey: "sqlite", Name: "SQLite"}},
	}}
	api.events = []meetup.Event{{
		ID:          "e1",
		Name:        "Monthly meetup",
		Description: "talks",
		Headcount:   3,
		Status:      "past",
		EventUrl:    "http://www.meetup.com/sqlite-users/events/e1/",
		Created:     1_400_000_000_000,
		Updated:     100,
		Time:        scenarioStart,
		UtcOffset:   scenarioOffset,
		Venue:       &meetup.Venue{ID: 1, Name: "Office", Country: "es", City: "Madrid"},
		Rating:      &meetup.Rating{Count: 2, Average: 4},
	}}
	api.rsvps["e1"] = []meetup.RSVP{{
		ID:       5,
		Response: "yes",
		Member:   meetup.MemberRef{MemberID: 10, Name: "Ada"},
		Event:    meetup.RSVPEvent{ID: "e1"},
	}}
	return api
}

type testEnv struct {
	api     *fakeAPI
	clock   *chrono.FakeClock
	service *Service
	store   *Store
	qry     *db.Queries
}

func setupTest(t testing.TB, api *fakeAPI, options Options) (testEnv, func()) {
	res, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "ingest",
		DbSchema: db.Schema,
	})

	server := httptest.NewServer(api)
	clock := chrono.NewFakeClock(time.Date(2015, 3, 1, 0, 0, 0, 0, time.UTC))
	client, err := meetup.NewClient(meetup.ClientOptions{
		ApiKey:  "test-key",
		BaseUrl: server.URL + "/2/",
		Clock:   clock,
	})
	if err != nil {
		t.Fatal(err)
	}

	service := NewService(res.DB, client, clock, options)
	return testEnv{
			api:     api,
			clock:   clock,
			service: service,
			store:   service.Store(),
			qry:     db.New(res.DB),
		}, func() {
			server.Close()
			cleanup()
		}
}
