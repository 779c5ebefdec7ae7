package meetup

// SentinelRSVPID marks an RSVP record that does not describe a real answer.
const SentinelRSVPID int64 = -1

type Topic struct {
	ID     int64  `json:"id"`
	UrlKey string `json:"urlkey"`
	Name   string `json:"name"`
}

type Category struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortname"`
}

// MemberRef is how other records point at a member.
type MemberRef struct {
	MemberID int64  `json:"member_id"`
	Name     string `json:"name"`
}

type Member struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Link    string  `json:"link"`
	Joined  int64   `json:"joined"`
	Status  string  `json:"status"`
	Country string  `json:"country"`
	City    string  `json:"city"`
	Topics  []Topic `json:"topics"`
}

type Group struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Link        string    `json:"link"`
	UrlName     string    `json:"urlname"`
	Description string    `json:"description"`
	Rating      float64   `json:"rating"`
	Created     int64     `json:"created"`
	Country     string    `json:"country"`
	City        string    `json:"city"`
	Organizer   MemberRef `json:"organizer"`
	Category    *Category `json:"category"`
	Topics      []Topic   `json:"topics"`
}

type Venue struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	City    string `json:"city"`
}

type Rating struct {
	Count   float64 `json:"count"`
	Average float64 `json:"average"`
}

type Event struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Headcount   int64   `json:"headcount"`
	Status      string  `json:"status"`
	EventUrl    string  `json:"event_url"`
	Created     int64   `json:"created"`
	Updated     int64   `json:"updated"`
	Time        int64   `json:"time"`
	UtcOffset   int64   `json:"utc_offset"`
	Venue       *Venue  `json:"venue"`
	Rating      *Rating `json:"rating"`
}

type RSVPEvent struct {
	ID string `json:"id"`
}

type RSVP struct {
	ID       int64     `json:"rsvp_id"`
	Response string    `json:"response"`
	Member   MemberRef `json:"member"`
	Event    RSVPEvent `json:"event"`
}

type errorBody struct {
	Code    string `json:"code"`
	Problem string `json:"problem"`
	Details string `json:"details"`
}

func (b errorBody) err() error {
	if b.Code == "" {
		return nil
	}
	return &RemoteProtocolError{Code: b.Code, Problem: b.Problem, Details: b.Details}
}

type meta struct {
	Next       string `json:"next"`
	TotalCount int    `json:"total_count"`
}

type envelope[T any] struct {
	errorBody
	Results []T  `json:"results"`
	Meta    meta `json:"meta"`
}

type memberEnvelope struct {
	errorBody
	Member
}
