package meetup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"eventizer/lib/chrono"
	"eventizer/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"golang.org/x/time/rate"
)

var tracer = otel.Tracer("scrapers/meetup")

const (
	DefaultBaseUrl   = "https://api.meetup.com/2/"
	DefaultPageDelay = 2 * time.Second
	UserAgent        = "eventizer/0.0.1"
)

var DefaultEventStatuses = []string{"upcoming", "past"}

type ClientOptions struct {
	ApiKey string
	// defaults to DefaultBaseUrl
	BaseUrl string
	// pause before every page request, defaults to DefaultPageDelay,
	// a negative value disables it
	PageDelay time.Duration
	// caps outgoing requests per second, zero leaves them uncapped
	RequestsPerSecond float64
	// defaults to DefaultEventStatuses
	EventStatuses []string
	// defaults to the system clock
	Clock chrono.Clock
	// called on the underlying resty client once it is configured
	Instrument func(*resty.Client)
}

// Client talks to the Meetup v2 REST API.
type Client struct {
	http      *resty.Client
	apiKey    string
	pageDelay time.Duration
	statuses  []string
	clock     chrono.Clock
	limiter   *RateLimiter
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.ApiKey == "" {
		return nil, fmt.Errorf("meetup: an api key is required")
	}
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	_, err := url.Parse(baseUrl)
	if err != nil {
		return nil, fmt.Errorf("meetup: invalid base url: %w", err)
	}
	pageDelay := opts.PageDelay
	if pageDelay == 0 {
		pageDelay = DefaultPageDelay
	} else if pageDelay < 0 {
		pageDelay = 0
	}
	statuses := opts.EventStatuses
	if len(statuses) == 0 {
		statuses = DefaultEventStatuses
	}
	clock := opts.Clock
	if clock == nil {
		clock = chrono.NewStandardClock()
	}

	httpClient := resty.New()
	// resty inserts a "/" between the base url and relative paths
	httpClient.SetBaseURL(strings.TrimRight(baseUrl, "/"))
	httpClient.SetHeader("User-Agent", UserAgent)
	httpClient.SetTimeout(time.Minute)

	if opts.RequestsPerSecond > 0 {
		rateLimiter := rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
		httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return rateLimiter.Wait(req.Context())
		})
	}

	telemetry.InstrumentResty(httpClient, "scrapers/meetup/http")
	if opts.Instrument != nil {
		opts.Instrument(httpClient)
	}

	return &Client{
		http:      httpClient,
		apiKey:    opts.ApiKey,
		pageDelay: pageDelay,
		statuses:  statuses,
		clock:     clock,
		limiter:   NewRateLimiter(clock),
	}, nil
}

func (c *Client) signed(params url.Values) url.Values {
	out := url.Values{}
	for k, v := range params {
		out[k] = v
	}
	out.Set("key", c.apiKey)
	out.Set("sign", "true")
	return out
}

// operation names never carry the query string, it holds the api key
func opName(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "GET"
	}
	return "GET " + u.Path
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (*resty.Response, error) {
	err := c.limiter.Wait(ctx)
	if err != nil {
		return nil, err
	}

	req := c.http.R().SetContext(ctx)
	if params != nil {
		req.SetQueryParamsFromValues(params)
	}
	res, err := req.Get(endpoint)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			if u, parseErr := url.Parse(urlErr.URL); parseErr == nil {
				urlErr.URL = telemetry.RedactUrl(u)
			}
		}
		return nil, &TransportError{Op: opName(endpoint), Err: err}
	}
	c.limiter.Observe(res.Header())
	return res, nil
}

func decode(res *resty.Response, out any) error {
	err := json.Unmarshal(res.Body(), out)
	if err != nil {
		return &RemoteProtocolError{
			Code:    malformedResponseCode,
			Problem: fmt.Sprintf("undecodable response (status %d)", res.StatusCode()),
			Details: err.Error(),
		}
	}
	return nil
}

func fetchPage[T any](ctx context.Context, c *Client, endpoint string, params url.Values) (envelope[T], error) {
	var env envelope[T]
	res, err := c.get(ctx, endpoint, params)
	if err != nil {
		return env, err
	}
	err = decode(res, &env)
	if err != nil {
		return env, err
	}
	return env, env.err()
}

func newCursor[T any](c *Client, endpoint string, params url.Values) *Cursor[T] {
	return NewCursor(func(ctx context.Context, next string) (Page[T], error) {
		var env envelope[T]
		var err error
		if next == "" {
			env, err = fetchPage[T](ctx, c, endpoint, c.signed(params))
		} else {
			// continuation links already carry every parameter
			env, err = fetchPage[T](ctx, c, next, nil)
		}
		if err != nil {
			return Page[T]{}, err
		}
		return Page[T]{Results: env.Results, Next: env.Meta.Next}, nil
	}, c.clock, c.pageDelay)
}
