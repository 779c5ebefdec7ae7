package meetup

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Group looks up a single group by its url name.
func (c *Client) Group(ctx context.Context, urlName string) (Group, error) {
	ctx, span := tracer.Start(ctx, "Group")
	defer span.End()
	span.SetAttributes(attribute.String("group", urlName))

	// asking for two results lets an ambiguous name show up in total_count
	env, err := fetchPage[Group](ctx, c, "groups", c.signed(url.Values{
		"group_urlname": {urlName},
		"page":          {"2"},
	}))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch group")
		return Group{}, err
	}
	if env.Meta.TotalCount != 1 || len(env.Results) == 0 {
		err = &NotFoundError{Kind: "group", Key: urlName}
		span.RecordError(err)
		span.SetStatus(codes.Error, "group not found")
		return Group{}, err
	}
	return env.Results[0], nil
}

// Member looks up a single member by their source id.
func (c *Client) Member(ctx context.Context, id int64) (Member, error) {
	ctx, span := tracer.Start(ctx, "Member")
	defer span.End()
	key := strconv.FormatInt(id, 10)
	span.SetAttributes(attribute.String("member", key))

	res, err := c.get(ctx, "member/"+key, c.signed(nil))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch member")
		return Member{}, err
	}
	if strings.TrimSpace(res.String()) == "not found" {
		err = &NotFoundError{Kind: "member", Key: key}
		span.RecordError(err)
		span.SetStatus(codes.Error, "member not found")
		return Member{}, err
	}

	var env memberEnvelope
	err = decode(res, &env)
	if err == nil {
		err = env.err()
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to decode member")
		return Member{}, err
	}
	return env.Member, nil
}

// Members lists every member of a group.
func (c *Client) Members(groupUrlName string) *Cursor[Member] {
	return newCursor[Member](c, "members", url.Values{
		"group_urlname": {groupUrlName},
	})
}

// Events lists the events of a group matching the client's status filter,
// oldest first.
func (c *Client) Events(groupUrlName string) *Cursor[Event] {
	return newCursor[Event](c, "events?"+statusFilter(c.statuses), url.Values{
		"group_urlname": {groupUrlName},
		"order":         {"time"},
	})
}

// RSVPs lists every answer given to an event.
func (c *Client) RSVPs(eventID string) *Cursor[RSVP] {
	return newCursor[RSVP](c, "rsvps", url.Values{
		"event_id": {eventID},
	})
}

// statusFilter renders the status query parameter. Each status is escaped on
// its own, the separating commas are not.
func statusFilter(statuses []string) string {
	escaped := make([]string, len(statuses))
	for i, s := range statuses {
		escaped[i] = url.QueryEscape(s)
	}
	return fmt.Sprintf("status=%s", strings.Join(escaped, ","))
}
