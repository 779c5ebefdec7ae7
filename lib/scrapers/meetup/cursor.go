package meetup

import (
	"context"
	"time"

	"eventizer/lib/chrono"
)

// Page is one page of a listing. An empty Next means it was the last page.
type Page[T any] struct {
	Results []T
	Next    string
}

// PageFetcher retrieves a page. next is empty for the first page, otherwise
// it is the continuation link reported by the previous page.
type PageFetcher[T any] func(ctx context.Context, next string) (Page[T], error)

// Cursor iterates over every record of a paged listing, requesting pages
// lazily and pausing before each one.
//
//	for cursor.Next(ctx) {
//		record := cursor.Record()
//	}
//	if err := cursor.Err(); err != nil { ... }
type Cursor[T any] struct {
	fetch PageFetcher[T]
	clock chrono.Clock
	delay time.Duration

	buffer  []T
	current T
	next    string
	more    bool
	err     error
}

func NewCursor[T any](fetch PageFetcher[T], clock chrono.Clock, delay time.Duration) *Cursor[T] {
	return &Cursor[T]{
		fetch: fetch,
		clock: clock,
		delay: delay,
		more:  true,
	}
}

// Next advances to the next record, fetching the next page if the current
// one is used up. It returns false once the listing is exhausted or an error
// occurred, after which Next keeps returning false.
func (c *Cursor[T]) Next(ctx context.Context) bool {
	if c.err != nil {
		return false
	}
	if len(c.buffer) == 0 {
		if !c.more {
			return false
		}
		if !c.fetchPage(ctx) {
			return false
		}
	}

	c.current = c.buffer[0]
	c.buffer = c.buffer[1:]
	return true
}

func (c *Cursor[T]) fetchPage(ctx context.Context) bool {
	err := c.clock.Sleep(ctx, c.delay)
	if err != nil {
		c.fail(err)
		return false
	}

	page, err := c.fetch(ctx, c.next)
	if err != nil {
		c.fail(err)
		return false
	}
	if len(page.Results) == 0 {
		c.more = false
		return false
	}

	c.buffer = page.Results
	c.next = page.Next
	c.more = page.Next != ""
	return true
}

func (c *Cursor[T]) fail(err error) {
	c.err = err
	c.more = false
	c.buffer = nil
}

// Record returns the record Next advanced to.
func (c *Cursor[T]) Record() T {
	return c.current
}

// Err returns the error that stopped the cursor, if any.
func (c *Cursor[T]) Err() error {
	return c.err
}

// All drains the cursor into a slice.
func (c *Cursor[T]) All(ctx context.Context) ([]T, error) {
	var out []T
	for c.Next(ctx) {
		out = append(out, c.Record())
	}
	return out, c.Err()
}
