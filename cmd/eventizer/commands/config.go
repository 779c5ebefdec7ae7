package commands

import (
	"fmt"
	"strings"
	"time"

	configsqlite "eventizer/lib/configutil/sqlite"
	"eventizer/lib/scrapers/meetup"
	"eventizer/lib/telemetry"
	"eventizer/services/ingest"
)

const (
	defaultDatabase = "eventizer.db"
	defaultSchedule = "@every 6h"
)

type Config struct {
	ApiKey  string `json:"api_key"`
	BaseUrl string `json:"base_url"`
	// a negative delay disables the pause between pages
	PageDelaySeconds   float64  `json:"page_delay_seconds"`
	EventDelaySeconds  float64  `json:"event_delay_seconds"`
	RequestsPerSecond  float64  `json:"requests_per_second"`
	EventStatuses      []string `json:"event_statuses"`
	SkipUnchangedRsvps bool     `json:"skip_unchanged_rsvps"`

	Database configsqlite.Struct `json:"database"`
	Groups   []string            `json:"groups"`
	Schedule string              `json:"schedule"`
	// the cron timezone, defaults to UTC
	Timezone string `json:"timezone"`

	Telemetry *telemetry.Config `json:"telemetry"`
}

func (c *Config) Validate() error {
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("requests_per_second must not be negative")
	}
	if c.EventDelaySeconds < 0 {
		return fmt.Errorf("event_delay_seconds must not be negative")
	}
	for _, status := range c.EventStatuses {
		if strings.TrimSpace(status) == "" {
			return fmt.Errorf("event_statuses must not contain blank entries")
		}
	}
	for _, group := range c.Groups {
		if strings.TrimSpace(group) == "" {
			return fmt.Errorf("groups must not contain blank entries")
		}
	}
	if c.Timezone != "" {
		_, err := time.LoadLocation(c.Timezone)
		if err != nil {
			return fmt.Errorf("timezone: %w", err)
		}
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Database.File == "" {
		c.Database.File = defaultDatabase
	}
	if c.Schedule == "" {
		c.Schedule = defaultSchedule
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func (c Config) clientOptions() meetup.ClientOptions {
	return meetup.ClientOptions{
		ApiKey:            c.ApiKey,
		BaseUrl:           c.BaseUrl,
		PageDelay:         seconds(c.PageDelaySeconds),
		RequestsPerSecond: c.RequestsPerSecond,
		EventStatuses:     c.EventStatuses,
	}
}

func (c Config) ingestOptions() ingest.Options {
	return ingest.Options{
		EventDelay:             seconds(c.EventDelaySeconds),
		SkipUnchangedResponses: c.SkipUnchangedRsvps,
	}
}

func (c Config) location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	// already checked by Validate
	loc, _ := time.LoadLocation(c.Timezone)
	return loc
}
