package commands

import (
	"fmt"
	"os"

	"eventizer/services/ingest"

	"github.com/jedib0t/go-pretty/v6/table"
)

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

func renderResult(result ingest.Result) {
	t := newTable()
	t.SetTitle(fmt.Sprintf("%s (%s)", result.Group.UrlName, result.Duration.Round(1e6)))
	t.AppendHeader(table.Row{"Kind", "Created", "Existing"})
	for _, kind := range ingest.Kinds {
		t.AppendRow(table.Row{kind, result.Stats.Created[kind], result.Stats.Existing[kind]})
	}
	t.AppendFooter(table.Row{
		"Events",
		fmt.Sprintf("%d updated", result.Stats.EventsUpdated),
		fmt.Sprintf("%d unchanged", result.Stats.EventsUnchanged),
	})
	t.Render()
}

func renderCounts(counts ingest.Counts) {
	t := newTable()
	t.AppendHeader(table.Row{"Table", "Rows"})
	t.AppendRows([]table.Row{
		{"meetup_groups", counts.MeetupGroups},
		{"members", counts.Members},
		{"events", counts.Events},
		{"responses", counts.Responses},
		{"locations", counts.Locations},
		{"topics", counts.Topics},
		{"categories", counts.Categories},
	})
	t.Render()
}

func renderSummaries(summaries []ingest.GroupSummary) {
	if len(summaries) == 0 {
		return
	}
	t := newTable()
	t.AppendHeader(table.Row{"Group", "Name", "Members", "Events"})
	for _, s := range summaries {
		t.AppendRow(table.Row{s.Urlname, s.Name, s.Members, s.Events})
	}
	t.Render()
}
