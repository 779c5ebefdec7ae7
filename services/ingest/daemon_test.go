package ingest

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeCron struct {
	specs     []string
	callbacks []func()
}

func (c *fakeCron) Cron(spec string, cb func()) error {
	if spec == "never" {
		return fmt.Errorf("unparsable schedule")
	}
	c.specs = append(c.specs, spec)
	c.callbacks = append(c.callbacks, cb)
	return nil
}

func (c *fakeCron) tick() {
	for _, cb := range c.callbacks {
		cb()
	}
}

func TestDaemon(t *testing.T) {
	env, cleanup := setupTest(t, scenario(), Options{})
	defer cleanup()
	ctx := context.Background()

	cron := &fakeCron{}
	err := env.service.StartDaemon(ctx, cron, DaemonOptions{
		Schedule: "@every 6h",
		Groups:   []string{"sqlite-users"},
	})
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, []string{"@every 6h"}, cron.specs)
	requireCounts(t, env, Counts{})

	cron.tick()
	requireCounts(t, env, scenarioCounts)
	require.Equal(t, 1, env.api.hitCount("groups"))

	cron.tick()
	requireCounts(t, env, scenarioCounts)
	require.Equal(t, 2, env.api.hitCount("groups"))
}

func TestDaemonStopsWithContext(t *testing.T) {
	env, cleanup := setupTest(t, scenario(), Options{})
	defer cleanup()
	ctx, cancel := context.WithCancel(context.Background())

	cron := &fakeCron{}
	err := env.service.StartDaemon(ctx, cron, DaemonOptions{
		Schedule: "@hourly",
		Groups:   []string{"sqlite-users"},
	})
	if err != nil {
		t.Fatal(err)
	}
	cancel()
	cron.tick()
	require.Equal(t, 0, env.api.hitCount("groups"))
}

func TestDaemonOptions(t *testing.T) {
	env, cleanup := setupTest(t, scenario(), Options{})
	defer cleanup()
	ctx := context.Background()

	err := env.service.StartDaemon(ctx, &fakeCron{}, DaemonOptions{Schedule: "@hourly"})
	require.Error(t, err)

	err = env.service.StartDaemon(ctx, &fakeCron{}, DaemonOptions{Groups: []string{"sqlite-users"}})
	require.Error(t, err)

	err = env.service.StartDaemon(ctx, &fakeCron{}, DaemonOptions{
		Schedule: "never",
		Groups:   []string{"sqlite-users"},
	})
	require.ErrorContains(t, err, "invalid schedule")
}
