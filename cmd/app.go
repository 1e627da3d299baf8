package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avelis/mnemo/internal/adaptive"
	"github.com/avelis/mnemo/internal/config"
	"github.com/avelis/mnemo/internal/deck"
	"github.com/avelis/mnemo/internal/engine"
	"github.com/avelis/mnemo/internal/gamification"
	"github.com/avelis/mnemo/internal/progress"
	"github.com/avelis/mnemo/internal/scheduler"
	"github.com/avelis/mnemo/internal/store"
)

// appEnv bundles everything a subcommand needs: the open store, the
// card deck, and the wired study engine.
type appEnv struct {
	cfg  *config.Config
	st   *store.Store
	deck *deck.Deck
	eng  *engine.Engine
}

func (a *appEnv) Close() error {
	return a.st.Close()
}

// openApp loads config, opens the store, and builds the engine stack.
// The caller must Close the returned env.
func openApp(cmd *cobra.Command) (*appEnv, error) {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	env, err := buildEnv(ctx, cfg, st)
	if err != nil {
		st.Close()
		return nil, err
	}
	return env, nil
}

func buildEnv(ctx context.Context, cfg *config.Config, st *store.Store) (*appEnv, error) {
	d, err := deck.Open(ctx, st)
	if err != nil {
		return nil, err
	}

	tracker, err := progress.NewTracker(ctx, st)
	if err != nil {
		return nil, fmt.Errorf("open tracker: %w", err)
	}
	gam, err := gamification.NewEngine(ctx, st, gamification.DefaultXPParams())
	if err != nil {
		return nil, fmt.Errorf("open gamification: %w", err)
	}
	adapt, err := adaptive.NewEngine(cfg.WindowSize, cfg.Sensitivity)
	if err != nil {
		return nil, fmt.Errorf("adaptive engine: %w", err)
	}

	// The sliding windows live in memory, so rebuild them from the
	// persisted event history (stored newest first) before use.
	events := tracker.Snapshot().RecentEvents
	for i := len(events) - 1; i >= 0; i-- {
		if err := adapt.Ingest(events[i]); err != nil {
			return nil, fmt.Errorf("replay history: %w", err)
		}
	}

	eng, err := engine.New(scheduler.NewDefault(), tracker, gam, adapt)
	if err != nil {
		return nil, err
	}
	return &appEnv{cfg: cfg, st: st, deck: d, eng: eng}, nil
}
