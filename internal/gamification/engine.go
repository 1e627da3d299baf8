// Package gamification converts study events into XP, levels, streaks,
// and badge unlocks. State persists through the storage collaborator and
// reloads identically across restarts.
package gamification

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/avelis/mnemo/internal/card"
	"github.com/avelis/mnemo/internal/progress"
	"github.com/avelis/mnemo/internal/store"
)

// SnapshotKey is the storage key the engine persists under.
const SnapshotKey = "gamification"

// maxXPHistory bounds the retained per-award history.
const maxXPHistory = 200

// StreakState tracks consecutive study days.
type StreakState struct {
	Current       int        `json:"current"`
	Longest       int        `json:"longest"`
	LastStudyDate *time.Time `json:"last_study_date,omitempty"`
}

// XPEvent records one XP award.
type XPEvent struct {
	Amount int         `json:"amount"`
	Rating card.Rating `json:"rating"`
	At     time.Time   `json:"at"`
}

// State is the full gamification snapshot with derived level fields.
type State struct {
	TotalXP       int         `json:"total_xp"`
	CurrentLevel  int         `json:"current_level"`
	LevelProgress float64     `json:"level_progress"`
	XPToNextLevel int         `json:"xp_to_next_level"`
	Streak        StreakState `json:"streak"`
	EarnedBadges  []Badge     `json:"earned_badges"`
	XPHistory     []XPEvent   `json:"xp_history"`
}

// persisted is the stored subset; derived fields are recomputed on read.
type persisted struct {
	TotalXP   int              `json:"total_xp"`
	Streak    StreakState      `json:"streak"`
	Badges    map[string]Badge `json:"badges"`
	XPHistory []XPEvent        `json:"xp_history"`
}

// Engine accumulates XP and badges. Not safe for concurrent use; callers
// serialize access.
type Engine struct {
	kv     store.KV
	params XPParams
	state  persisted

	// Now is the clock used for badge timestamps. Streak day boundaries
	// come from event timestamps. Overridden in tests.
	Now func() time.Time
}

// NewEngine creates a gamification engine, restoring any previously
// saved state so reloaded totals match what was persisted.
func NewEngine(ctx context.Context, kv store.KV, params XPParams) (*Engine, error) {
	e := &Engine{
		kv:     kv,
		params: params,
		state:  persisted{Badges: make(map[string]Badge)},
		Now:    time.Now,
	}
	if kv != nil {
		var saved persisted
		found, err := kv.Load(ctx, SnapshotKey, &saved)
		if err != nil {
			return nil, fmt.Errorf("load gamification: %w", err)
		}
		if found {
			if saved.Badges == nil {
				saved.Badges = make(map[string]Badge)
			}
			e.state = saved
		}
	}
	return e, nil
}

// AwardXP converts one study event into XP, updates the streak, and
// persists. Returns the XP earned.
func (e *Engine) AwardXP(ctx context.Context, ev card.StudyEvent) (int, error) {
	if !ev.Rating.IsValid() {
		return 0, fmt.Errorf("gamification: %w: rating %d", card.ErrInvalidEvent, int(ev.Rating))
	}
	if ev.ResponseTime <= 0 {
		return 0, fmt.Errorf("gamification: %w: response time %.2f", card.ErrInvalidEvent, ev.ResponseTime)
	}

	xp := e.params.eventXP(ev)
	e.state.TotalXP += xp
	e.touchStreak(ev.Timestamp)

	e.state.XPHistory = append(e.state.XPHistory, XPEvent{Amount: xp, Rating: ev.Rating, At: ev.Timestamp})
	if len(e.state.XPHistory) > maxXPHistory {
		e.state.XPHistory = e.state.XPHistory[len(e.state.XPHistory)-maxXPHistory:]
	}

	if err := e.save(ctx); err != nil {
		return 0, err
	}
	return xp, nil
}

// touchStreak applies the calendar-day streak rule in UTC: the first
// study of a new day extends the streak when the previous study was
// yesterday, resets it to 1 after a longer gap, and leaves it unchanged
// within the same day.
func (e *Engine) touchStreak(at time.Time) {
	day := at.UTC().Truncate(24 * time.Hour)

	if last := e.state.Streak.LastStudyDate; last != nil {
		switch gap := int(day.Sub(last.UTC().Truncate(24*time.Hour)).Hours() / 24); {
		case gap == 0:
			// Already studied today.
		case gap == 1:
			e.state.Streak.Current++
		default:
			e.state.Streak.Current = 1
		}
	} else {
		e.state.Streak.Current = 1
	}

	if e.state.Streak.Current > e.state.Streak.Longest {
		e.state.Streak.Longest = e.state.Streak.Current
	}
	e.state.Streak.LastStudyDate = &day
}

// CheckBadges awards every badge whose criteria are newly met and
// returns only those. A badge already earned is never re-emitted.
func (e *Engine) CheckBadges(ctx context.Context, tracker *progress.Tracker) ([]Badge, error) {
	var earned []Badge
	now := e.Now()

	for _, key := range e.qualifiedBadges(tracker) {
		if _, already := e.state.Badges[key]; already {
			continue
		}
		def, ok := Catalog[key]
		if !ok {
			continue
		}
		badge := Badge{
			Key:         key,
			Name:        def.Name,
			Description: def.Description,
			Tier:        def.Tier,
			IsEarned:    true,
			EarnedAt:    now,
		}
		e.state.Badges[key] = badge
		earned = append(earned, badge)
	}

	if len(earned) > 0 {
		if err := e.save(ctx); err != nil {
			return nil, err
		}
	}
	sort.Slice(earned, func(i, j int) bool { return earned[i].Key < earned[j].Key })
	return earned, nil
}

// State returns the current snapshot with derived level fields.
func (e *Engine) State() State {
	badges := make([]Badge, 0, len(e.state.Badges))
	for _, b := range e.state.Badges {
		badges = append(badges, b)
	}
	sort.Slice(badges, func(i, j int) bool { return badges[i].Key < badges[j].Key })

	return State{
		TotalXP:       e.state.TotalXP,
		CurrentLevel:  LevelForXP(e.state.TotalXP),
		LevelProgress: LevelProgress(e.state.TotalXP),
		XPToNextLevel: XPToNextLevel(e.state.TotalXP),
		Streak:        e.state.Streak,
		EarnedBadges:  badges,
		XPHistory:     append([]XPEvent(nil), e.state.XPHistory...),
	}
}

// TotalXP returns the lifetime XP total.
func (e *Engine) TotalXP() int {
	return e.state.TotalXP
}

// Streak returns the current streak state.
func (e *Engine) Streak() StreakState {
	return e.state.Streak
}

// Reset zeroes XP, level, streak, badges, and history, and persists.
func (e *Engine) Reset(ctx context.Context) error {
	e.state = persisted{Badges: make(map[string]Badge)}
	return e.save(ctx)
}

func (e *Engine) save(ctx context.Context) error {
	if e.kv == nil {
		return nil
	}
	if err := e.kv.Save(ctx, SnapshotKey, e.state); err != nil {
		return fmt.Errorf("save gamification: %w", err)
	}
	return nil
}
