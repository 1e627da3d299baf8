// Package engine wires the scheduler, progress tracker, gamification
// engine, and adaptive difficulty engine behind a single RecordStudy
// call. It contains no logic of its own beyond fixed-order dispatch.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/avelis/mnemo/internal/adaptive"
	"github.com/avelis/mnemo/internal/card"
	"github.com/avelis/mnemo/internal/gamification"
	"github.com/avelis/mnemo/internal/progress"
	"github.com/avelis/mnemo/internal/scheduler"
)

// RecordStudyResult is the composite outcome of one recorded review.
type RecordStudyResult struct {
	UpdatedCard    card.Flashcard `json:"updated_card"`
	XPEarned       int            `json:"xp_earned"`
	NextReviewDate time.Time      `json:"next_review_date"`
	CurrentStreak  int            `json:"current_streak"`
}

// Engine is the orchestration facade over the four collaborators.
type Engine struct {
	scheduler    *scheduler.Scheduler
	tracker      *progress.Tracker
	gamification *gamification.Engine
	adaptive     *adaptive.Engine

	// Now is the clock stamped onto study events. Overridden in tests.
	Now func() time.Time
}

// New creates the facade. All four collaborators are required.
func New(sched *scheduler.Scheduler, tracker *progress.Tracker, gam *gamification.Engine, adapt *adaptive.Engine) (*Engine, error) {
	if sched == nil || tracker == nil || gam == nil || adapt == nil {
		return nil, fmt.Errorf("engine: all collaborators are required")
	}
	return &Engine{
		scheduler:    sched,
		tracker:      tracker,
		gamification: gam,
		adaptive:     adapt,
		Now:          time.Now,
	}, nil
}

// RecordStudy processes one review through the fixed pipeline:
// scheduler, progress tracker, gamification, adaptive difficulty.
// All four steps run synchronously for every event.
func (e *Engine) RecordStudy(ctx context.Context, c card.Flashcard, rating card.Rating, responseTime float64) (RecordStudyResult, error) {
	now := e.Now()

	ev, err := card.NewStudyEvent(c.ID, c.SubjectID, rating, responseTime, now)
	if err != nil {
		return RecordStudyResult{}, err
	}

	updated, err := e.scheduler.Review(c, rating, now)
	if err != nil {
		return RecordStudyResult{}, fmt.Errorf("review card: %w", err)
	}

	if err := e.tracker.Record(ctx, ev); err != nil {
		return RecordStudyResult{}, fmt.Errorf("record progress: %w", err)
	}

	xp, err := e.gamification.AwardXP(ctx, ev)
	if err != nil {
		return RecordStudyResult{}, fmt.Errorf("award xp: %w", err)
	}

	if err := e.adaptive.Ingest(ev); err != nil {
		return RecordStudyResult{}, fmt.Errorf("ingest event: %w", err)
	}

	return RecordStudyResult{
		UpdatedCard:    updated,
		XPEarned:       xp,
		NextReviewDate: updated.NextReviewDate,
		CurrentStreak:  e.gamification.Streak().Current,
	}, nil
}

// Tracker exposes the progress tracker for queries.
func (e *Engine) Tracker() *progress.Tracker {
	return e.tracker
}

// Gamification exposes the gamification engine for queries.
func (e *Engine) Gamification() *gamification.Engine {
	return e.gamification
}

// Adaptive exposes the adaptive difficulty engine for queries.
func (e *Engine) Adaptive() *adaptive.Engine {
	return e.adaptive
}

// Scheduler exposes the review scheduler.
func (e *Engine) Scheduler() *scheduler.Scheduler {
	return e.scheduler
}
