package gamification

import (
	"math"

	"github.com/avelis/mnemo/internal/card"
)

// XPParams holds the tunable XP constants. The exact numbers are policy;
// the invariants are that base XP strictly increases with rating severity
// and the speed factor strictly decreases with response time.
type XPParams struct {
	// Base XP per rating.
	XPAgain int
	XPHard  int
	XPGood  int
	XPEasy  int

	// SpeedBonusMax is the maximum fractional bonus for an instant answer.
	SpeedBonusMax float64

	// SpeedHalfLife is the response time in seconds at which the speed
	// bonus has decayed to half its maximum.
	SpeedHalfLife float64
}

// DefaultXPParams returns the standard XP constants.
func DefaultXPParams() XPParams {
	return XPParams{
		XPAgain:       2,
		XPHard:        5,
		XPGood:        10,
		XPEasy:        15,
		SpeedBonusMax: 0.5,
		SpeedHalfLife: 30.0,
	}
}

func (p XPParams) baseXP(r card.Rating) int {
	switch r {
	case card.RatingAgain:
		return p.XPAgain
	case card.RatingHard:
		return p.XPHard
	case card.RatingEasy:
		return p.XPEasy
	default:
		return p.XPGood
	}
}

// speedFactor returns the XP multiplier for a response time. It decays
// hyperbolically from 1+SpeedBonusMax toward 1.0, so a faster answer
// always earns at least as much as a slower one at the same rating.
func (p XPParams) speedFactor(responseTime float64) float64 {
	return 1.0 + p.SpeedBonusMax*p.SpeedHalfLife/(p.SpeedHalfLife+responseTime)
}

// eventXP computes the XP for one study event.
func (p XPParams) eventXP(ev card.StudyEvent) int {
	xp := int(math.Round(float64(p.baseXP(ev.Rating)) * p.speedFactor(ev.ResponseTime)))
	if xp < 1 {
		xp = 1
	}
	return xp
}

// levelBaseXP is the XP required for level 2; each level costs
// quadratically more.
const levelBaseXP = 100

// XPForLevel returns the total XP at which the given level begins.
// Level 1 begins at 0.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	n := level - 1
	return levelBaseXP * n * n
}

// LevelForXP returns the level reached at the given total XP. The curve
// is monotonic: more XP never lowers the level.
func LevelForXP(totalXP int) int {
	if totalXP < 0 {
		return 1
	}
	return int(math.Sqrt(float64(totalXP)/levelBaseXP)) + 1
}

// LevelProgress returns the fraction of the current level completed,
// in [0, 1).
func LevelProgress(totalXP int) float64 {
	level := LevelForXP(totalXP)
	floor := XPForLevel(level)
	ceil := XPForLevel(level + 1)
	return float64(totalXP-floor) / float64(ceil-floor)
}

// XPToNextLevel returns the XP remaining until the next level, always
// positive.
func XPToNextLevel(totalXP int) int {
	return XPForLevel(LevelForXP(totalXP)+1) - totalXP
}
