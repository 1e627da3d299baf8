package gamification

import (
	"time"

	"github.com/avelis/mnemo/internal/progress"
)

// Badge is an earned achievement.
type Badge struct {
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Tier        Tier      `json:"tier"`
	IsEarned    bool      `json:"is_earned"`
	EarnedAt    time.Time `json:"earned_at"`
}

// BadgeDef defines a single badge in the catalog.
type BadgeDef struct {
	Name        string
	Description string
	Tier        Tier
}

// Catalog maps badge keys to their definitions.
var Catalog = map[string]BadgeDef{
	"first_review":  {Name: "First Steps", Description: "Complete your first review", Tier: TierBronze},
	"reviews_100":   {Name: "Century", Description: "Complete 100 reviews", Tier: TierSilver},
	"reviews_500":   {Name: "Scholar", Description: "Complete 500 reviews", Tier: TierGold},
	"reviews_1000":  {Name: "Relentless", Description: "Complete 1000 reviews", Tier: TierPlatinum},
	"streak_3":      {Name: "Getting Started", Description: "Study 3 days in a row", Tier: TierBronze},
	"streak_7":      {Name: "Week Warrior", Description: "Study 7 days in a row", Tier: TierSilver},
	"streak_30":     {Name: "Monthly Master", Description: "Study 30 days in a row", Tier: TierGold},
	"xp_1000":       {Name: "Rising Star", Description: "Earn 1,000 total XP", Tier: TierSilver},
	"xp_10000":      {Name: "Powerhouse", Description: "Earn 10,000 total XP", Tier: TierGold},
	"mastery_half":  {Name: "Halfway There", Description: "Reach 50% global mastery", Tier: TierGold},
	"mastery_full":  {Name: "Polymath", Description: "Reach 90% global mastery", Tier: TierDiamond},
	"accuracy_high": {Name: "Sharpshooter", Description: "Hold 90% overall accuracy across 50+ reviews", Tier: TierPlatinum},
}

// qualifiedBadges returns the keys whose criteria the learner currently
// meets, regardless of what has already been earned. The caller diffs
// against the earned set.
func (e *Engine) qualifiedBadges(tracker *progress.Tracker) []string {
	var keys []string

	reviews := tracker.TotalReviews()
	if reviews >= 1 {
		keys = append(keys, "first_review")
	}
	if reviews >= 100 {
		keys = append(keys, "reviews_100")
	}
	if reviews >= 500 {
		keys = append(keys, "reviews_500")
	}
	if reviews >= 1000 {
		keys = append(keys, "reviews_1000")
	}

	if e.state.Streak.Current >= 3 {
		keys = append(keys, "streak_3")
	}
	if e.state.Streak.Current >= 7 {
		keys = append(keys, "streak_7")
	}
	if e.state.Streak.Current >= 30 {
		keys = append(keys, "streak_30")
	}

	if e.state.TotalXP >= 1000 {
		keys = append(keys, "xp_1000")
	}
	if e.state.TotalXP >= 10000 {
		keys = append(keys, "xp_10000")
	}

	mastery := tracker.GlobalMastery()
	if mastery >= 0.5 {
		keys = append(keys, "mastery_half")
	}
	if mastery >= 0.9 {
		keys = append(keys, "mastery_full")
	}

	if reviews >= 50 && tracker.OverallAccuracy() >= 0.9 {
		keys = append(keys, "accuracy_high")
	}

	return keys
}
