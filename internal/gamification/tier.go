package gamification

import "fmt"

// Tier ranks badges, ordered Bronze < Silver < Gold < Platinum < Diamond.
type Tier int

const (
	TierBronze Tier = iota + 1
	TierSilver
	TierGold
	TierPlatinum
	TierDiamond
)

var tierNames = [...]string{TierBronze: "bronze", TierSilver: "silver", TierGold: "gold", TierPlatinum: "platinum", TierDiamond: "diamond"}

// AllTiers returns every tier in ascending order.
func AllTiers() []Tier {
	return []Tier{TierBronze, TierSilver, TierGold, TierPlatinum, TierDiamond}
}

// String returns the lowercase tier name.
func (t Tier) String() string {
	if t.IsValid() {
		return tierNames[t]
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// IsValid reports whether t is a known tier.
func (t Tier) IsValid() bool {
	return t >= TierBronze && t <= TierDiamond
}
