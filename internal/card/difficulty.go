package card

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidDifficulty is returned when parsing an unknown difficulty level.
var ErrInvalidDifficulty = errors.New("card: invalid difficulty")

// Difficulty is a card's difficulty level, ordered Easy < Medium < Hard < Expert.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota + 1
	DifficultyMedium
	DifficultyHard
	DifficultyExpert
)

var (
	difficultyNames  = [...]string{DifficultyEasy: "easy", DifficultyMedium: "medium", DifficultyHard: "hard", DifficultyExpert: "expert"}
	difficultyByName = map[string]Difficulty{
		"easy":   DifficultyEasy,
		"medium": DifficultyMedium,
		"hard":   DifficultyHard,
		"expert": DifficultyExpert,
	}
)

// AllDifficulties returns every difficulty level in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert}
}

// String returns the lowercase name of the difficulty.
func (d Difficulty) String() string {
	if d.IsValid() {
		return difficultyNames[d]
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// IsValid reports whether d is a known difficulty level.
func (d Difficulty) IsValid() bool {
	return d >= DifficultyEasy && d <= DifficultyExpert
}

// StepUp returns the next harder level, bounded at Expert.
func (d Difficulty) StepUp() Difficulty {
	if d >= DifficultyExpert {
		return DifficultyExpert
	}
	return d + 1
}

// StepDown returns the next easier level, bounded at Easy.
func (d Difficulty) StepDown() Difficulty {
	if d <= DifficultyEasy {
		return DifficultyEasy
	}
	return d - 1
}

// ParseDifficulty converts a difficulty name back to its Difficulty value.
func ParseDifficulty(s string) (Difficulty, error) {
	d, ok := difficultyByName[s]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
	}
	return d, nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDifficulty, int(d))
	}
	return []byte(difficultyNames[d]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Difficulty) UnmarshalText(text []byte) error {
	v, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalJSON implements json.Marshaler. Difficulty serializes as a JSON string.
func (d Difficulty) MarshalJSON() ([]byte, error) {
	text, err := d.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Difficulty) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDifficulty, data)
	}
	return d.UnmarshalText([]byte(s))
}
