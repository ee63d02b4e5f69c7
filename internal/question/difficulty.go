package question

import "fmt"

// Difficulty is the ordered difficulty scale. Adjustments always move one
// step at a time; the scale never wraps or skips.
type Difficulty string

const (
	DifficultyBeginner Difficulty = "beginner"
	DifficultyEasy     Difficulty = "easy"
	DifficultyMedium   Difficulty = "medium"
	DifficultyHard     Difficulty = "hard"
	DifficultyAdvanced Difficulty = "advanced"
)

// AllDifficulties returns the scale in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{
		DifficultyBeginner,
		DifficultyEasy,
		DifficultyMedium,
		DifficultyHard,
		DifficultyAdvanced,
	}
}

// Valid reports whether d is one of the known levels.
func (d Difficulty) Valid() bool {
	return d.Rank() >= 0
}

// Rank returns the position of d on the scale, 0 (beginner) through
// 4 (advanced), or -1 for an unknown value.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyBeginner:
		return 0
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	case DifficultyAdvanced:
		return 4
	}
	return -1
}

// Up returns the level one step harder, or d itself at the top of the
// scale or for unknown values.
func (d Difficulty) Up() Difficulty {
	r := d.Rank()
	if r < 0 || r >= len(AllDifficulties())-1 {
		return d
	}
	return AllDifficulties()[r+1]
}

// Down returns the level one step easier, or d itself at the bottom of
// the scale or for unknown values.
func (d Difficulty) Down() Difficulty {
	r := d.Rank()
	if r <= 0 {
		return d
	}
	return AllDifficulties()[r-1]
}

// DisplayName returns a human-readable label for the level.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyBeginner:
		return "Beginner"
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	case DifficultyAdvanced:
		return "Advanced"
	default:
		return string(d)
	}
}

// ParseDifficulty converts a string into a Difficulty, rejecting unknown
// values.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
	return d, nil
}
