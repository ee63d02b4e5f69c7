package question

import "testing"

func TestDifficultyUpDown(t *testing.T) {
	tests := []struct {
		d    Difficulty
		up   Difficulty
		down Difficulty
	}{
		{DifficultyBeginner, DifficultyEasy, DifficultyBeginner},
		{DifficultyEasy, DifficultyMedium, DifficultyBeginner},
		{DifficultyMedium, DifficultyHard, DifficultyEasy},
		{DifficultyHard, DifficultyAdvanced, DifficultyMedium},
		{DifficultyAdvanced, DifficultyAdvanced, DifficultyHard},
	}

	for _, tc := range tests {
		if got := tc.d.Up(); got != tc.up {
			t.Errorf("%s.Up() = %s, want %s", tc.d, got, tc.up)
		}
		if got := tc.d.Down(); got != tc.down {
			t.Errorf("%s.Down() = %s, want %s", tc.d, got, tc.down)
		}
	}
}

func TestDifficultyRankOrdering(t *testing.T) {
	all := AllDifficulties()
	for i := 1; i < len(all); i++ {
		if all[i-1].Rank() >= all[i].Rank() {
			t.Errorf("rank not strictly increasing: %s >= %s", all[i-1], all[i])
		}
	}
	if Difficulty("impossible").Rank() != -1 {
		t.Error("unknown difficulty should rank -1")
	}
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty("medium")
	if err != nil || d != DifficultyMedium {
		t.Errorf("ParseDifficulty(medium) = %v, %v", d, err)
	}
	if _, err := ParseDifficulty("expert"); err == nil {
		t.Error("ParseDifficulty(expert) should fail")
	}
}
