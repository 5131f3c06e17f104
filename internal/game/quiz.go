package game

// Difficulty is a question tier. Higher tiers pay more and cost more.
type Difficulty int

const (
	DifficultyEasy   Difficulty = 1
	DifficultyMedium Difficulty = 2
	DifficultyHard   Difficulty = 3
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	}
	return "unknown"
}

// ClampDifficulty keeps a tier inside the valid range.
func ClampDifficulty(d Difficulty) Difficulty {
	if d < DifficultyEasy {
		return DifficultyEasy
	}
	if d > DifficultyHard {
		return DifficultyHard
	}
	return d
}

// NextDifficulty suggests the tier for the next quiz from the recent success
// rate: up one tier above 0.8, down one below 0.3, otherwise unchanged.
// The suggestion is advisory; callers decide whether to follow it.
func NextDifficulty(current Difficulty, successRate float64) Difficulty {
	switch {
	case successRate > 0.8:
		return ClampDifficulty(current + 1)
	case successRate < 0.3:
		return ClampDifficulty(current - 1)
	}
	return ClampDifficulty(current)
}

// TierScoring holds the base coin reward and penalty for one difficulty tier.
type TierScoring struct {
	Reward  int
	Penalty int
}

// Tuning collects the gameplay constants the host can adjust.
// Streak bonus amounts and grade boundaries are deliberately not here;
// they are fixed design constants (see streakBonus and gradeFor).
type Tuning struct {
	StartingBalance  int
	QuestionsPerQuiz int
	Scoring          map[Difficulty]TierScoring
}

// DefaultTuning returns the shipped gameplay constants.
func DefaultTuning() Tuning {
	return Tuning{
		StartingBalance:  25,
		QuestionsPerQuiz: 3,
		Scoring: map[Difficulty]TierScoring{
			DifficultyEasy:   {Reward: 10, Penalty: 5},
			DifficultyMedium: {Reward: 20, Penalty: 10},
			DifficultyHard:   {Reward: 30, Penalty: 15},
		},
	}
}

// SanitizeTuning clamps nonsensical values back to safe ones.
func SanitizeTuning(t Tuning) Tuning {
	def := DefaultTuning()
	if t.StartingBalance < 0 {
		t.StartingBalance = def.StartingBalance
	}
	if t.QuestionsPerQuiz <= 0 {
		t.QuestionsPerQuiz = def.QuestionsPerQuiz
	}
	if t.Scoring == nil {
		t.Scoring = map[Difficulty]TierScoring{}
	}
	for tier, d := range def.Scoring {
		s, ok := t.Scoring[tier]
		if !ok {
			t.Scoring[tier] = d
			continue
		}
		if s.Reward < 0 {
			s.Reward = d.Reward
		}
		if s.Penalty < 0 {
			s.Penalty = d.Penalty
		}
		t.Scoring[tier] = s
	}
	return t
}

// Question is one multiple-choice financial-literacy question.
// Questions are immutable and live in a static per-category bank.
type Question struct {
	Prompt       string
	Choices      []string
	CorrectIndex int
	Explanation  string
	Category     string
	Difficulty   Difficulty
	Keywords     []string
	Hint         string
}

// Bank maps a category name to its question list.
type Bank map[string][]Question

// Eligible returns the questions in a category whose difficulty does not
// exceed the ceiling. Returns an empty slice for unknown categories.
func (b Bank) Eligible(category string, ceiling Difficulty) []Question {
	var out []Question
	for _, q := range b[category] {
		if q.Difficulty <= ceiling {
			out = append(out, q)
		}
	}
	return out
}

// Categories returns the category names with at least one question.
func (b Bank) Categories() []string {
	out := make([]string, 0, len(b))
	for name, qs := range b {
		if len(qs) > 0 {
			out = append(out, name)
		}
	}
	return out
}

// streakBonus returns the bonus coins for a run of consecutive correct
// answers, where run counts the answer being graded. Fixed design constants.
func streakBonus(run int) int {
	switch {
	case run >= 5:
		return 50
	case run >= 3:
		return 25
	case run >= 2:
		return 10
	}
	return 0
}

// gradeFor maps a success rate to a letter grade. Boundaries are inclusive
// at the lower edge.
func gradeFor(rate float64) string {
	switch {
	case rate >= 0.9:
		return "A+"
	case rate >= 0.8:
		return "A"
	case rate >= 0.7:
		return "B"
	case rate >= 0.6:
		return "C"
	case rate >= 0.5:
		return "D"
	}
	return "F"
}
