package game

import (
	"math/rand"
	"testing"
	"time"
)

func testBank() Bank {
	easy := func(n string) Question {
		return Question{
			Prompt:       "easy " + n,
			Choices:      []string{"right", "wrong", "also wrong"},
			CorrectIndex: 0,
			Explanation:  "because",
			Category:     "counting",
			Difficulty:   DifficultyEasy,
		}
	}
	return Bank{
		"counting": {
			easy("a"), easy("b"), easy("c"), easy("d"), easy("e"),
			{
				Prompt:       "hard one",
				Choices:      []string{"no", "yes"},
				CorrectIndex: 1,
				Category:     "counting",
				Difficulty:   DifficultyHard,
			},
		},
	}
}

func newTestSession(t *testing.T, count int, wallet *Ledger, seed int64) *Session {
	t.Helper()
	s := NewSession(testBank(), "counting", DifficultyEasy, count,
		DefaultTuning().Scoring, wallet, rand.New(rand.NewSource(seed)), time.Unix(1000, 0))
	if s == nil {
		t.Fatal("expected a session")
	}
	return s
}

// TestSamplingDeterminism checks that a fixed seed always draws the same
// questions in the same order, with no duplicates.
func TestSamplingDeterminism(t *testing.T) {
	a := newTestSession(t, 3, nil, 42)
	b := newTestSession(t, 3, nil, 42)

	if a.Total() != 3 || b.Total() != 3 {
		t.Fatalf("expected 3 questions, got %d and %d", a.Total(), b.Total())
	}
	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		qa, qb := a.questions[i], b.questions[i]
		if qa.Prompt != qb.Prompt {
			t.Errorf("question %d differs between equal seeds: %q vs %q", i, qa.Prompt, qb.Prompt)
		}
		if seen[qa.Prompt] {
			t.Errorf("duplicate question sampled: %q", qa.Prompt)
		}
		seen[qa.Prompt] = true
	}
}

// TestSamplingClampsToBank checks that asking for more questions than exist
// just returns all eligible ones.
func TestSamplingClampsToBank(t *testing.T) {
	s := newTestSession(t, 50, nil, 1)
	// 5 easy questions; the hard one is above the ceiling.
	if s.Total() != 5 {
		t.Errorf("expected 5 questions, got %d", s.Total())
	}
}

// TestNoEligibleQuestions checks the expected-empty path: a nil session,
// not an error.
func TestNoEligibleQuestions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	scoring := DefaultTuning().Scoring

	if s := NewSession(testBank(), "astrology", DifficultyHard, 3, scoring, nil, rng, time.Now()); s != nil {
		t.Error("expected nil session for unknown category")
	}

	onlyHard := Bank{"x": {{Prompt: "q", Difficulty: DifficultyHard, Choices: []string{"a"}}}}
	if s := NewSession(onlyHard, "x", DifficultyEasy, 3, scoring, nil, rng, time.Now()); s != nil {
		t.Error("expected nil session when every question is above the ceiling")
	}
}

// TestAnswerScenario runs the canonical 3-question session: correct,
// correct, wrong with easy-tier scoring (reward 10, penalty 5).
func TestAnswerScenario(t *testing.T) {
	wallet := NewLedger(25)
	s := newTestSession(t, 3, wallet, 7)

	wantStreak := []int{1, 2, 0}
	wantBonus := []int{0, 10, 0}
	answers := []bool{true, true, false}

	for i, correct := range answers {
		q := s.Current()
		if q == nil {
			t.Fatalf("no current question at index %d", i)
		}
		choice := q.CorrectIndex
		if !correct {
			choice = (q.CorrectIndex + 1) % len(q.Choices)
		}
		res := s.Answer(choice)
		if res == nil {
			t.Fatalf("unexpected nil result at index %d", i)
		}
		if s.Streak() != wantStreak[i] {
			t.Errorf("answer %d: expected streak %d, got %d", i, wantStreak[i], s.Streak())
		}
		if res.StreakBonus != wantBonus[i] {
			t.Errorf("answer %d: expected streak bonus %d, got %d", i, wantBonus[i], res.StreakBonus)
		}
	}

	sum := s.Summarize(time.Unix(1090, 0))
	if sum.Correct != 2 {
		t.Errorf("expected 2 correct, got %d", sum.Correct)
	}
	if sum.Grade != "C" {
		t.Errorf("expected grade C for 2/3, got %s", sum.Grade)
	}
	if sum.MaxStreak != 2 {
		t.Errorf("expected max streak 2, got %d", sum.MaxStreak)
	}
	if sum.Elapsed != 90*time.Second {
		t.Errorf("expected 90s elapsed, got %s", sum.Elapsed)
	}

	// Rewards: 10, then 10+10 bonus, then -5 penalty.
	if got := wallet.Balance(); got != 25+10+20-5 {
		t.Errorf("expected balance 50, got %d", got)
	}
	if got := len(wallet.History()); got != 3 {
		t.Errorf("expected 3 wallet transactions, got %d", got)
	}
}

// TestStreakLaw: after a reset, two consecutive correct answers never earn
// more than the streak-2 bonus.
func TestStreakLaw(t *testing.T) {
	s := newTestSession(t, 5, nil, 3)

	wrong := func() *Result {
		q := s.Current()
		return s.Answer((q.CorrectIndex + 1) % len(q.Choices))
	}
	right := func() *Result {
		return s.Answer(s.Current().CorrectIndex)
	}

	wrong()
	if s.Streak() != 0 {
		t.Fatalf("expected streak reset to 0, got %d", s.Streak())
	}
	r1 := right()
	r2 := right()
	if r1.StreakBonus != 0 {
		t.Errorf("first correct after reset should carry no bonus, got %d", r1.StreakBonus)
	}
	if r2.StreakBonus > 10 {
		t.Errorf("second correct after reset exceeded the streak-2 bonus: %d", r2.StreakBonus)
	}
}

// TestPerfectStreak checks the bonus ladder and the perfect flag on a
// 5-for-5 run.
func TestPerfectStreak(t *testing.T) {
	s := newTestSession(t, 5, nil, 11)

	wantBonus := []int{0, 10, 25, 25, 50}
	for i := 0; i < 5; i++ {
		res := s.Answer(s.Current().CorrectIndex)
		if res.StreakBonus != wantBonus[i] {
			t.Errorf("answer %d: expected bonus %d, got %d", i, wantBonus[i], res.StreakBonus)
		}
		wantPerfect := i >= 2
		if res.Perfect != wantPerfect {
			t.Errorf("answer %d: expected perfect=%v", i, wantPerfect)
		}
	}
	sum := s.Summarize(time.Now())
	if sum.MaxStreak != 5 {
		t.Errorf("expected max streak 5, got %d", sum.MaxStreak)
	}
	if sum.Grade != "A+" {
		t.Errorf("expected grade A+, got %s", sum.Grade)
	}
}

// TestAnswerAfterComplete checks that a finished session ignores further
// answers.
func TestAnswerAfterComplete(t *testing.T) {
	wallet := NewLedger(100)
	s := newTestSession(t, 2, wallet, 5)

	s.Answer(s.Current().CorrectIndex)
	s.Answer(s.Current().CorrectIndex)
	if !s.Complete() {
		t.Fatal("session should be complete")
	}

	txs := len(wallet.History())
	if res := s.Answer(0); res != nil {
		t.Error("answering a complete session should return nil")
	}
	if s.Index() != 2 {
		t.Errorf("index moved past total: %d", s.Index())
	}
	if len(wallet.History()) != txs {
		t.Error("answering a complete session touched the wallet")
	}
	if s.Current() != nil {
		t.Error("complete session should have no current question")
	}
}

func TestAnswerOnNilSessionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("answering a nil session should panic")
		}
	}()
	var s *Session
	s.Answer(0)
}

// TestPenaltyClampedToBalance checks that the recorded points lost reflect
// the clamped debit, not the nominal penalty.
func TestPenaltyClampedToBalance(t *testing.T) {
	wallet := NewLedger(3)
	s := newTestSession(t, 1, wallet, 9)

	q := s.Current()
	res := s.Answer((q.CorrectIndex + 1) % len(q.Choices))
	if res.PointsLost != 3 {
		t.Errorf("expected points lost clamped to 3, got %d", res.PointsLost)
	}
	if wallet.Balance() != 0 {
		t.Errorf("expected balance 0, got %d", wallet.Balance())
	}
}

func TestGradeBoundaries(t *testing.T) {
	cases := []struct {
		rate float64
		want string
	}{
		{1.0, "A+"},
		{0.90, "A+"},
		{0.8999, "A"},
		{0.80, "A"},
		{0.70, "B"},
		{2.0 / 3.0, "C"},
		{0.60, "C"},
		{0.50, "D"},
		{0.4999, "F"},
		{0.0, "F"},
	}
	for _, c := range cases {
		if got := gradeFor(c.rate); got != c.want {
			t.Errorf("gradeFor(%v) = %s, want %s", c.rate, got, c.want)
		}
	}
}

func TestNextDifficulty(t *testing.T) {
	if got := NextDifficulty(DifficultyEasy, 0.9); got != DifficultyMedium {
		t.Errorf("expected rise to medium, got %s", got)
	}
	if got := NextDifficulty(DifficultyMedium, 0.2); got != DifficultyEasy {
		t.Errorf("expected fall to easy, got %s", got)
	}
	if got := NextDifficulty(DifficultyMedium, 0.5); got != DifficultyMedium {
		t.Errorf("expected unchanged medium, got %s", got)
	}
	if got := NextDifficulty(DifficultyHard, 1.0); got != DifficultyHard {
		t.Errorf("expected clamp at hard, got %s", got)
	}
	if got := NextDifficulty(DifficultyEasy, 0.0); got != DifficultyEasy {
		t.Errorf("expected clamp at easy, got %s", got)
	}
}

func TestSeedQuestionBank(t *testing.T) {
	bank := SeedQuestionBank()
	if len(bank.Categories()) == 0 {
		t.Fatal("seed bank is empty")
	}
	for cat, qs := range bank {
		for _, q := range qs {
			if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Choices) {
				t.Errorf("%s: %q has correct index %d outside its %d choices",
					cat, q.Prompt, q.CorrectIndex, len(q.Choices))
			}
			if q.Category != cat {
				t.Errorf("%s: %q carries category %q", cat, q.Prompt, q.Category)
			}
			if q.Difficulty < DifficultyEasy || q.Difficulty > DifficultyHard {
				t.Errorf("%s: %q has difficulty %d outside the tier range", cat, q.Prompt, q.Difficulty)
			}
		}
	}
}
