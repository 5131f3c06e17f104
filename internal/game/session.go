package game

import (
	"fmt"
	"math/rand"
	"time"
)

// Result records the outcome of one answered question.
type Result struct {
	Correct       bool
	PointsEarned  int
	PointsLost    int
	StreakBonus   int
	Perfect       bool
	Feedback      string
	Encouragement string
	Tip           string
}

// Session is one timed attempt at a sampled subset of quiz questions.
// Sessions are single-owner: one player, one conversation, no locking.
// Rewards and penalties are realized against the injected wallet as each
// answer is graded.
type Session struct {
	Category  string
	Ceiling   Difficulty
	questions []Question
	index     int
	correct   int
	points    int
	streak    int
	maxStreak int
	results   []Result
	startedAt time.Time
	scoring   map[Difficulty]TierScoring
	wallet    *Ledger
}

// NewSession samples up to count questions from the category at or below the
// difficulty ceiling, without replacement, using the provided random source.
// Returns nil when no questions match, an expected condition the caller
// should render as a graceful "no quiz available" turn, not an error.
func NewSession(bank Bank, category string, ceiling Difficulty, count int, scoring map[Difficulty]TierScoring, wallet *Ledger, rng *rand.Rand, now time.Time) *Session {
	eligible := bank.Eligible(category, ceiling)
	if len(eligible) == 0 {
		return nil
	}
	if count > len(eligible) {
		count = len(eligible)
	}
	if count <= 0 {
		return nil
	}
	picked := make([]Question, 0, count)
	for _, i := range rng.Perm(len(eligible))[:count] {
		picked = append(picked, eligible[i])
	}
	return &Session{
		Category:  category,
		Ceiling:   ceiling,
		questions: picked,
		startedAt: now,
		scoring:   scoring,
		wallet:    wallet,
	}
}

// Total returns the number of questions in the session.
func (s *Session) Total() int { return len(s.questions) }

// Index returns the zero-based index of the next unanswered question.
func (s *Session) Index() int { return s.index }

// Complete reports whether every question has been answered.
func (s *Session) Complete() bool { return s.index >= len(s.questions) }

// Current returns the question awaiting an answer, or nil once complete.
func (s *Session) Current() *Question {
	if s.Complete() {
		return nil
	}
	return &s.questions[s.index]
}

// Results returns the per-question outcomes graded so far.
func (s *Session) Results() []Result {
	out := make([]Result, len(s.results))
	copy(out, s.results)
	return out
}

// Streak returns the current run of consecutive correct answers.
func (s *Session) Streak() int { return s.streak }

// Answer grades the current question against the selected choice index,
// realizes the coin change on the wallet, and advances the session.
// Returns nil if the session is already complete (a no-op, not an error).
// Answering through a nil session is a caller bug.
func (s *Session) Answer(selected int) *Result {
	if s == nil {
		panic("quiz: answer on nil session")
	}
	if s.Complete() {
		return nil
	}
	q := s.questions[s.index]
	tier := s.scoring[q.Difficulty]
	correct := selected == q.CorrectIndex

	res := Result{Correct: correct}
	if correct {
		s.streak++
		s.correct++
		res.StreakBonus = streakBonus(s.streak)
		res.PointsEarned = tier.Reward + res.StreakBonus
		res.Perfect = s.streak >= 3
		if s.wallet != nil {
			s.wallet.Credit(res.PointsEarned, TxQuizCorrect, fmt.Sprintf("correct answer: %s", q.Prompt))
		}
	} else {
		res.PointsLost = tier.Penalty
		if s.wallet != nil {
			tx := s.wallet.Debit(tier.Penalty, TxQuizWrong, fmt.Sprintf("wrong answer: %s", q.Prompt))
			res.PointsLost = -tx.Amount
		}
		s.streak = 0
	}
	if s.streak > s.maxStreak {
		s.maxStreak = s.streak
	}
	s.points += res.PointsEarned - res.PointsLost

	res.Feedback = feedbackText(correct, s.streak, q)
	res.Encouragement = encouragementText(correct, s.streak)
	res.Tip = learningTip(q)

	s.results = append(s.results, res)
	s.index++
	return &res
}

// Summary aggregates a finished (or in-progress) session for display.
type Summary struct {
	Total       int
	Correct     int
	Points      int
	MaxStreak   int
	SuccessRate float64
	Grade       string
	Elapsed     time.Duration
}

// Summarize computes the session summary as of now.
func (s *Session) Summarize(now time.Time) Summary {
	rate := 0.0
	if len(s.questions) > 0 {
		rate = float64(s.correct) / float64(len(s.questions))
	}
	return Summary{
		Total:       len(s.questions),
		Correct:     s.correct,
		Points:      s.points,
		MaxStreak:   s.maxStreak,
		SuccessRate: rate,
		Grade:       gradeFor(rate),
		Elapsed:     now.Sub(s.startedAt),
	}
}

func feedbackText(correct bool, streak int, q Question) string {
	if !correct {
		right := ""
		if q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Choices) {
			right = q.Choices[q.CorrectIndex]
		}
		return fmt.Sprintf("Not quite! The answer was: %s", right)
	}
	switch {
	case streak >= 5:
		return "Unstoppable! That's a legendary streak!"
	case streak >= 3:
		return "Correct again, you're on fire!"
	case streak >= 2:
		return "Correct! Two in a row!"
	}
	return "Correct! Nice work."
}

func encouragementText(correct bool, streak int) string {
	if correct {
		if streak >= 3 {
			return "Keep the streak alive!"
		}
		return "You're getting the hang of this."
	}
	return "Don't worry, every mistake is a chance to learn."
}

func learningTip(q Question) string {
	if q.Explanation != "" {
		return q.Explanation
	}
	return q.Hint
}
