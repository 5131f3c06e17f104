package server

import (
	"CoinQuest/internal/dialogue"
	"CoinQuest/internal/game"
)

type optionDTO struct {
	Label   string `json:"label"`
	Tooltip string `json:"tooltip,omitempty"`
	Valence string `json:"valence,omitempty"`
	Points  int    `json:"points,omitempty"`
}

// nodeDTO is one rendered conversation turn.
type nodeDTO struct {
	NPC      string      `json:"npc"`
	NodeID   string      `json:"node_id"`
	Speaker  string      `json:"speaker"`
	Text     string      `json:"text"`
	Greeting string      `json:"greeting,omitempty"` // mood-flavored, root node only
	MoodTag  string      `json:"mood_tag,omitempty"`
	Mood     string      `json:"mood"` // NPC's current mood toward this player
	Options  []optionDTO `json:"options"`
}

type quizQuestionDTO struct {
	Category   string   `json:"category"`
	Difficulty string   `json:"difficulty"`
	Index      int      `json:"index"`
	Total      int      `json:"total"`
	Prompt     string   `json:"prompt"`
	Choices    []string `json:"choices"`
	Hint       string   `json:"hint,omitempty"`
}

type quizFeedbackDTO struct {
	Correct       bool   `json:"correct"`
	PointsEarned  int    `json:"points_earned"`
	PointsLost    int    `json:"points_lost"`
	StreakBonus   int    `json:"streak_bonus"`
	Streak        int    `json:"streak"`
	Perfect       bool   `json:"perfect"`
	Feedback      string `json:"feedback"`
	Encouragement string `json:"encouragement"`
	Tip           string `json:"tip,omitempty"`
	Remark        string `json:"remark,omitempty"` // NPC personality flavor
}

type quizSummaryDTO struct {
	Total          int     `json:"total"`
	Correct        int     `json:"correct"`
	Points         int     `json:"points"`
	MaxStreak      int     `json:"max_streak"`
	SuccessRate    float64 `json:"success_rate"`
	Grade          string  `json:"grade"`
	ElapsedSeconds float64 `json:"elapsed_s"`
	NextDifficulty string  `json:"next_difficulty"`
}

type walletDTO struct {
	Balance     int `json:"balance"`
	CoinsEarned int `json:"coins_earned"`
	CoinsLost   int `json:"coins_lost"`
	QuizScore   int `json:"quiz_score"`
}

type transactionDTO struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Amount      int    `json:"amount"`
	Description string `json:"description"`
	At          string `json:"at"`
}

type taskDTO = game.Task

func tasksView(b *game.TaskBoard) []taskDTO {
	return b.Tasks()
}

func walletView(l *game.Ledger) walletDTO {
	return walletDTO{
		Balance:     l.Balance(),
		CoinsEarned: l.CoinsEarned(),
		CoinsLost:   l.CoinsLost(),
		QuizScore:   l.QuizScore(),
	}
}

func nodeView(npc string, node *dialogue.Node, mood game.Mood, greeting string) nodeDTO {
	opts := make([]optionDTO, 0, len(node.Options))
	for _, o := range node.Options {
		opts = append(opts, optionDTO{
			Label:   o.Label,
			Tooltip: o.Tooltip,
			Valence: o.Valence,
			Points:  o.Points,
		})
	}
	return nodeDTO{
		NPC:      npc,
		NodeID:   string(node.ID),
		Speaker:  node.Speaker,
		Text:     node.Text,
		Greeting: greeting,
		MoodTag:  node.MoodTag,
		Mood:     string(mood),
		Options:  opts,
	}
}

func questionView(s *game.Session) quizQuestionDTO {
	q := s.Current()
	return quizQuestionDTO{
		Category:   s.Category,
		Difficulty: q.Difficulty.String(),
		Index:      s.Index(),
		Total:      s.Total(),
		Prompt:     q.Prompt,
		Choices:    q.Choices,
		Hint:       q.Hint,
	}
}

func summaryView(sum game.Summary, next game.Difficulty) quizSummaryDTO {
	return quizSummaryDTO{
		Total:          sum.Total,
		Correct:        sum.Correct,
		Points:         sum.Points,
		MaxStreak:      sum.MaxStreak,
		SuccessRate:    sum.SuccessRate,
		Grade:          sum.Grade,
		ElapsedSeconds: sum.Elapsed.Seconds(),
		NextDifficulty: next.String(),
	}
}
