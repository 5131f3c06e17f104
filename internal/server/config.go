package server

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"CoinQuest/internal/game"
)

type tierConfig struct {
	Reward  *int `json:"reward"`
	Penalty *int `json:"penalty"`
}

type tuningConfig struct {
	StartingBalance  *int        `json:"startingBalance"`
	QuestionsPerQuiz *int        `json:"questionsPerQuiz"`
	Easy             *tierConfig `json:"easy"`
	Medium           *tierConfig `json:"medium"`
	Hard             *tierConfig `json:"hard"`
}

type worldConfig struct {
	Tuning *tuningConfig `json:"tuning"`
}

// TuningOverrides represents optional command-line overrides for the
// gameplay constants.
type TuningOverrides struct {
	StartingBalance  *int
	QuestionsPerQuiz *int
}

func (o TuningOverrides) apply(base game.Tuning) game.Tuning {
	if o.StartingBalance != nil {
		base.StartingBalance = *o.StartingBalance
	}
	if o.QuestionsPerQuiz != nil {
		base.QuestionsPerQuiz = *o.QuestionsPerQuiz
	}
	return game.SanitizeTuning(base)
}

func mergeTier(base game.TierScoring, cfg *tierConfig) game.TierScoring {
	if cfg == nil {
		return base
	}
	if cfg.Reward != nil {
		base.Reward = *cfg.Reward
	}
	if cfg.Penalty != nil {
		base.Penalty = *cfg.Penalty
	}
	return base
}

func mergeTuningConfig(base game.Tuning, cfg *tuningConfig) game.Tuning {
	if cfg == nil {
		return base
	}
	if cfg.StartingBalance != nil {
		base.StartingBalance = *cfg.StartingBalance
	}
	if cfg.QuestionsPerQuiz != nil {
		base.QuestionsPerQuiz = *cfg.QuestionsPerQuiz
	}
	base.Scoring[game.DifficultyEasy] = mergeTier(base.Scoring[game.DifficultyEasy], cfg.Easy)
	base.Scoring[game.DifficultyMedium] = mergeTier(base.Scoring[game.DifficultyMedium], cfg.Medium)
	base.Scoring[game.DifficultyHard] = mergeTier(base.Scoring[game.DifficultyHard], cfg.Hard)
	return game.SanitizeTuning(base)
}

func loadTuningFromFile(path string, base game.Tuning) (game.Tuning, error) {
	if path == "" {
		return game.SanitizeTuning(base), nil
	}
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return game.SanitizeTuning(base), nil
		}
		return game.SanitizeTuning(base), fmt.Errorf("read tuning config %q: %w", cleanPath, err)
	}
	var cfg worldConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return game.SanitizeTuning(base), fmt.Errorf("parse tuning config %q: %w", cleanPath, err)
	}
	return mergeTuningConfig(base, cfg.Tuning), nil
}
