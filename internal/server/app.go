package server

import (
	"log"

	"CoinQuest/internal/dialogue"
	"CoinQuest/internal/game"
)

type AppConfig struct {
	TuningPath string
	Overrides  TuningOverrides
}

func DefaultAppConfig() AppConfig {
	return AppConfig{
		TuningPath: "configs/tuning.json",
	}
}

// App bundles the world state every connection shares: the player hub, the
// validated NPC conversation graphs, the question bank, and the tuning
// constants.
type App struct {
	hub    *game.Hub
	graphs map[string]*dialogue.Graph
	bank   game.Bank
	tuning game.Tuning
}

func resolveTuning(cfg AppConfig) game.Tuning {
	tuning := game.DefaultTuning()
	loaded, err := loadTuningFromFile(cfg.TuningPath, tuning)
	if err != nil {
		log.Printf("tuning config: %v (using defaults)", err)
	} else {
		tuning = loaded
	}
	return cfg.Overrides.apply(tuning)
}

func StartApp(addr string, cfg AppConfig) {
	tuning := resolveTuning(cfg)

	graphs, err := dialogue.SeedConversations()
	if err != nil {
		log.Fatalf("failed to build conversations: %v", err)
	}
	bank := game.SeedQuestionBank()

	totalNodes := 0
	for _, g := range graphs {
		totalNodes += g.Len()
	}
	totalQuestions := 0
	for _, cat := range bank.Categories() {
		totalQuestions += len(bank[cat])
	}
	log.Printf("world loaded: %d npcs (%d dialogue nodes), %d quiz categories (%d questions)",
		len(graphs), totalNodes, len(bank.Categories()), totalQuestions)

	app := &App{
		hub:    game.NewHub(tuning.StartingBalance),
		graphs: graphs,
		bank:   bank,
		tuning: tuning,
	}

	log.Printf("starting web server on %s (starting balance %d, %d questions per quiz)",
		addr, tuning.StartingBalance, tuning.QuestionsPerQuiz)
	startServer(app, addr)
}
