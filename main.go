package main

import (
	"flag"

	"CoinQuest/internal/server"
)

func main() {
	addr := flag.String("addr", ":8080", "address to listen on (e.g., 127.0.0.1:8080)")
	tuningPath := flag.String("tuning-config", "configs/tuning.json", "path to gameplay tuning JSON")
	startingBalance := flag.Int("starting-balance", -1, "override starting SmartCoin balance for new players")
	questionsPerQuiz := flag.Int("questions", -1, "override number of questions sampled per quiz")
	flag.Parse()

	cfg := server.DefaultAppConfig()
	cfg.TuningPath = *tuningPath

	var overrides server.TuningOverrides
	if *startingBalance >= 0 {
		overrides.StartingBalance = startingBalance
	}
	if *questionsPerQuiz > 0 {
		overrides.QuestionsPerQuiz = questionsPerQuiz
	}
	cfg.Overrides = overrides

	server.StartApp(*addr, cfg)
}
