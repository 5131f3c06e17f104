package dialogue

import "fmt"

// SeedConversations builds the town's NPC conversations.
// Every graph is validated; a script error here is a programming mistake
// surfaced at boot.
func SeedConversations() (map[string]*Graph, error) {
	graphs := map[string]*Graph{}
	for _, build := range []func() (*Graph, error){
		bankerPenny,
		shopkeeperSam,
		mayorLumen,
	} {
		g, err := build()
		if err != nil {
			return nil, err
		}
		if _, dup := graphs[g.NPC]; dup {
			return nil, fmt.Errorf("dialogue: duplicate npc %q", g.NPC)
		}
		graphs[g.NPC] = g
	}
	return graphs, nil
}

// bankerPenny teaches saving. The menu node is shared: the lesson chain and
// the quiz offer both loop back to it.
func bankerPenny() (*Graph, error) {
	return NewGraph("penny", "greet", []*Node{
		{
			ID:      "greet",
			Speaker: "Banker Penny",
			Text: `Welcome to the Coin Bank! I'm Penny, and I keep everyone's
SmartCoins safe and growing.

What would you like to do today?`,
			MoodTag:  "warm",
			Keywords: []string{"saving", "bank"},
			OnEnter:  []Effect{{Kind: EffectSoundCue, Cue: "door_chime"}},
			Options: []Option{
				{Label: "What does a bank do?", Target: "lesson-1", Valence: "kind"},
				{Label: "Quiz me on saving!", Target: "quiz-gate", Tooltip: "Earn coins for correct answers"},
				{Label: "Claim my weekly allowance", Target: "allowance",
					OnSelect: []Effect{{Kind: EffectTransferCoins, Amount: 5, Reason: "weekly allowance"}}},
				{Label: "Goodbye, Penny!", Target: ""},
			},
		},
		{
			ID:      "lesson-1",
			Speaker: "Banker Penny",
			Text: `A bank is a safe home for money. When you leave your coins
here, nobody can lose them or nibble on them, and the bank even pays
you a little extra called interest, just for saving!`,
			MoodTag:  "warm",
			Keywords: []string{"saving", "interest"},
			Options: []Option{
				{Label: "Tell me about interest", Target: "lesson-2"},
				{Label: "Back to the counter", Target: "greet"},
			},
		},
		{
			ID:      "lesson-2",
			Speaker: "Banker Penny",
			Text: `Interest is like a thank-you gift. Save 100 coins, and next
season you might have 105 without lifting a finger. The longer you
save, the bigger the thank-you grows. Patience pays, literally!`,
			MoodTag:  "excited",
			Keywords: []string{"interest", "compound"},
			OnExit:   []Effect{{Kind: EffectLog, Message: "penny finished the interest lesson"}},
			Options: []Option{
				{Label: "I'm ready for the quiz now", Target: "quiz-gate"},
				{Label: "Back to the counter", Target: "greet"},
			},
		},
		{
			ID:      "quiz-gate",
			Speaker: "Banker Penny",
			Text: `Wonderful! Answer well and your wallet will thank you.
Get one wrong and it costs a few coins, just like a hasty purchase.

Ready?`,
			Keywords: []string{"quiz"},
			Options: []Option{
				{Label: "Let's do it!", Target: "greet",
					OnSelect: []Effect{{Kind: EffectStartQuiz, Category: "saving", Ceiling: 2}}},
				{Label: "Maybe later", Target: "greet", Valence: "neutral"},
			},
		},
		{
			ID:      "allowance",
			Speaker: "Banker Penny",
			Text: `Here you go, five shiny SmartCoins, fresh from the vault.
Will you save them or spend them? That choice is the whole game!`,
			MoodTag: "warm",
			OnEnter: []Effect{{Kind: EffectSoundCue, Cue: "coins"}},
			Options: []Option{
				{Label: "Back to the counter", Target: "greet"},
				{Label: "Goodbye, Penny!", Target: ""},
			},
		},
	})
}

// shopkeeperSam teaches spending and demonstrates purchases against the
// ledger, including the clamped-debit path when the player is broke. His
// pop-quiz question is answered inline through option effects.
func shopkeeperSam() (*Graph, error) {
	return NewGraph("sam", "greet", []*Node{
		{
			ID:      "greet",
			Speaker: "Shopkeeper Sam",
			Text: `Step right up! Sam's General Store, finest goods in town,
and free advice with every visit.

What'll it be?`,
			MoodTag:  "cheerful",
			Keywords: []string{"spending", "shop"},
			Options: []Option{
				{Label: "Any advice for a shopper?", Target: "advice"},
				{Label: "Buy a honey biscuit (3 coins)", Target: "purchase", Valence: "risky", Points: -3,
					OnSelect: []Effect{{Kind: EffectTransferCoins, Amount: -3, Reason: "honey biscuit"}}},
				{Label: "Give me your pop quiz!", Target: "pop-quiz"},
				{Label: "Take the spending quiz", Target: "greet",
					Tooltip:  "A full graded session",
					OnSelect: []Effect{{Kind: EffectStartQuiz, Category: "spending", Ceiling: 3}}},
				{Label: "See you around, Sam", Target: ""},
			},
		},
		{
			ID:      "advice",
			Speaker: "Shopkeeper Sam",
			Text: `Rule one of shopping: sleep on it! If you still want the
thing tomorrow, it might be worth your coins. If you forgot about it
by breakfast... well, your wallet just dodged an impulse buy.`,
			Keywords: []string{"impulse", "waiting"},
			Options: []Option{
				{Label: "Good tip! What else?", Target: "advice-2"},
				{Label: "Back to browsing", Target: "greet"},
			},
		},
		{
			ID:      "advice-2",
			Speaker: "Shopkeeper Sam",
			Text: `Rule two: compare before you buy. Same biscuit, two bakeries,
two prices. The coins you don't spend are coins you've earned!`,
			Keywords: []string{"compare", "price"},
			Options: []Option{
				{Label: "Back to browsing", Target: "greet"},
			},
		},
		{
			ID:      "pop-quiz",
			Speaker: "Shopkeeper Sam",
			Text: `Quick one, no pressure: a toy costs 10 coins here and 7 coins
at the market square. Where does a smart spender buy it?`,
			Keywords: []string{"compare"},
			OnEnter:  []Effect{{Kind: EffectStartQuiz, Category: "comparing", Ceiling: 1, Count: 1}},
			Options: []Option{
				{Label: "Here, of course!", Target: "greet",
					OnSelect: []Effect{{Kind: EffectAnswerQuiz, Choice: 0}}},
				{Label: "The market square", Target: "greet",
					OnSelect: []Effect{{Kind: EffectAnswerQuiz, Choice: 1}}},
			},
		},
		{
			ID:      "purchase",
			Speaker: "Shopkeeper Sam",
			Text: `One honey biscuit, coming up! Sweetest deal in town.
Remember: treats are fine, as long as they fit the budget.`,
			OnEnter: []Effect{{Kind: EffectSoundCue, Cue: "purchase"}},
			Options: []Option{
				{Label: "Back to browsing", Target: "greet"},
				{Label: "That's all for today", Target: ""},
			},
		},
	})
}

// mayorLumen covers budgeting and earning, and points the player at the
// guardian task board for real-world earnings.
func mayorLumen() (*Graph, error) {
	return NewGraph("lumen", "greet", []*Node{
		{
			ID:      "greet",
			Speaker: "Mayor Lumen",
			Text: `Ah, our town's brightest saver! A good town runs on a good
budget, and so does a good adventurer.

What brings you to the town hall?`,
			MoodTag:  "stately",
			Keywords: []string{"budgeting", "earning"},
			Options: []Option{
				{Label: "How do budgets work?", Target: "lesson-budget"},
				{Label: "How can I earn more coins?", Target: "lesson-earn"},
				{Label: "Test me on budgeting", Target: "greet",
					OnSelect: []Effect{{Kind: EffectStartQuiz, Category: "budgeting", Ceiling: 3}}},
				{Label: "Test me on earning", Target: "greet",
					OnSelect: []Effect{{Kind: EffectStartQuiz, Category: "earning", Ceiling: 2}}},
				{Label: "Farewell, Mayor", Target: ""},
			},
		},
		{
			ID:      "lesson-budget",
			Speaker: "Mayor Lumen",
			Text: `A budget is a promise you make to your future self: this much
for needs, this much for fun, this much set aside. The town splits its
coins the same way, roads before ribbons, as we say.`,
			Keywords: []string{"budget", "needs", "wants"},
			Options: []Option{
				{Label: "Back to the hall", Target: "greet"},
			},
		},
		{
			ID:      "lesson-earn",
			Speaker: "Mayor Lumen",
			Text: `Honest work, my friend! Check your task board, your guardian
posts real chores there, and approved work pays real SmartCoins.
A raked yard today is a rainy-day fund tomorrow.`,
			Keywords: []string{"earning", "tasks"},
			OnExit:   []Effect{{Kind: EffectLog, Message: "lumen pointed the player at the task board"}},
			Options: []Option{
				{Label: "Back to the hall", Target: "greet"},
				{Label: "I'll go check it now!", Target: ""},
			},
		},
	})
}
