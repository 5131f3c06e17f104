package game

// SeedQuestionBank returns the built-in financial-literacy question bank,
// organized by category. Question text stays short and concrete; the
// explanation doubles as the learning tip shown after grading.
func SeedQuestionBank() Bank {
	return Bank{
		"saving": {
			{
				Prompt:       "What does it mean to save money?",
				Choices:      []string{"Spend it all right away", "Keep some money for later", "Give it to a stranger", "Hide it and forget it"},
				CorrectIndex: 1,
				Explanation:  "Saving means setting money aside now so you can use it for something important later.",
				Category:     "saving",
				Difficulty:   DifficultyEasy,
				Keywords:     []string{"save", "later"},
				Hint:         "Think about keeping something for the future.",
			},
			{
				Prompt:       "Where is the safest place to keep your savings?",
				Choices:      []string{"Under your pillow", "In a piggy bank or savings account", "In your pocket at all times", "Buried in the garden"},
				CorrectIndex: 1,
				Explanation:  "A piggy bank at home or a savings account at a bank keeps money safe and easy to track.",
				Category:     "saving",
				Difficulty:   DifficultyEasy,
				Keywords:     []string{"bank", "safe"},
				Hint:         "Banks exist for a reason!",
			},
			{
				Prompt:       "You want a toy that costs 50 SmartCoins and you save 10 each week. How long until you can buy it?",
				Choices:      []string{"2 weeks", "5 weeks", "10 weeks", "50 weeks"},
				CorrectIndex: 1,
				Explanation:  "50 divided by 10 is 5, so saving 10 a week reaches 50 in 5 weeks.",
				Category:     "saving",
				Difficulty:   DifficultyMedium,
				Keywords:     []string{"goal", "weeks"},
				Hint:         "Divide the price by how much you save each week.",
			},
			{
				Prompt:       "What is interest on a savings account?",
				Choices:      []string{"A fee you pay the bank", "Extra money the bank pays you for saving", "A kind of tax", "The bank's opening hours"},
				CorrectIndex: 1,
				Explanation:  "Banks pay you interest: a little extra money for keeping your savings with them.",
				Category:     "saving",
				Difficulty:   DifficultyMedium,
				Keywords:     []string{"interest", "bank"},
				Hint:         "It's something the bank gives you, not takes.",
			},
			{
				Prompt:       "Why does money saved with interest grow faster over time?",
				Choices:      []string{"Banks round balances up", "Interest is paid on earlier interest too", "Coins multiply at night", "Prices always fall"},
				CorrectIndex: 1,
				Explanation:  "That's compounding: each interest payment joins your savings, so the next payment is a little bigger.",
				Category:     "saving",
				Difficulty:   DifficultyHard,
				Keywords:     []string{"compound", "interest"},
				Hint:         "Interest can earn its own interest.",
			},
		},
		"budgeting": {
			{
				Prompt:       "What is a budget?",
				Choices:      []string{"A plan for how to use your money", "A kind of wallet", "A bank machine", "A shopping list"},
				CorrectIndex: 0,
				Explanation:  "A budget is a plan that decides ahead of time how much money goes to spending, saving and sharing.",
				Category:     "budgeting",
				Difficulty:   DifficultyEasy,
				Keywords:     []string{"budget", "plan"},
				Hint:         "It's something you make before spending.",
			},
			{
				Prompt:       "Which of these is a 'need' rather than a 'want'?",
				Choices:      []string{"A new video game", "Candy", "Food for dinner", "Movie tickets"},
				CorrectIndex: 2,
				Explanation:  "Needs are things you must have to live, like food. Wants are fun extras.",
				Category:     "budgeting",
				Difficulty:   DifficultyEasy,
				Keywords:     []string{"needs", "wants"},
				Hint:         "Which one could you truly not live without?",
			},
			{
				Prompt:       "You get 20 SmartCoins a week and your budget says save half. How much do you save?",
				Choices:      []string{"5", "10", "15", "20"},
				CorrectIndex: 1,
				Explanation:  "Half of 20 is 10. Budgets often use simple shares like halves or tenths.",
				Category:     "budgeting",
				Difficulty:   DifficultyMedium,
				Keywords:     []string{"half", "allowance"},
				Hint:         "Half means divide by two.",
			},
			{
				Prompt:       "Your budget is 30 coins but the things you want cost 45. What should you do?",
				Choices:      []string{"Borrow from a friend and worry later", "Pick the most important things that fit the budget", "Buy everything anyway", "Throw away the budget"},
				CorrectIndex: 1,
				Explanation:  "When a budget is tight you prioritize: choose what matters most and wait on the rest.",
				Category:     "budgeting",
				Difficulty:   DifficultyHard,
				Keywords:     []string{"priority", "tradeoff"},
				Hint:         "A budget is only useful if you stick to it.",
			},
		},
		"spending": {
			{
				Prompt:       "What is a smart question to ask before buying something?",
				Choices:      []string{"Do I really need this?", "Is it shiny?", "Will my friends be jealous?", "Can I buy two?"},
				CorrectIndex: 0,
				Explanation:  "Pausing to ask whether you really need something stops a lot of wasted spending.",
				Category:     "spending",
				Difficulty:   DifficultyEasy,
				Keywords:     []string{"spending", "choices"},
				Hint:         "Smart spenders pause before they pay.",
			},
			{
				Prompt:       "Two shops sell the same snack: one for 4 coins, one for 6. What's the smart move?",
				Choices:      []string{"Buy the 6-coin one, it must be better", "Buy the 4-coin one and save 2 coins", "Buy both", "Buy neither, snacks are bad"},
				CorrectIndex: 1,
				Explanation:  "Comparing prices before buying is one of the easiest ways to keep more of your money.",
				Category:     "spending",
				Difficulty:   DifficultyEasy,
				Keywords:     []string{"compare", "price"},
				Hint:         "Same snack, different price, what's left over?",
			},
			{
				Prompt:       "What is an impulse buy?",
				Choices:      []string{"Something you planned for weeks", "Something you grab suddenly without thinking", "Anything that costs a lot", "A gift for someone else"},
				CorrectIndex: 1,
				Explanation:  "An impulse buy is an unplanned purchase made on the spot. Waiting a day often changes your mind.",
				Category:     "spending",
				Difficulty:   DifficultyMedium,
				Keywords:     []string{"impulse", "waiting"},
				Hint:         "It happens fast, before you think.",
			},
			{
				Prompt:       "A 'sale' sign says 50% off a 40-coin game. You only have 15 coins. What's true?",
				Choices:      []string{"You can afford it now", "You still can't afford it", "The shop will give it free", "Sales mean prices go up"},
				CorrectIndex: 1,
				Explanation:  "Half of 40 is 20, and 20 is still more than 15. A discount doesn't mean affordable.",
				Category:     "spending",
				Difficulty:   DifficultyHard,
				Keywords:     []string{"discount", "percent"},
				Hint:         "Work out the new price first.",
			},
		},
		// "comparing" backs the inline pop-quiz in Sam's dialogue: the node's
		// options hard-code choice indexes, so the category must hold exactly
		// one question and its choices must match the dialogue options.
		"comparing": {
			{
				Prompt:       "A toy costs 10 coins at Sam's and 7 coins at the market square. Where does a smart spender buy it?",
				Choices:      []string{"At Sam's, of course", "At the market square"},
				CorrectIndex: 1,
				Explanation:  "Same toy, 3 coins cheaper. Checking more than one price before buying is free money.",
				Category:     "comparing",
				Difficulty:   DifficultyEasy,
				Keywords:     []string{"compare", "price"},
				Hint:         "Same toy, two prices.",
			},
		},
		"earning": {
			{
				Prompt:       "Which of these is a way for kids to earn money?",
				Choices:      []string{"Doing chores or small jobs", "Wishing really hard", "Taking it from a sibling", "Finding a money tree"},
				CorrectIndex: 0,
				Explanation:  "Earning means trading your work or help for money, like chores, lemonade stands or yard work.",
				Category:     "earning",
				Difficulty:   DifficultyEasy,
				Keywords:     []string{"earn", "chores"},
				Hint:         "Money usually comes from doing something useful.",
			},
			{
				Prompt:       "You rake leaves for 5 coins a yard and finish 3 yards. How much did you earn?",
				Choices:      []string{"8", "12", "15", "20"},
				CorrectIndex: 2,
				Explanation:  "5 coins times 3 yards is 15 coins. Earnings grow with the work you put in.",
				Category:     "earning",
				Difficulty:   DifficultyMedium,
				Keywords:     []string{"multiply", "work"},
				Hint:         "Multiply the pay by the number of jobs.",
			},
			{
				Prompt:       "What does it mean to invest money?",
				Choices:      []string{"Hide it somewhere safe", "Use it to try to earn more money over time", "Spend it on snacks", "Give it all away"},
				CorrectIndex: 1,
				Explanation:  "Investing puts money to work so it can grow, though it takes patience and carries some risk.",
				Category:     "earning",
				Difficulty:   DifficultyHard,
				Keywords:     []string{"invest", "grow"},
				Hint:         "It's about making money work for you.",
			},
		},
	}
}
