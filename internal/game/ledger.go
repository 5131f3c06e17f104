package game

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TxType tags a ledger transaction with the gameplay event that caused it.
type TxType string

const (
	// TxQuizCorrect is a reward for a correct quiz answer (streak bonus included).
	TxQuizCorrect TxType = "quiz_correct"
	// TxQuizWrong is a penalty for a wrong quiz answer.
	TxQuizWrong TxType = "quiz_wrong"
	// TxTaskReward is a guardian-approved real-world task payout.
	TxTaskReward TxType = "task_reward"
	// TxGift is a coin grant handed out inside a conversation.
	TxGift TxType = "gift"
	// TxPurchase is a coin spend inside a conversation.
	TxPurchase TxType = "purchase"
	// TxRefund reverses a previous spend.
	TxRefund TxType = "refund"
)

// CoinTransaction is one recorded change to a wallet balance.
// Amount is signed: positive for credits, negative for debits.
// Transactions are immutable once appended.
type CoinTransaction struct {
	ID          string    `json:"id"`
	Type        TxType    `json:"type"`
	Amount      int       `json:"amount"`
	Description string    `json:"description"`
	At          time.Time `json:"at"`
}

// Ledger owns a player's SmartCoin balance and its append-only audit log.
// It is the only code allowed to change the balance, and it never lets the
// balance go below zero. Multiple conversations and the guardian task flow
// may hit the same ledger concurrently, so every mutation is a single
// read-modify-append unit under the mutex.
type Ledger struct {
	mu      sync.Mutex
	balance int
	log     []CoinTransaction
	clock   func() time.Time
}

// NewLedger creates a ledger with the given starting balance.
// A negative starting balance is clamped to zero.
func NewLedger(startingBalance int) *Ledger {
	if startingBalance < 0 {
		startingBalance = 0
	}
	return &Ledger{
		balance: startingBalance,
		clock:   time.Now,
	}
}

// Credit adds amount to the balance and records the transaction.
// A negative amount is a caller bug.
func (l *Ledger) Credit(amount int, typ TxType, description string) CoinTransaction {
	if amount < 0 {
		panic(fmt.Sprintf("ledger: negative credit amount %d", amount))
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balance += amount
	return l.appendLocked(amount, typ, description)
}

// Debit removes up to amount from the balance and records what was actually
// deducted. The deduction is clamped so the balance never goes negative;
// the log always reflects the real amount, not the requested one.
// A negative amount is a caller bug.
func (l *Ledger) Debit(amount int, typ TxType, description string) CoinTransaction {
	if amount < 0 {
		panic(fmt.Sprintf("ledger: negative debit amount %d", amount))
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	deducted := amount
	if deducted > l.balance {
		deducted = l.balance
	}
	l.balance -= deducted
	return l.appendLocked(-deducted, typ, description)
}

func (l *Ledger) appendLocked(signed int, typ TxType, description string) CoinTransaction {
	tx := CoinTransaction{
		ID:          uuid.New().String(),
		Type:        typ,
		Amount:      signed,
		Description: description,
		At:          l.clock(),
	}
	l.log = append(l.log, tx)
	return tx
}

// Balance returns the current balance.
func (l *Ledger) Balance() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

// History returns a copy of the transaction log in append order.
func (l *Ledger) History() []CoinTransaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]CoinTransaction, len(l.log))
	copy(out, l.log)
	return out
}

// CountByType returns how many transactions carry the given type tag.
func (l *Ledger) CountByType(typ TxType) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, tx := range l.log {
		if tx.Type == typ {
			n++
		}
	}
	return n
}

// CoinsByType returns the total coins moved by transactions of the given
// type, as a non-negative magnitude regardless of direction.
func (l *Ledger) CoinsByType(typ TxType) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	sum := 0
	for _, tx := range l.log {
		if tx.Type != typ {
			continue
		}
		if tx.Amount < 0 {
			sum -= tx.Amount
		} else {
			sum += tx.Amount
		}
	}
	return sum
}

// CoinsEarned returns the total amount ever credited.
func (l *Ledger) CoinsEarned() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	sum := 0
	for _, tx := range l.log {
		if tx.Amount > 0 {
			sum += tx.Amount
		}
	}
	return sum
}

// CoinsLost returns the total amount ever debited, as a positive number.
func (l *Ledger) CoinsLost() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	sum := 0
	for _, tx := range l.log {
		if tx.Amount < 0 {
			sum -= tx.Amount
		}
	}
	return sum
}

// QuizScore returns the percentage of graded quiz transactions that were
// correct, rounded to the nearest whole number. Zero when nothing has been
// graded yet.
func (l *Ledger) QuizScore() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	correct, wrong := 0, 0
	for _, tx := range l.log {
		switch tx.Type {
		case TxQuizCorrect:
			correct++
		case TxQuizWrong:
			wrong++
		}
	}
	total := correct + wrong
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
