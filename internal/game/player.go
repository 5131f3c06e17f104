package game

import (
	"sync"

	"CoinQuest/internal/dialogue"
)

// Player is one child's account record: the wallet the engines mutate, the
// task board the guardian resolves, per-NPC personality state, and the
// single-owner conversation and quiz cursors.
//
// Mu guards the conversation and quiz cursors against overlapping messages
// from the player's connection. The wallet and task board carry their own
// locks because the guardian flow reaches them from another goroutine.
type Player struct {
	ID     string
	Name   string
	Wallet *Ledger
	Board  *TaskBoard

	Mu      sync.Mutex
	Convo   *dialogue.Conversation
	Quiz    *Session
	QuizNPC string // NPC that started the active quiz; owns the flavor text
	moods   map[string]*Personality
}

// MoodFor returns the player's personality state for an NPC, creating it on
// first contact. Callers hold p.Mu.
func (p *Player) MoodFor(npc string) *Personality {
	if p.moods == nil {
		p.moods = map[string]*Personality{}
	}
	m, ok := p.moods[npc]
	if !ok {
		m = NewPersonality(npc)
		p.moods[npc] = m
	}
	return m
}

// Hub holds every player in the world, keyed by ID. Lookups lazily create
// the account so a reconnecting client lands on its existing wallet.
type Hub struct {
	mu              sync.Mutex
	players         map[string]*Player
	startingBalance int
}

// NewHub creates an empty hub whose new players start with the given
// balance.
func NewHub(startingBalance int) *Hub {
	return &Hub{
		players:         map[string]*Player{},
		startingBalance: startingBalance,
	}
}

// GetPlayer returns the player with the given ID, creating the account on
// first sight. The name is only applied on creation.
func (h *Hub) GetPlayer(id, name string) *Player {
	h.mu.Lock()
	defer h.mu.Unlock()
	p, ok := h.players[id]
	if !ok {
		p = &Player{
			ID:     id,
			Name:   name,
			Wallet: NewLedger(h.startingBalance),
			Board:  NewTaskBoard(),
		}
		h.players[id] = p
	}
	return p
}

// FindPlayer returns an existing player or nil. Guardian connections use
// this so a typo'd child ID doesn't silently mint an account.
func (h *Hub) FindPlayer(id string) *Player {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.players[id]
}

// PlayerCount returns how many accounts exist.
func (h *Hub) PlayerCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.players)
}
