package server

import (
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"sort"
	"sync"
	"time"

	"CoinQuest/internal/dialogue"
	"CoinQuest/internal/game"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type outboundMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// wsClient wraps a connection with a write lock: the guardian-side task flow
// and fire-and-forget sound cues can race the main reply path.
type wsClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsClient) send(typ string, payload any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.WriteJSON(outboundMessage{Type: typ, Payload: payload}); err != nil {
		log.Printf("ws send %s: %v", typ, err)
	}
}

func (c *wsClient) sendError(msg string) {
	c.send("error", map[string]string{"message": msg})
}

// wsSession is the per-connection state: which player account it operates on
// and whether it is the child or the guardian side.
type wsSession struct {
	app    *App
	c      *wsClient
	player *game.Player
	role   string // "child" or "guardian"
}

func serveWS(app *App, w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	playerID := q.Get("player")
	name := q.Get("name")
	role := q.Get("role")
	if role == "" {
		role = "child"
	}
	if playerID == "" {
		http.Error(w, "missing player id", http.StatusBadRequest)
		return
	}

	var player *game.Player
	if role == "guardian" {
		// Guardians attach to an existing child account; a typo must not
		// mint a fresh wallet.
		player = app.hub.FindPlayer(playerID)
		if player == nil {
			http.Error(w, "unknown player", http.StatusNotFound)
			return
		}
	} else {
		player = app.hub.GetPlayer(playerID, name)
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade: %v", err)
		return
	}
	defer conn.Close()

	sess := &wsSession{app: app, c: &wsClient{conn: conn}, player: player, role: role}
	log.Printf("ws connect: player=%s role=%s", player.ID, role)

	sess.sendJoined()

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			log.Printf("ws disconnect: player=%s role=%s: %v", player.ID, role, err)
			return
		}
		if msgType != websocket.TextMessage {
			log.Printf("unsupported ws message type %d", msgType)
			continue
		}
		var inbound inboundMessage
		if err := json.Unmarshal(data, &inbound); err != nil {
			log.Printf("invalid JSON message: %v", err)
			continue
		}
		sess.dispatch(inbound)
	}
}

// allowed reports whether this connection's role may send the message type.
// Guardians watch the account and manage tasks; driving the child's
// conversation or quiz from a second connection would race the child's own.
func (s *wsSession) allowed(msgType string) bool {
	if s.role != "guardian" {
		return true
	}
	switch msgType {
	case "npc:talk", "npc:choose", "npc:end", "quiz:answer":
		return false
	}
	return true
}

func (s *wsSession) dispatch(msg inboundMessage) {
	if !s.allowed(msg.Type) {
		s.c.sendError("guardian connections cannot play as the child")
		return
	}
	switch msg.Type {
	case "npc:list":
		s.sendNPCList()
	case "npc:talk":
		var p struct {
			NPC string `json:"npc"`
		}
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			s.c.sendError("invalid npc:talk payload")
			return
		}
		s.handleTalk(p.NPC)
	case "npc:choose":
		var p struct {
			Option int `json:"option"`
		}
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			s.c.sendError("invalid npc:choose payload")
			return
		}
		s.handleChoose(p.Option)
	case "npc:end":
		s.handleEnd()
	case "quiz:answer":
		var p struct {
			Choice int `json:"choice"`
		}
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			s.c.sendError("invalid quiz:answer payload")
			return
		}
		s.player.Mu.Lock()
		s.gradeAnswerLocked(p.Choice)
		s.player.Mu.Unlock()
	case "wallet:get":
		s.c.send("wallet", walletView(s.player.Wallet))
	case "history:get":
		s.sendHistory()
	case "task:list":
		s.c.send("tasks", tasksView(s.player.Board))
	case "task:add":
		var p struct {
			Title  string `json:"title"`
			Reward int    `json:"reward"`
		}
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			s.c.sendError("invalid task:add payload")
			return
		}
		s.handleTaskAdd(p.Title, p.Reward)
	case "task:approve":
		var p struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			s.c.sendError("invalid task:approve payload")
			return
		}
		s.handleTaskResolve(p.ID, true)
	case "task:reject":
		var p struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			s.c.sendError("invalid task:reject payload")
			return
		}
		s.handleTaskResolve(p.ID, false)
	default:
		log.Printf("unknown message type: %s", msg.Type)
	}
}

func (s *wsSession) sendJoined() {
	s.c.send("joined", map[string]any{
		"player": s.player.ID,
		"name":   s.player.Name,
		"role":   s.role,
	})
	s.c.send("wallet", walletView(s.player.Wallet))
	s.c.send("tasks", tasksView(s.player.Board))
	s.sendNPCList()
}

func (s *wsSession) sendNPCList() {
	npcs := make([]string, 0, len(s.app.graphs))
	for id := range s.app.graphs {
		npcs = append(npcs, id)
	}
	sort.Strings(npcs)
	s.c.send("npcs", npcs)
}

func (s *wsSession) sendHistory() {
	history := s.player.Wallet.History()
	out := make([]transactionDTO, 0, len(history))
	for _, tx := range history {
		out = append(out, transactionDTO{
			ID:          tx.ID,
			Type:        string(tx.Type),
			Amount:      tx.Amount,
			Description: tx.Description,
			At:          tx.At.Format(time.RFC3339),
		})
	}
	s.c.send("wallet:history", out)
}

func (s *wsSession) handleTalk(npc string) {
	g, ok := s.app.graphs[npc]
	if !ok {
		s.c.sendError("unknown npc: " + npc)
		return
	}
	p := s.player
	p.Mu.Lock()
	defer p.Mu.Unlock()

	if p.Convo != nil {
		p.Convo.End()
	}
	p.Convo = dialogue.NewConversation(g, &effectSink{s: s})
	node := p.Convo.Start()
	mood := p.MoodFor(npc)
	s.c.send("npc:node", nodeView(npc, node, mood.Mood(), mood.Greeting()))
}

func (s *wsSession) handleChoose(option int) {
	p := s.player
	p.Mu.Lock()
	defer p.Mu.Unlock()

	if p.Convo == nil || !p.Convo.Active() {
		s.c.sendError("no active conversation")
		return
	}
	node := p.Convo.Current()
	// Range-check here so a misbehaving client cannot trip the engine's
	// caller-bug panic.
	if option < 0 || option >= len(node.Options) {
		s.c.sendError("option out of range")
		return
	}
	npc := p.Convo.Graph().NPC
	next := p.Convo.SelectOption(option)
	if next == nil {
		s.c.send("npc:ended", map[string]string{"npc": npc})
		return
	}
	mood := p.MoodFor(npc)
	s.c.send("npc:node", nodeView(npc, next, mood.Mood(), ""))
}

func (s *wsSession) handleEnd() {
	p := s.player
	p.Mu.Lock()
	defer p.Mu.Unlock()
	if p.Convo != nil {
		npc := p.Convo.Graph().NPC
		p.Convo.End()
		s.c.send("npc:ended", map[string]string{"npc": npc})
	}
}

// gradeAnswerLocked grades one answer against the player's active quiz.
// Callers hold p.Mu.
func (s *wsSession) gradeAnswerLocked(choice int) {
	p := s.player
	if p.Quiz == nil {
		s.c.sendError("no active quiz")
		return
	}
	if p.Quiz.Complete() {
		// Answering a finished session is a defined no-op.
		return
	}
	res := p.Quiz.Answer(choice)
	if res == nil {
		return
	}
	topic := p.Quiz.Category
	mood := p.MoodFor(p.QuizNPC)
	mood.RecordOutcome(topic, res.Correct)

	s.c.send("quiz:feedback", quizFeedbackDTO{
		Correct:       res.Correct,
		PointsEarned:  res.PointsEarned,
		PointsLost:    res.PointsLost,
		StreakBonus:   res.StreakBonus,
		Streak:        p.Quiz.Streak(),
		Perfect:       res.Perfect,
		Feedback:      res.Feedback,
		Encouragement: res.Encouragement,
		Tip:           res.Tip,
		Remark:        mood.TopicRemark(topic, res.Correct),
	})
	s.c.send("wallet", walletView(p.Wallet))

	if p.Quiz.Complete() {
		sum := p.Quiz.Summarize(time.Now())
		next := game.NextDifficulty(p.Quiz.Ceiling, sum.SuccessRate)
		s.c.send("quiz:summary", summaryView(sum, next))
		return
	}
	s.c.send("quiz:question", questionView(p.Quiz))
}

func (s *wsSession) handleTaskAdd(title string, reward int) {
	if s.role != "guardian" {
		s.c.sendError("only guardians can create tasks")
		return
	}
	s.player.Board.Add(title, reward)
	s.c.send("tasks", tasksView(s.player.Board))
}

func (s *wsSession) handleTaskResolve(id string, approve bool) {
	if s.role != "guardian" {
		s.c.sendError("only guardians can resolve tasks")
		return
	}
	var ok bool
	if approve {
		ok = s.player.Board.Approve(id, s.player.Wallet)
	} else {
		ok = s.player.Board.Reject(id)
	}
	if !ok {
		log.Printf("task resolve ignored: player=%s task=%s (not pending)", s.player.ID, id)
	}
	s.c.send("tasks", tasksView(s.player.Board))
	s.c.send("wallet", walletView(s.player.Wallet))
}

// effectSink interprets dialogue effects for one connection. Apply runs
// synchronously inside the engine's hook ordering, with p.Mu held by the
// handler that triggered the transition.
type effectSink struct {
	s *wsSession
}

func (e *effectSink) Apply(npc string, node *dialogue.Node, eff dialogue.Effect) {
	s := e.s
	p := s.player
	switch eff.Kind {
	case dialogue.EffectTransferCoins:
		if eff.Amount >= 0 {
			p.Wallet.Credit(eff.Amount, game.TxGift, eff.Reason)
		} else {
			p.Wallet.Debit(-eff.Amount, game.TxPurchase, eff.Reason)
		}
		s.c.send("wallet", walletView(p.Wallet))
	case dialogue.EffectStartQuiz:
		count := eff.Count
		if count <= 0 {
			count = s.app.tuning.QuestionsPerQuiz
		}
		ceiling := game.ClampDifficulty(game.Difficulty(eff.Ceiling))
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		quiz := game.NewSession(s.app.bank, eff.Category, ceiling, count, s.app.tuning.Scoring, p.Wallet, rng, time.Now())
		if quiz == nil {
			s.c.send("quiz:none", map[string]string{"category": eff.Category})
			return
		}
		p.Quiz = quiz
		p.QuizNPC = npc
		s.c.send("quiz:question", questionView(quiz))
	case dialogue.EffectAnswerQuiz:
		s.gradeAnswerLocked(eff.Choice)
	case dialogue.EffectSoundCue:
		// Fire-and-forget presentation hint; nothing waits on it.
		s.c.send("sound", map[string]string{"cue": eff.Cue})
	case dialogue.EffectLog:
		log.Printf("dialogue [%s/%s]: %s", npc, node.ID, eff.Message)
	default:
		log.Printf("unknown effect kind %q on node %s", eff.Kind, node.ID)
	}
}
