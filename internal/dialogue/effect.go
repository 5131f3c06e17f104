package dialogue

// EffectKind discriminates the tagged effect variants a node or option can
// carry. Effects are declarative data; the engine hands them to an
// EffectSink and has no idea what they do.
type EffectKind string

const (
	// EffectTransferCoins moves coins on the player's wallet. Amount is
	// signed: positive credits, negative debits (clamped by the ledger).
	EffectTransferCoins EffectKind = "transfer_coins"
	// EffectStartQuiz begins a quiz session for the player.
	EffectStartQuiz EffectKind = "start_quiz"
	// EffectAnswerQuiz submits Choice as the answer to the player's active
	// quiz session. Used by conversations that embed a question inline.
	EffectAnswerQuiz EffectKind = "answer_quiz"
	// EffectSoundCue asks the presentation layer to play a sound.
	// Fire-and-forget; the engine never waits on it.
	EffectSoundCue EffectKind = "sound_cue"
	// EffectLog emits a line to the host's log.
	EffectLog EffectKind = "log"
)

// Effect is one declarative side effect. Only the fields relevant to the
// Kind are meaningful; the rest stay zero.
type Effect struct {
	Kind EffectKind

	// transfer_coins
	Amount int
	Reason string

	// start_quiz
	Category string
	Ceiling  int // difficulty ceiling tier
	Count    int // questions to sample; 0 = host default

	// answer_quiz
	Choice int

	// sound_cue
	Cue string

	// log
	Message string
}

// EffectSink interprets effects on behalf of the host application. The
// engine calls Apply synchronously, in hook order, with the node the effect
// fired on.
type EffectSink interface {
	Apply(npc string, node *Node, e Effect)
}

// NoOpSink ignores every effect. Useful in tests and for pure previews.
type NoOpSink struct{}

func (NoOpSink) Apply(npc string, node *Node, e Effect) {}

// SinkFunc adapts a function to the EffectSink interface.
type SinkFunc func(npc string, node *Node, e Effect)

func (f SinkFunc) Apply(npc string, node *Node, e Effect) { f(npc, node, e) }
