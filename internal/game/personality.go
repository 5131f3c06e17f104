package game

import "fmt"

// Mood is an NPC's discrete emotional state, derived from how the player has
// been doing on that NPC's quizzes.
type Mood string

const (
	MoodExcited    Mood = "excited"
	MoodHappy      Mood = "happy"
	MoodContent    Mood = "content"
	MoodConcerned  Mood = "concerned"
	MoodFrustrated Mood = "frustrated"
)

// Personality tracks one NPC's mood and per-topic affinity for a single
// player. It is pure in-memory flavor state: it never touches the ledger or
// the dialogue graph, only the text shown to the player.
type Personality struct {
	NPC      string
	mood     Mood
	affinity map[string]float64
	answered int
	correct  int
}

// NewPersonality creates a personality in the neutral starting mood.
func NewPersonality(npc string) *Personality {
	return &Personality{
		NPC:      npc,
		mood:     MoodContent,
		affinity: map[string]float64{},
	}
}

// RecordOutcome nudges the topic affinity and recomputes the mood from the
// rolling success rate. Correct answers nudge affinity up by 0.1, wrong ones
// down by 0.05, clamped to [0, 1].
func (p *Personality) RecordOutcome(topic string, correct bool) {
	delta := -0.05
	if correct {
		delta = 0.1
		p.correct++
	}
	p.answered++

	a := p.affinity[topic] + delta
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	p.affinity[topic] = a

	rate := float64(p.correct) / float64(p.answered)
	switch {
	case rate > 0.8:
		p.mood = MoodExcited
	case rate > 0.6:
		p.mood = MoodHappy
	case rate > 0.4:
		p.mood = MoodContent
	case rate > 0.2:
		p.mood = MoodConcerned
	default:
		p.mood = MoodFrustrated
	}
}

// Mood returns the current mood.
func (p *Personality) Mood() Mood { return p.mood }

// Affinity returns the preference score for a topic, zero if never seen.
func (p *Personality) Affinity(topic string) float64 { return p.affinity[topic] }

// Greeting returns a mood-flavored greeting line. Pure function of state.
func (p *Personality) Greeting() string {
	switch p.mood {
	case MoodExcited:
		return fmt.Sprintf("%s beams at you. \"There's my star student!\"", p.NPC)
	case MoodHappy:
		return fmt.Sprintf("%s smiles warmly. \"Good to see you again!\"", p.NPC)
	case MoodConcerned:
		return fmt.Sprintf("%s looks thoughtful. \"Let's take it slow today, okay?\"", p.NPC)
	case MoodFrustrated:
		return fmt.Sprintf("%s sighs gently. \"Everyone has rough days. Let's try again together.\"", p.NPC)
	}
	return fmt.Sprintf("%s nods. \"Hello there, ready to learn?\"", p.NPC)
}

// TopicRemark returns a flavor line about the latest outcome on a topic.
// Pure function of state; safe to call repeatedly.
func (p *Personality) TopicRemark(topic string, correct bool) string {
	a := p.affinity[topic]
	if correct {
		if a > 0.7 {
			return fmt.Sprintf("\"You really have a gift for %s questions!\"", topic)
		}
		return fmt.Sprintf("\"See? %s isn't so scary after all.\"", topic)
	}
	if a < 0.3 {
		return fmt.Sprintf("\"We'll spend some extra time on %s, no rush.\"", topic)
	}
	return fmt.Sprintf("\"A small stumble, you usually do well with %s.\"", topic)
}
