package dialogue

import (
	"reflect"
	"testing"
)

// recorder captures fired effects in order. Nodes in these tests carry log
// effects as hook markers: "enter:<id>", "exit:<id>", "select:<id>".
type recorder struct {
	events []string
}

func (r *recorder) Apply(npc string, node *Node, e Effect) {
	r.events = append(r.events, e.Message)
}

func marked(id NodeID, options ...Option) *Node {
	return &Node{
		ID:      id,
		OnEnter: []Effect{{Kind: EffectLog, Message: "enter:" + string(id)}},
		OnExit:  []Effect{{Kind: EffectLog, Message: "exit:" + string(id)}},
		Options: options,
	}
}

func selectMark(id NodeID, target NodeID) Option {
	return Option{
		Label:    "opt",
		Target:   target,
		OnSelect: []Effect{{Kind: EffectLog, Message: "select:" + string(id)}},
	}
}

func mustGraph(t *testing.T, root NodeID, nodes []*Node) *Graph {
	t.Helper()
	g, err := NewGraph("npc", root, nodes)
	if err != nil {
		t.Fatalf("NewGraph failed: %v", err)
	}
	return g
}

// TestHookOrder checks the contract: onSelect, then onExit of the current
// node, then onEnter of the target.
func TestHookOrder(t *testing.T) {
	g := mustGraph(t, "a", []*Node{
		marked("a", selectMark("a", "b")),
		marked("b", selectMark("b", "")),
	})
	rec := &recorder{}
	c := NewConversation(g, rec)

	node := c.Start()
	if node.ID != "a" {
		t.Fatalf("expected root a, got %s", node.ID)
	}
	next := c.SelectOption(0)
	if next.ID != "b" {
		t.Fatalf("expected b, got %s", next.ID)
	}

	want := []string{"enter:a", "select:a", "exit:a", "enter:b"}
	if !reflect.DeepEqual(rec.events, want) {
		t.Errorf("hook order %v, want %v", rec.events, want)
	}
}

// TestReentrancyOverCycle walks root -> menu -> topicA -> menu -> topicB ->
// root and asserts no node's onEnter ever fires twice without the previous
// node's onExit in between.
func TestReentrancyOverCycle(t *testing.T) {
	g := mustGraph(t, "root", []*Node{
		marked("root", selectMark("root", "menu")),
		marked("menu", selectMark("menu", "topicA"), selectMark("menu", "topicB")),
		marked("topicA", selectMark("topicA", "menu")),
		marked("topicB", selectMark("topicB", "root")),
	})
	rec := &recorder{}
	c := NewConversation(g, rec)

	c.Start()          // root
	c.SelectOption(0)  // -> menu
	c.SelectOption(0)  // -> topicA
	c.SelectOption(0)  // -> menu again
	c.SelectOption(1)  // -> topicB
	c.SelectOption(0)  // -> root again

	// Replay the marker stream: between any two enters, the first node's
	// exit must appear.
	var active string
	for _, ev := range rec.events {
		switch {
		case len(ev) > 6 && ev[:6] == "enter:":
			if active != "" {
				t.Fatalf("enter:%s fired while %s still active (no exit seen): %v", ev[6:], active, rec.events)
			}
			active = ev[6:]
		case len(ev) > 5 && ev[:5] == "exit:":
			if active != ev[5:] {
				t.Fatalf("exit:%s fired but active node was %q: %v", ev[5:], active, rec.events)
			}
			active = ""
		}
	}
	if active != "root" {
		t.Errorf("expected traversal to finish on root, finished on %q", active)
	}

	// The shared menu node was entered twice, legitimately.
	enters := 0
	for _, ev := range rec.events {
		if ev == "enter:menu" {
			enters++
		}
	}
	if enters != 2 {
		t.Errorf("expected menu entered twice, got %d", enters)
	}
}

// TestNilTargetEndsConversation: an empty target is the designed way to end,
// not an error. The option's onSelect and the node's onExit still fire; no
// onEnter follows.
func TestNilTargetEndsConversation(t *testing.T) {
	g := mustGraph(t, "a", []*Node{
		marked("a", selectMark("a", "")),
	})
	rec := &recorder{}
	c := NewConversation(g, rec)

	c.Start()
	if next := c.SelectOption(0); next != nil {
		t.Errorf("expected nil node after terminal option, got %s", next.ID)
	}
	if c.Active() {
		t.Error("conversation should be inactive")
	}
	want := []string{"enter:a", "select:a", "exit:a"}
	if !reflect.DeepEqual(rec.events, want) {
		t.Errorf("events %v, want %v", rec.events, want)
	}
}

// TestEndIsIdempotent checks End fires onExit once and only once.
func TestEndIsIdempotent(t *testing.T) {
	g := mustGraph(t, "a", []*Node{marked("a", selectMark("a", ""))})
	rec := &recorder{}
	c := NewConversation(g, rec)

	c.Start()
	c.End()
	c.End()

	want := []string{"enter:a", "exit:a"}
	if !reflect.DeepEqual(rec.events, want) {
		t.Errorf("events %v, want %v", rec.events, want)
	}
	if c.Current() != nil {
		t.Error("cursor should be cleared after End")
	}
}

// TestStartOverActiveEndsFirst: restarting ends the running conversation so
// its onExit is not lost.
func TestStartOverActiveEndsFirst(t *testing.T) {
	g := mustGraph(t, "a", []*Node{marked("a", selectMark("a", ""))})
	rec := &recorder{}
	c := NewConversation(g, rec)

	c.Start()
	c.Start()

	want := []string{"enter:a", "exit:a", "enter:a"}
	if !reflect.DeepEqual(rec.events, want) {
		t.Errorf("events %v, want %v", rec.events, want)
	}
}

func TestSelectOutOfRangePanics(t *testing.T) {
	g := mustGraph(t, "a", []*Node{marked("a", selectMark("a", ""))})
	c := NewConversation(g, nil)
	c.Start()

	defer func() {
		if recover() == nil {
			t.Error("out-of-range option index should panic")
		}
	}()
	c.SelectOption(1)
}

func TestSelectWithoutActiveNodePanics(t *testing.T) {
	g := mustGraph(t, "a", []*Node{marked("a", selectMark("a", ""))})
	c := NewConversation(g, nil)

	defer func() {
		if recover() == nil {
			t.Error("selecting with no active node should panic")
		}
	}()
	c.SelectOption(0)
}

// TestSinkFunc exercises the function adapter.
func TestSinkFunc(t *testing.T) {
	g := mustGraph(t, "a", []*Node{marked("a", selectMark("a", ""))})
	var got []string
	c := NewConversation(g, SinkFunc(func(npc string, node *Node, e Effect) {
		got = append(got, npc+"/"+string(node.ID)+"/"+e.Message)
	}))
	c.Start()
	if len(got) != 1 || got[0] != "npc/a/enter:a" {
		t.Errorf("unexpected sink events: %v", got)
	}
}
