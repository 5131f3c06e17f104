package dialogue

import "fmt"

// Conversation drives one player's traversal of a graph. It owns the cursor
// and guarantees hook ordering:
//
//	SelectOption: option OnSelect -> current OnExit -> next OnEnter
//
// A node's OnEnter never fires twice without the previously active node's
// OnExit in between, so shared menu cycles cannot double-apply effects.
// Conversations are single-owner: one player drives one cursor, no locking.
type Conversation struct {
	graph *Graph
	sink  EffectSink
	curr  *Node
}

// NewConversation binds a validated graph to an effect sink.
// A nil sink behaves like NoOpSink.
func NewConversation(g *Graph, sink EffectSink) *Conversation {
	if sink == nil {
		sink = NoOpSink{}
	}
	return &Conversation{graph: g, sink: sink}
}

// Graph returns the conversation's graph.
func (c *Conversation) Graph() *Graph { return c.graph }

// Current returns the active node, or nil when no conversation is running.
func (c *Conversation) Current() *Node { return c.curr }

// Active reports whether a node is currently on display.
func (c *Conversation) Active() bool { return c.curr != nil }

// Start places the cursor on the root, fires its OnEnter, and returns it for
// rendering. Starting over an active conversation ends it first, so the old
// node's OnExit still runs.
func (c *Conversation) Start() *Node {
	if c.curr != nil {
		c.End()
	}
	root := c.graph.Node(c.graph.Root)
	c.curr = root
	c.fire(root, root.OnEnter)
	return root
}

// SelectOption applies the option at index i on the current node and returns
// the next node, or nil when the option ends the conversation. Calling it
// with no active node, or with an index outside the option range, is a
// caller bug and panics.
func (c *Conversation) SelectOption(i int) *Node {
	if c.curr == nil {
		panic("dialogue: select option with no active node")
	}
	node := c.curr
	if i < 0 || i >= len(node.Options) {
		panic(fmt.Sprintf("dialogue: option index %d out of range [0,%d) on node %s", i, len(node.Options), node.ID))
	}
	opt := node.Options[i]

	c.fire(node, opt.OnSelect)
	c.fire(node, node.OnExit)

	if opt.Target == "" {
		c.curr = nil
		return nil
	}
	next := c.graph.Node(opt.Target)
	c.curr = next
	c.fire(next, next.OnEnter)
	return next
}

// End force-terminates the conversation, firing the current node's OnExit.
// Idempotent: ending an already-ended conversation does nothing.
func (c *Conversation) End() {
	if c.curr == nil {
		return
	}
	node := c.curr
	c.curr = nil
	c.fire(node, node.OnExit)
}

func (c *Conversation) fire(node *Node, effects []Effect) {
	for _, e := range effects {
		c.sink.Apply(c.graph.NPC, node, e)
	}
}
