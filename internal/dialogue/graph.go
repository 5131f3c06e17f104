// Package dialogue implements the NPC conversation engine: a directed graph
// of nodes and options, a caller-driven traversal cursor, and declarative
// side effects interpreted by the host.
//
// The graph may contain cycles (options from many nodes legitimately point
// back at a shared menu node), so validation checks reachability from the
// root rather than acyclicity. Nodes live in an arena keyed by NodeID and
// options reference targets by ID, never by pointer.
package dialogue

import (
	"errors"
	"fmt"
)

// NodeID uniquely identifies a node within one conversation graph.
// The empty ID is reserved: an option with an empty target ends the
// conversation.
type NodeID string

// Option is one selectable response on a node. Selecting it fires its
// OnSelect effects, then moves the cursor to Target (or ends the
// conversation when Target is empty).
type Option struct {
	Label    string
	Target   NodeID
	OnSelect []Effect
	Tooltip  string
	Valence  string // "kind", "neutral", "risky"; display-only
	Points   int    // display-only point hint
}

// Node is one conversation turn: a speaker, body text, and the options
// available from it. Nodes are built once per NPC and immutable afterwards;
// only the traversal cursor moves.
type Node struct {
	ID       NodeID
	Speaker  string
	Text     string
	Options  []Option
	OnEnter  []Effect
	OnExit   []Effect
	MoodTag  string
	Keywords []string
}

// Graph is one NPC's complete conversation, validated at construction.
type Graph struct {
	NPC   string
	Root  NodeID
	nodes map[NodeID]*Node
}

var (
	// ErrMissingRoot is returned when the declared root is not in the node set.
	ErrMissingRoot = errors.New("dialogue: root node not found")
	// ErrDuplicateNode is returned when two nodes share an ID.
	ErrDuplicateNode = errors.New("dialogue: duplicate node id")
	// ErrUnknownTarget is returned when an option points at a missing node.
	ErrUnknownTarget = errors.New("dialogue: option targets unknown node")
	// ErrUnreachableNode is returned when a node cannot be reached from the root.
	ErrUnreachableNode = errors.New("dialogue: node unreachable from root")
)

// NewGraph indexes and validates a conversation. Every option target must
// exist and every node must be reachable from the root.
func NewGraph(npc string, root NodeID, nodes []*Node) (*Graph, error) {
	g := &Graph{
		NPC:   npc,
		Root:  root,
		nodes: make(map[NodeID]*Node, len(nodes)),
	}
	for _, n := range nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("dialogue: node with empty id in %q", npc)
		}
		if _, exists := g.nodes[n.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateNode, n.ID)
		}
		g.nodes[n.ID] = n
	}
	if _, ok := g.nodes[root]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingRoot, root)
	}
	for _, n := range nodes {
		for _, opt := range n.Options {
			if opt.Target == "" {
				continue
			}
			if _, ok := g.nodes[opt.Target]; !ok {
				return nil, fmt.Errorf("%w: %s -> %s", ErrUnknownTarget, n.ID, opt.Target)
			}
		}
	}
	if err := g.checkReachable(); err != nil {
		return nil, err
	}
	return g, nil
}

// Node returns a node by ID, or nil if not present.
func (g *Graph) Node(id NodeID) *Node {
	return g.nodes[id]
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int { return len(g.nodes) }

// checkReachable walks the graph breadth-first from the root and rejects
// nodes no option path can ever reach.
func (g *Graph) checkReachable() error {
	seen := map[NodeID]bool{g.Root: true}
	queue := []NodeID{g.Root}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, opt := range g.nodes[curr].Options {
			if opt.Target == "" || seen[opt.Target] {
				continue
			}
			seen[opt.Target] = true
			queue = append(queue, opt.Target)
		}
	}
	for id := range g.nodes {
		if !seen[id] {
			return fmt.Errorf("%w: %s", ErrUnreachableNode, id)
		}
	}
	return nil
}
