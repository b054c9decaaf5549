package namespace

import (
	"fmt"
	"sync"
)

// NodeID indexes a node in a Tree's arena.
type NodeID int

const (
	// Root is the id of the tree's root container.
	Root NodeID = 0

	// None marks the absence of a node (the root's parent).
	None NodeID = -1
)

// Handle is the registration slot returned by Walk: the container reached by
// the path and the name of the final segment inside it.
type Handle struct {
	Parent NodeID
	Key    string
}

// node is one arena entry. A node may hold a value and children at the same
// time: registering "a.b" under an already registered "a" hangs b off it.
type node struct {
	name     string
	parent   NodeID
	children map[string]NodeID
	order    []string
	value    any
	hasValue bool
	detached bool
}

// Tree is the namespace tree. Nodes live in a single slice and refer to each
// other by index.
//
// Overwriting a node detaches everything below it. Detached nodes keep their
// arena slots, so a tree that is overwritten repeatedly grows; their ids are
// treated as unknown by every method.
type Tree struct {
	mu    sync.RWMutex
	nodes []node
}

// NewTree creates a tree holding only the root container.
func NewTree() *Tree {
	return &Tree{nodes: []node{{parent: None}}}
}

// ── Building ──────────────────────────────────────────────────────────────────

// Walk creates every missing container along path except the last segment
// and returns the slot for that last segment. Nothing is created for the
// last segment itself.
//
//	h, _ := tree.Walk("app.views.Home")
//	// containers app and app.views now exist
//	// h.Parent is app.views, h.Key is "Home"
func (t *Tree) Walk(path string) (Handle, error) {
	if path == "" {
		return Handle{}, ErrInvalidInput
	}
	parts, err := Split(path)
	if err != nil {
		return Handle{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	parent := Root
	last := len(parts) - 1
	for _, seg := range parts[:last] {
		parent = t.child(parent, seg)
	}
	return Handle{Parent: parent, Key: parts[last]}, nil
}

// Set stores v in the slot h, creating the leaf node if needed. An existing
// node is replaced together with everything below it; the previous value (if
// any) is returned with replaced=true.
func (t *Tree) Set(h Handle, v any) (previous any, replaced bool, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.valid(h.Parent) {
		return nil, false, fmt.Errorf("namespace: unknown parent node %d", h.Parent)
	}
	p := &t.nodes[h.Parent]
	if id, ok := p.children[h.Key]; ok {
		n := &t.nodes[id]
		previous, replaced = n.value, true
		n.value, n.hasValue = v, true
		for _, c := range n.children {
			t.detach(c)
		}
		n.children, n.order = nil, nil
		return previous, replaced, nil
	}

	id := t.alloc(h.Parent, h.Key)
	t.nodes[id].value, t.nodes[id].hasValue = v, true
	return nil, false, nil
}

// child returns the child of parent named seg, creating an empty container
// if absent. Caller must hold mu.Lock.
func (t *Tree) child(parent NodeID, seg string) NodeID {
	if id, ok := t.nodes[parent].children[seg]; ok {
		return id
	}
	return t.alloc(parent, seg)
}

// alloc appends a node and links it under parent. Caller must hold mu.Lock.
func (t *Tree) alloc(parent NodeID, name string) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{name: name, parent: parent})

	p := &t.nodes[parent]
	if p.children == nil {
		p.children = make(map[string]NodeID)
	}
	p.children[name] = id
	p.order = append(p.order, name)
	return id
}

// detach marks id and its descendants unreachable. Caller must hold mu.Lock.
func (t *Tree) detach(id NodeID) {
	n := &t.nodes[id]
	n.detached = true
	for _, c := range n.children {
		t.detach(c)
	}
}

func (t *Tree) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes) && !t.nodes[id].detached
}

// ── Reading ───────────────────────────────────────────────────────────────────

// Lookup returns the node at path. Container-only nodes are found too.
func (t *Tree) Lookup(path string) (NodeID, bool) {
	parts, err := Split(path)
	if err != nil {
		return None, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	id := Root
	for _, seg := range parts {
		next, ok := t.nodes[id].children[seg]
		if !ok {
			return None, false
		}
		id = next
	}
	return id, true
}

// Get returns the value registered at path. Intermediate containers that
// never received a value report false.
func (t *Tree) Get(path string) (any, bool) {
	id, ok := t.Lookup(path)
	if !ok {
		return nil, false
	}
	return t.Value(id)
}

// Value returns the value held by node id.
func (t *Tree) Value(id NodeID) (any, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.valid(id) {
		return nil, false
	}
	n := t.nodes[id]
	return n.value, n.hasValue
}

// IsContainer returns true if id exists and holds no value.
func (t *Tree) IsContainer(id NodeID) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.valid(id) && !t.nodes[id].hasValue
}

// Children returns the children of id in creation order.
func (t *Tree) Children(id NodeID) []NodeID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.valid(id) {
		return nil
	}
	n := t.nodes[id]
	out := make([]NodeID, 0, len(n.order))
	for _, name := range n.order {
		out = append(out, n.children[name])
	}
	return out
}

// Name returns the segment name of id ("" for Root).
func (t *Tree) Name(id NodeID) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.valid(id) {
		return ""
	}
	return t.nodes[id].name
}

// Path returns the dotted path of id ("" for Root and for unknown or
// detached ids).
func (t *Tree) Path(id NodeID) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.valid(id) {
		return ""
	}
	var segs []string
	for cur := id; cur != Root && cur != None; cur = t.nodes[cur].parent {
		segs = append(segs, t.nodes[cur].name)
	}
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return Join(segs...)
}

// Len returns the number of nodes reachable from Root, Root excluded.
func (t *Tree) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.count(Root)
}

func (t *Tree) count(id NodeID) int {
	total := 0
	for _, c := range t.nodes[id].children {
		total += 1 + t.count(c)
	}
	return total
}

// ── Snapshot ──────────────────────────────────────────────────────────────────

// ValueKey holds a node's own value in a Snapshot when the node also has
// children.
const ValueKey = "@value"

// Snapshot renders the reachable tree as nested maps, suitable for JSON or
// YAML encoding. Containers become maps, leaves become their value, and a
// node with both keeps its value under ValueKey.
func (t *Tree) Snapshot() map[string]any {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.snapshot(Root)
}

// SnapshotOf is Snapshot rooted at id. Unknown ids give nil.
func (t *Tree) SnapshotOf(id NodeID) map[string]any {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.valid(id) {
		return nil
	}
	return t.snapshot(id)
}

func (t *Tree) snapshot(id NodeID) map[string]any {
	n := t.nodes[id]
	out := make(map[string]any, len(n.order))
	for _, name := range n.order {
		c := t.nodes[n.children[name]]
		switch {
		case len(c.order) > 0:
			sub := t.snapshot(n.children[name])
			if c.hasValue {
				sub[ValueKey] = c.value
			}
			out[name] = sub
		case c.hasValue:
			out[name] = c.value
		default:
			out[name] = map[string]any{}
		}
	}
	return out
}
