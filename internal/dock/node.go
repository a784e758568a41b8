package dock

import "dockspace/internal/geom"

// PanelID is the stable, process-unique identity of a registered panel.
// The tree stores only PanelIDs; implementations live in the registry.
type PanelID string

// NodeID identifies a layout node. Allocated by the owning Tree and
// preserved across save/load. Splits and tab containers share one id space.
type NodeID int

// NodeKind tags the layout node union.
type NodeKind uint8

const (
	KindEmpty NodeKind = iota
	KindSplit
	KindTabs
)

func (k NodeKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindSplit:
		return "split"
	case KindTabs:
		return "tabs"
	default:
		return "unknown"
	}
}

// Node is one vertex of the layout tree. Exactly one variant's fields are
// meaningful, selected by Kind. Children are owned exclusively: nodes are
// moved between positions, never shared, so the tree stays acyclic by
// construction.
type Node struct {
	ID   NodeID
	Kind NodeKind

	// Split variant.
	Dir   geom.Direction
	Ratio float64 // fraction of the primary axis given to Left
	Left  *Node
	Right *Node

	// Tabs variant.
	Active int // index into Panels; valid whenever Panels is non-empty
	Panels []PanelID
}

// ActivePanel returns the visible panel of a Tabs node, or "" otherwise.
func (n *Node) ActivePanel() PanelID {
	if n.Kind != KindTabs || n.Active < 0 || n.Active >= len(n.Panels) {
		return ""
	}
	return n.Panels[n.Active]
}

// Tree owns the layout root and allocates node ids. All mutation goes
// through Tree methods so id allocation and invariants stay in one place.
type Tree struct {
	root   *Node
	nextID NodeID
	cfg    Config
}

// NewTree returns a tree holding a single Empty root.
func NewTree(cfg Config) *Tree {
	t := &Tree{nextID: 1, cfg: cfg}
	t.root = &Node{ID: t.alloc(), Kind: KindEmpty}
	return t
}

func (t *Tree) alloc() NodeID {
	id := t.nextID
	t.nextID++
	return id
}

// Root returns the tree's root node.
func (t *Tree) Root() *Node { return t.root }

// Walk visits every node depth-first, parents before children.
func (t *Tree) Walk(fn func(*Node)) {
	walk(t.root, fn)
}

func walk(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	if n.Kind == KindSplit {
		walk(n.Left, fn)
		walk(n.Right, fn)
	}
}

// Find returns the path from the root to the node with the given id, or nil
// if the id is unknown. A nil result is an expected condition, not an error:
// callers may hold ids to nodes an optimization pass has since removed.
func (t *Tree) Find(id NodeID) []*Node {
	return findPath(t.root, id, nil)
}

func findPath(n *Node, id NodeID, path []*Node) []*Node {
	if n == nil {
		return nil
	}
	path = append(path, n)
	if n.ID == id {
		return path
	}
	if n.Kind == KindSplit {
		if p := findPath(n.Left, id, path); p != nil {
			return p
		}
		if p := findPath(n.Right, id, path); p != nil {
			return p
		}
	}
	return nil
}

// FindPanel returns the Tabs node holding the given panel, or nil if the
// panel is floating.
func (t *Tree) FindPanel(id PanelID) *Node {
	var found *Node
	t.Walk(func(n *Node) {
		if found != nil || n.Kind != KindTabs {
			return
		}
		for _, p := range n.Panels {
			if p == id {
				found = n
				return
			}
		}
	})
	return found
}

// PanelIDs returns every docked panel in depth-first tab order.
func (t *Tree) PanelIDs() []PanelID {
	var ids []PanelID
	t.Walk(func(n *Node) {
		if n.Kind == KindTabs {
			ids = append(ids, n.Panels...)
		}
	})
	return ids
}

// RemovePanel takes the panel out of its Tabs node, clamping the active
// index. A Tabs node left without panels becomes Empty (the caller is
// expected to run Optimize before the next render). Returns false when the
// panel is not docked.
func (t *Tree) RemovePanel(id PanelID) bool {
	n := t.FindPanel(id)
	if n == nil {
		return false
	}
	idx := -1
	for i, p := range n.Panels {
		if p == id {
			idx = i
			break
		}
	}
	n.Panels = append(n.Panels[:idx], n.Panels[idx+1:]...)
	switch {
	case len(n.Panels) == 0:
		*n = Node{ID: n.ID, Kind: KindEmpty}
	case idx < n.Active:
		n.Active--
	case n.Active >= len(n.Panels):
		n.Active = len(n.Panels) - 1
	}
	if n.Active < 0 {
		n.Active = 0
	}
	return true
}

// Insert docks the panel at the target. A panel already docked elsewhere is
// removed from its old position first: a panel is unique across the tree, so
// this is a move, never a duplication. Returns false when the target node no
// longer exists or cannot accept the panel.
func (t *Tree) Insert(id PanelID, target DockTarget) bool {
	path := t.Find(target.Node)
	if path == nil {
		return false
	}
	n := path[len(path)-1]

	// Validate before removing from the old position, so a rejected insert
	// leaves the tree untouched.
	tabLike := target.Kind == TargetTab || (target.Kind == TargetZone && target.Side == SideCenter)
	if tabLike && n.Kind == KindSplit {
		return false
	}

	// Node pointers stay valid across removal: RemovePanel mutates the owning
	// Tabs node in place and Optimize has not run yet.
	t.RemovePanel(id)

	switch target.Kind {
	case TargetTab:
		return t.insertTab(n, id, target.Index)
	case TargetZone:
		if target.Side == SideCenter {
			return t.insertTab(n, id, -1)
		}
		return t.insertZone(n, id, target.Side)
	}
	return false
}

// insertTab adds the panel to a Tabs node (converting an Empty node in
// place) and makes it the active tab.
func (t *Tree) insertTab(n *Node, id PanelID, index int) bool {
	switch n.Kind {
	case KindEmpty:
		*n = Node{ID: n.ID, Kind: KindTabs, Panels: []PanelID{id}}
		return true
	case KindTabs:
		if index < 0 || index > len(n.Panels) {
			index = len(n.Panels)
		}
		n.Panels = append(n.Panels, "")
		copy(n.Panels[index+1:], n.Panels[index:])
		n.Panels[index] = id
		n.Active = index
		return true
	default:
		return false
	}
}

// insertZone replaces the target node with a new split: a fresh single-panel
// Tabs on the indicated side, the original subtree on the other. The target
// node object is reused for the split so ancestors keep their child pointers.
func (t *Tree) insertZone(n *Node, id PanelID, side Side) bool {
	moved := *n
	fresh := &Node{ID: t.alloc(), Kind: KindTabs, Panels: []PanelID{id}}

	split := Node{
		ID:    t.alloc(),
		Kind:  KindSplit,
		Ratio: t.cfg.clampRatio(t.cfg.DefaultRatio),
	}
	switch side {
	case SideLeft:
		split.Dir, split.Left, split.Right = geom.Horizontal, fresh, &moved
	case SideRight:
		split.Dir, split.Left, split.Right = geom.Horizontal, &moved, fresh
	case SideTop:
		split.Dir, split.Left, split.Right = geom.Vertical, fresh, &moved
	case SideBottom:
		split.Dir, split.Left, split.Right = geom.Vertical, &moved, fresh
	default:
		return false
	}
	*n = split
	return true
}

// SetRatio updates a split's ratio, clamped to the configured minimum
// fraction per side. Returns false for unknown or non-split ids.
func (t *Tree) SetRatio(id NodeID, ratio float64) bool {
	path := t.Find(id)
	if path == nil {
		return false
	}
	n := path[len(path)-1]
	if n.Kind != KindSplit {
		return false
	}
	n.Ratio = t.cfg.clampRatio(ratio)
	return true
}

// SetActiveTab selects a tab by index. Out-of-range indexes are rejected.
func (t *Tree) SetActiveTab(id NodeID, index int) bool {
	path := t.Find(id)
	if path == nil {
		return false
	}
	n := path[len(path)-1]
	if n.Kind != KindTabs || index < 0 || index >= len(n.Panels) {
		return false
	}
	n.Active = index
	return true
}

// Optimize collapses dead structure bottom-up: Tabs without panels become
// Empty, and a Split with an Empty child is replaced by its other child.
// Idempotent; must run after every removal so reclaimed space is reused
// instead of rendering as dead regions.
func (t *Tree) Optimize() {
	optimize(t.root)
}

func optimize(n *Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case KindSplit:
		optimize(n.Left)
		optimize(n.Right)
		switch {
		case n.Left.Kind == KindEmpty && n.Right.Kind == KindEmpty:
			*n = Node{ID: n.ID, Kind: KindEmpty}
		case n.Left.Kind == KindEmpty:
			*n = *n.Right
		case n.Right.Kind == KindEmpty:
			*n = *n.Left
		}
	case KindTabs:
		if len(n.Panels) == 0 {
			*n = Node{ID: n.ID, Kind: KindEmpty}
		}
	}
}
