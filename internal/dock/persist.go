package dock

import (
	"context"
	"encoding/json"
	"fmt"

	"dockspace/internal/geom"
	"dockspace/internal/jsonutil"
)

// LayoutVersion is the persisted schema version. Loaders refuse anything
// newer or unknown (fail closed) so a layout written by a future build is
// never half-interpreted.
const LayoutVersion = 1

// layoutFile is the top-level persisted document.
type layoutFile struct {
	Root    *nodeJSON `json:"root"`
	Version int       `json:"version"`
}

// nodeJSON is the wire form of a layout node: topology, ratios, and tab
// order only. Panel content never round-trips; saved layouts are replayed
// against whatever registry exists at load time.
type nodeJSON struct {
	Type      string    `json:"type"`
	ID        int       `json:"id,omitempty"`
	Direction string    `json:"direction,omitempty"`
	Ratio     float64   `json:"ratio,omitempty"`
	Left      *nodeJSON `json:"left,omitempty"`
	Right     *nodeJSON `json:"right,omitempty"`
	Active    *int      `json:"active,omitempty"`
	Panels    []string  `json:"panels,omitempty"`
}

// SaveLayout serializes the current tree. Panels not present in the tree
// (floating ones) are naturally absent from the output.
func (m *Manager) SaveLayout() ([]byte, error) {
	_, span := m.tracer.Start(context.Background(), "dock.SaveLayout")
	defer span.End()

	f := layoutFile{Version: LayoutVersion, Root: encodeNode(m.tree.Root())}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("dock: marshal layout: %w", err)
	}
	return data, nil
}

// LoadLayout replaces the tree wholesale from serialized form. Any failure
// leaves the in-memory tree untouched so the workspace never degrades from
// a bad file. Panel ids unknown to the registry are dropped with a warning
// and the tree is optimized afterwards; this is forward compatibility, not
// an error.
func (m *Manager) LoadLayout(data []byte) error {
	_, span := m.tracer.Start(context.Background(), "dock.LoadLayout")
	defer span.End()

	var f layoutFile
	if err := jsonutil.UnmarshalWithContext(data, &f, "dock: parse layout"); err != nil {
		return err
	}
	if f.Version != LayoutVersion {
		return fmt.Errorf("dock: unsupported layout version %d (want %d)", f.Version, LayoutVersion)
	}
	if f.Root == nil {
		return fmt.Errorf("dock: layout has no root node")
	}

	root, maxID, err := decodeNode(f.Root)
	if err != nil {
		return err
	}
	if err := validateLoadedTree(root); err != nil {
		return err
	}

	// The new tree is only installed once fully validated.
	before := m.tree.PanelIDs()
	tree := &Tree{root: root, nextID: maxID + 1, cfg: m.cfg}
	assignMissingIDs(tree.root, tree)
	m.dropUnknownPanels(tree)
	tree.Optimize()
	m.tree = tree
	m.drag.reset()
	m.resize = nil
	m.hoverSplit = 0
	m.invalidate()
	m.notifyDockDiff(before, m.tree.PanelIDs())
	m.ensureFocus()
	return nil
}

func encodeNode(n *Node) *nodeJSON {
	switch n.Kind {
	case KindSplit:
		dir := "h"
		if n.Dir == geom.Vertical {
			dir = "v"
		}
		return &nodeJSON{
			Type:      "split",
			ID:        int(n.ID),
			Direction: dir,
			Ratio:     n.Ratio,
			Left:      encodeNode(n.Left),
			Right:     encodeNode(n.Right),
		}
	case KindTabs:
		active := n.Active
		panels := make([]string, len(n.Panels))
		for i, p := range n.Panels {
			panels[i] = string(p)
		}
		return &nodeJSON{Type: "tabs", ID: int(n.ID), Active: &active, Panels: panels}
	default:
		return &nodeJSON{Type: "empty"}
	}
}

// decodeNode validates as it builds: unknown types, missing children, bad
// directions, and out-of-range ratios are all malformed-layout errors that
// abort the load.
func decodeNode(j *nodeJSON) (*Node, NodeID, error) {
	if j == nil {
		return nil, 0, fmt.Errorf("dock: missing node in layout")
	}
	switch j.Type {
	case "split":
		if j.Ratio <= 0 || j.Ratio >= 1 {
			return nil, 0, fmt.Errorf("dock: split ratio %v out of range", j.Ratio)
		}
		var dir = geom.Horizontal
		switch j.Direction {
		case "h":
		case "v":
			dir = geom.Vertical
		default:
			return nil, 0, fmt.Errorf("dock: unknown split direction %q", j.Direction)
		}
		left, lmax, err := decodeNode(j.Left)
		if err != nil {
			return nil, 0, err
		}
		right, rmax, err := decodeNode(j.Right)
		if err != nil {
			return nil, 0, err
		}
		n := &Node{ID: NodeID(j.ID), Kind: KindSplit, Dir: dir, Ratio: j.Ratio, Left: left, Right: right}
		return n, maxNodeID(NodeID(j.ID), lmax, rmax), nil
	case "tabs":
		panels := make([]PanelID, len(j.Panels))
		for i, p := range j.Panels {
			panels[i] = PanelID(p)
		}
		active := 0
		if j.Active != nil {
			active = *j.Active
		}
		if active < 0 {
			return nil, 0, fmt.Errorf("dock: negative active tab %d", active)
		}
		n := &Node{ID: NodeID(j.ID), Kind: KindTabs, Active: active, Panels: panels}
		return n, NodeID(j.ID), nil
	case "empty":
		return &Node{Kind: KindEmpty}, 0, nil
	default:
		return nil, 0, fmt.Errorf("dock: unknown node type %q", j.Type)
	}
}

// validateLoadedTree enforces the ownership invariants decodeNode cannot
// check per node: a panel belongs to at most one container, and non-zero
// node ids are unique. Violations are malformed-layout errors; the current
// tree stays installed.
func validateLoadedTree(root *Node) error {
	panels := make(map[PanelID]bool)
	ids := make(map[NodeID]bool)
	var visit func(*Node) error
	visit = func(n *Node) error {
		if n.ID != 0 {
			if ids[n.ID] {
				return fmt.Errorf("dock: duplicate node id %d in layout", n.ID)
			}
			ids[n.ID] = true
		}
		for _, p := range n.Panels {
			if panels[p] {
				return fmt.Errorf("dock: panel %q docked in more than one container", p)
			}
			panels[p] = true
		}
		if n.Kind == KindSplit {
			if err := visit(n.Left); err != nil {
				return err
			}
			return visit(n.Right)
		}
		return nil
	}
	return visit(root)
}

// dropUnknownPanels strips panel ids the registry does not know, clamping
// active indexes afterwards. Scenario: a layout saved with an extension
// panel loads fine without the extension.
func (m *Manager) dropUnknownPanels(t *Tree) {
	t.Walk(func(n *Node) {
		if n.Kind != KindTabs {
			return
		}
		kept := n.Panels[:0]
		for _, id := range n.Panels {
			if m.reg.has(id) {
				kept = append(kept, id)
			} else {
				m.cfg.logf("dock: dropping unknown panel %q from loaded layout", id)
			}
		}
		n.Panels = kept
		if n.Active >= len(n.Panels) {
			n.Active = len(n.Panels) - 1
		}
		if n.Active < 0 {
			n.Active = 0
		}
		if len(n.Panels) == 0 {
			*n = Node{ID: n.ID, Kind: KindEmpty}
		}
	})
}

// assignMissingIDs gives fresh ids to nodes persisted without one (empty
// nodes, hand-written layouts).
func assignMissingIDs(n *Node, t *Tree) {
	if n == nil {
		return
	}
	if n.ID <= 0 {
		n.ID = t.alloc()
	}
	if n.Kind == KindSplit {
		assignMissingIDs(n.Left, t)
		assignMissingIDs(n.Right, t)
	}
}

// notifyDockDiff fires OnDockChanged for panels whose docked state changed
// across a wholesale tree replacement.
func (m *Manager) notifyDockDiff(before, after []PanelID) {
	was := make(map[PanelID]bool, len(before))
	for _, id := range before {
		was[id] = true
	}
	now := make(map[PanelID]bool, len(after))
	for _, id := range after {
		now[id] = true
		if !was[id] {
			if p, ok := m.reg.get(id); ok {
				p.OnDockChanged(true)
			}
		}
	}
	for _, id := range before {
		if !now[id] {
			if p, ok := m.reg.get(id); ok {
				p.OnDockChanged(false)
			}
		}
	}
}

func maxNodeID(ids ...NodeID) NodeID {
	var max NodeID
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max
}
