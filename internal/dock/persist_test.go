package dock

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	m, _ := newTestManager(t, "a", "b", "c")
	require.NoError(t, m.Dock("b", ZoneTarget(m.RootNode(), SideRight)))
	bNode, _ := m.PanelNode("b")
	require.NoError(t, m.Dock("c", TabTarget(bNode, -1)))
	require.True(t, m.tree.SetRatio(m.RootNode(), 0.3))
	require.True(t, m.tree.SetActiveTab(bNode, 0))

	data, err := m.SaveLayout()
	require.NoError(t, err)

	m2, _ := newTestManager(t, "a", "b", "c")
	require.NoError(t, m2.LoadLayout(data))

	data2, err := m2.SaveLayout()
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(data2), "save/load/save must be a fixed point")
}

func TestLoadPreservesNodeIDs(t *testing.T) {
	m, _ := newTestManager(t, "a", "b")
	require.NoError(t, m.Dock("b", ZoneTarget(m.RootNode(), SideRight)))
	aNode, _ := m.PanelNode("a")

	data, err := m.SaveLayout()
	require.NoError(t, err)

	m2, _ := newTestManager(t, "a", "b")
	require.NoError(t, m2.LoadLayout(data))

	aNode2, ok := m2.PanelNode("a")
	require.True(t, ok)
	assert.Equal(t, aNode, aNode2, "node ids survive persistence")

	// Fresh allocations must not collide with restored ids.
	require.NoError(t, m2.Dock("b", ZoneTarget(aNode2, SideBottom)))
	seen := map[NodeID]bool{}
	m2.tree.Walk(func(n *Node) {
		assert.False(t, seen[n.ID], "duplicate node id %d", n.ID)
		seen[n.ID] = true
	})
}

func TestLoadDropsUnknownPanels(t *testing.T) {
	m, _ := newTestManager(t, "a", "ext")
	require.NoError(t, m.Dock("ext", ZoneTarget(m.RootNode(), SideRight)))
	data, err := m.SaveLayout()
	require.NoError(t, err)

	// A workspace without the "ext" panel loads the same file.
	var warned []string
	m2 := NewManager(quietConfig())
	m2.cfg.Logf = func(format string, args ...any) {
		warned = append(warned, fmt.Sprintf(format, args...))
	}
	require.NoError(t, m2.RegisterPanel(newStub("a")))
	require.NoError(t, m2.LoadLayout(data))

	_, docked := m2.PanelNode("ext")
	assert.False(t, docked)
	assert.Equal(t, KindTabs, m2.tree.Root().Kind, "vacated region must collapse")
	assert.Equal(t, []PanelID{"a"}, m2.tree.PanelIDs())
	assert.NotEmpty(t, warned, "dropped panels are logged")
}

func TestLoadRejectsWrongVersion(t *testing.T) {
	m, _ := newTestManager(t, "a")
	data, err := m.SaveLayout()
	require.NoError(t, err)

	var f map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &f))
	f["version"] = json.RawMessage("99")
	bad, err := json.Marshal(f)
	require.NoError(t, err)

	before := m.tree.PanelIDs()
	assert.Error(t, m.LoadLayout(bad))
	assert.Equal(t, before, m.tree.PanelIDs(), "failed load leaves the tree untouched")
}

func TestLoadRejectsMalformedLayouts(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{{{`},
		{"no root", `{"version":1}`},
		{"unknown node type", `{"version":1,"root":{"type":"floaty"}}`},
		{"ratio too large", `{"version":1,"root":{"type":"split","direction":"h","ratio":1.5,
			"left":{"type":"empty"},"right":{"type":"empty"}}}`},
		{"ratio zero", `{"version":1,"root":{"type":"split","direction":"h",
			"left":{"type":"empty"},"right":{"type":"empty"}}}`},
		{"bad direction", `{"version":1,"root":{"type":"split","direction":"x","ratio":0.5,
			"left":{"type":"empty"},"right":{"type":"empty"}}}`},
		{"missing child", `{"version":1,"root":{"type":"split","direction":"h","ratio":0.5,
			"left":{"type":"empty"}}}`},
		{"negative active", `{"version":1,"root":{"type":"tabs","active":-1,"panels":["a"]}}`},
		{"panel in two containers", `{"version":1,"root":{"type":"split","direction":"h","ratio":0.5,"id":1,
			"left":{"type":"tabs","id":2,"panels":["a"]},"right":{"type":"tabs","id":3,"panels":["a"]}}}`},
		{"panel twice in one container", `{"version":1,"root":{"type":"tabs","id":1,"panels":["a","a"]}}`},
		{"duplicate node id", `{"version":1,"root":{"type":"split","direction":"h","ratio":0.5,"id":1,
			"left":{"type":"tabs","id":2,"panels":["a"]},"right":{"type":"tabs","id":2,"panels":["b"]}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestManager(t, "a")
			before := m.tree.PanelIDs()
			assert.Error(t, m.LoadLayout([]byte(tt.data)))
			assert.Equal(t, before, m.tree.PanelIDs())
		})
	}
}

func TestLoadClampsActiveTab(t *testing.T) {
	// Active index valid on disk but out of range once unknown panels drop.
	data := `{"version":1,"root":{"type":"tabs","id":1,"active":1,"panels":["ghost","a"]}}`
	m, _ := newTestManager(t, "a")
	require.NoError(t, m.LoadLayout([]byte(data)))
	root := m.tree.Root()
	assert.Equal(t, []PanelID{"a"}, root.Panels)
	assert.Equal(t, 0, root.Active)
}

func TestLoadEmptyLayout(t *testing.T) {
	data := `{"version":1,"root":{"type":"empty"}}`
	m, _ := newTestManager(t, "a")
	require.NoError(t, m.LoadLayout([]byte(data)))
	assert.Equal(t, KindEmpty, m.tree.Root().Kind)
	assert.Equal(t, PanelID(""), m.FocusedPanel())
	assert.NotZero(t, m.tree.Root().ID, "restored empty nodes get fresh ids")
}

func TestLoadFiresDockNotifications(t *testing.T) {
	m, panels := newTestManager(t, "a", "b")
	require.NoError(t, m.Dock("b", ZoneTarget(m.RootNode(), SideRight)))
	saved, err := m.SaveLayout()
	require.NoError(t, err)

	m.Undock("b")
	panels["b"].dockEvents = nil

	require.NoError(t, m.LoadLayout(saved))
	assert.Equal(t, []bool{true}, panels["b"].dockEvents, "restored panel learns it is docked")
}
