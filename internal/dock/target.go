package dock

// Side names a drop position relative to a target node.
type Side uint8

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
	SideCenter
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideCenter:
		return "center"
	default:
		return "unknown"
	}
}

// TargetKind distinguishes the two docking forms.
type TargetKind uint8

const (
	// TargetZone docks relative to an existing node: a side creates a new
	// split around it, SideCenter merges into it.
	TargetZone TargetKind = iota
	// TargetTab inserts into an existing Tabs node at an index.
	TargetTab
)

// DockTarget describes where a panel should land. It is only used
// transiently (drag/drop resolution, explicit Dock calls) and is never
// stored in the tree.
type DockTarget struct {
	Kind TargetKind
	Node NodeID
	Side Side // zone targets only
	// Index is the insertion position for tab targets; negative appends.
	Index int
}

// ZoneTarget builds a side-relative target for the given node.
func ZoneTarget(node NodeID, side Side) DockTarget {
	return DockTarget{Kind: TargetZone, Node: node, Side: side}
}

// TabTarget builds an insert-into-tabs target. Pass a negative index to append.
func TabTarget(node NodeID, index int) DockTarget {
	return DockTarget{Kind: TargetTab, Node: node, Index: index}
}
