// Package dock implements the dockable panel layout engine behind the
// workspace: a recursive split/tabs tree, the manager that mutates it,
// and the interactive pieces layered on top.
//
// Core abstractions:
//   - Node/Tree: the recursive layout structure (Split, Tabs, Empty)
//   - Panel: the contract a hosted panel implements (render + input + metadata)
//   - Manager: owns the tree and the panel registry; dock, undock, resize, focus
//   - tabStrip / splitter: hit-testing and rendering for the chrome
//   - dragController: the Idle -> Armed -> Dragging drop state machine
//   - persistence: versioned JSON layouts replayable against a different registry
//
// The engine is single-threaded: all mutation, bounds math, and input routing
// happen on the host's event loop, once per frame. Rectangles are terminal
// cells; rendering is string composition, the host draws.
package dock
