// Package ui hosts the Bubble Tea shell around the docking engine.
//
// Core pieces:
//   - WorkspaceModel: the root tea.Model; translates terminal events into
//     the engine's normalized input and composes the final frame
//   - KeybindRegistry / KeyHandler: spacemacs-style leader key sequences
//     (SPC w s saves the layout, SPC w o restores it)
//
// The workspace reserves the bottom row for a status bar; everything above
// it belongs to the layout tree.
package ui
