// Package panels contains the workspace's built-in panel implementations.
// Each one satisfies dock.Panel: it renders into whatever rectangle the
// layout hands it, consumes localized events, and reports its sizing and
// closing metadata. Panels never touch the layout tree.
package panels
