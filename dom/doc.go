// Package dom implements the pure document model for lattice.
//
// The tree is pointer-based with explicit parent back-references: every node
// can resolve its ancestors without a traversal API, and row/cell indexes
// always match their position in the owning slice. The caret is a transient
// (node, offset) pair recomputed from live structure on every action.
package dom
