// Package table implements grid navigation and structural editing over a
// dom.Document.
//
// The package is responsible for resolving the current cell from the caret,
// moving focus between cells on Tab and arrow keys, growing and shrinking
// the grid, and transitioning focus between the grid and surrounding
// document content at grid boundaries. No operation here returns an error:
// every failure path degrades to a no-op plus a not-handled result.
package table
