// Package grapheme provides grapheme-cluster counting and terminal-cell
// width measurement for caret offsets and grid rendering.
package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Split returns the grapheme clusters of text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Width returns the terminal-cell width of text.
//
// runewidth handles the common cases; uniseg is the fallback for clusters
// runewidth reports as zero-width (some emoji sequences).
func Width(text string) int {
	if text == "" {
		return 0
	}
	w := 0
	for _, cluster := range Split(text) {
		cw := runewidth.StringWidth(cluster)
		if cw <= 0 {
			if fallback := uniseg.StringWidth(cluster); fallback > cw {
				cw = fallback
			}
		}
		if cw > 0 {
			w += cw
		}
	}
	return w
}
