// Package render provides output renderers for boardtext exports.
// This file implements the plain-text renderer, which is a simple
// passthrough of the textual representation.
package render

import (
	"github.com/avery-linden/boardtext/core"
)

// TextRenderer writes the textual representation as-is. It's the simplest
// renderer since plain text is already the canonical export format.
type TextRenderer struct{}

// NewTextRenderer creates a TextRenderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render returns the textual representation as bytes (passthrough).
func (r *TextRenderer) Render(text string, b *core.Board) ([]byte, error) {
	return []byte(text), nil
}

// Extension returns the file extension for plain-text output.
func (r *TextRenderer) Extension() string {
	return ".txt"
}
