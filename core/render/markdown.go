// Package render — Markdown renderer.
// Converts each card's HTML fragment into Markdown, preserving per-card
// boundaries so the document can be edited card by card.
package render

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/avery-linden/boardtext/core"
)

// MarkdownRenderer produces a Markdown document from the board's cards.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render converts the board into Markdown. Text cards are converted from
// their HTML fragments; image cards become image links. Cards are separated
// by thematic breaks.
func (r *MarkdownRenderer) Render(text string, b *core.Board) ([]byte, error) {
	var blocks []string
	if b.Title != "" {
		blocks = append(blocks, "# "+b.Title)
	}

	for _, c := range b.Cards {
		switch {
		case c.IsText():
			md, err := htmltomarkdown.ConvertString(c.HTML)
			if err != nil {
				return nil, fmt.Errorf("converting card %s to markdown: %w", c.ID, err)
			}
			if md = strings.TrimSpace(md); md != "" {
				blocks = append(blocks, md)
			}
		case c.Image != "":
			blocks = append(blocks, fmt.Sprintf("![card %s](%s)", c.ID, c.Image))
		}
	}

	return []byte(strings.Join(blocks, "\n\n---\n\n") + "\n"), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
