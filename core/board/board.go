// Package board handles loading, saving, and bulk-editing idea-board
// content files. The textual representation produced here is the canonical
// intermediate format: one blank-line-separated block per text card.
package board

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/avery-linden/boardtext/core"
	"github.com/avery-linden/boardtext/core/convert"
)

// Grid used when laying out replacement text cards. Positions are in the
// board's abstract units, matching the host authoring surface.
const (
	cardWidth  = 220.0
	cardHeight = 160.0
	gutter     = 20.0
	gridCols   = 4
)

// Load reads and decodes a board file from disk.
func Load(path string) (*core.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading board file %s: %w", path, err)
	}
	return Decode(data)
}

// Decode parses board JSON. Cards missing a kind are classified from the
// content they carry, since older board files predate the kind field.
func Decode(data []byte) (*core.Board, error) {
	var b core.Board
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decoding board JSON: %w", err)
	}
	for i := range b.Cards {
		if b.Cards[i].Kind != "" {
			continue
		}
		if b.Cards[i].Image != "" {
			b.Cards[i].Kind = core.KindImage
		} else {
			b.Cards[i].Kind = core.KindText
		}
	}
	return &b, nil
}

// Save writes the board back to disk as indented JSON.
func Save(path string, b *core.Board) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding board JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing board file %s: %w", path, err)
	}
	return nil
}

// Textual builds the plain-text representation of the board: every text
// card flattened through convert.HTMLToText, cards that flatten to nothing
// skipped, blocks joined by blank lines.
func Textual(b *core.Board) string {
	var blocks []string
	for _, c := range b.Cards {
		if !c.IsText() {
			continue
		}
		if text := convert.HTMLToText(c.HTML); text != "" {
			blocks = append(blocks, text)
		}
	}
	return strings.Join(blocks, "\n\n")
}

// ApplyText replaces the board's text cards with one card per paragraph of
// the edited text. Non-text cards, the background, and the title survive
// untouched; replacement cards are laid out on a fresh grid.
func ApplyText(b *core.Board, text string) {
	var kept []core.Card
	for _, c := range b.Cards {
		if !c.IsText() {
			kept = append(kept, c)
		}
	}

	for i, html := range convert.TextToCardHTMLs(text) {
		col := i % gridCols
		row := i / gridCols
		kept = append(kept, core.Card{
			ID:     fmt.Sprintf("text-%d", i+1),
			Kind:   core.KindText,
			HTML:   html,
			X:      gutter + float64(col)*(cardWidth+gutter),
			Y:      gutter + float64(row)*(cardHeight+gutter),
			Width:  cardWidth,
			Height: cardHeight,
		})
	}
	b.Cards = kept
}
