// Package render — JSON renderer.
// Builds a structured export for programmatic consumers: board metadata
// plus the flattened text of each text card, keyed by card ID.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/avery-linden/boardtext/core"
	"github.com/avery-linden/boardtext/core/convert"
)

// CardText pairs a card with its flattened text.
type CardText struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// BoardExport is the complete JSON output for a board.
type BoardExport struct {
	Title      string          `json:"title"`
	Background core.Background `json:"background"`
	Text       string          `json:"text"`
	Cards      []CardText      `json:"cards"`
}

// JSONRenderer produces structured JSON output from the board.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render converts the board and its textual representation into the
// structured JSON export. Cards that flatten to nothing are skipped,
// matching the textual representation.
func (r *JSONRenderer) Render(text string, b *core.Board) ([]byte, error) {
	cards := make([]CardText, 0, len(b.Cards))
	for _, c := range b.Cards {
		if !c.IsText() {
			continue
		}
		if flat := convert.HTMLToText(c.HTML); flat != "" {
			cards = append(cards, CardText{ID: c.ID, Text: flat})
		}
	}

	export := BoardExport{
		Title:      b.Title,
		Background: b.Background,
		Text:       text,
		Cards:      cards,
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
