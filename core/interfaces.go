// Package core defines the shared types and interfaces for boardtext.
// A board is a flat collection of cards over a background; the textual
// representation is the canonical intermediate format for all exports.
package core

// Background holds the board's backdrop settings.
type Background struct {
	Color string `json:"color,omitempty"`
	Image string `json:"image,omitempty"`
}

// Card kinds. Only text cards participate in the textual representation.
const (
	KindText  = "text"
	KindImage = "image"
)

// Card is one content block on the board. Text cards carry an HTML
// fragment; image cards carry a source reference.
type Card struct {
	ID     string  `json:"id"`
	Kind   string  `json:"kind"`
	HTML   string  `json:"html,omitempty"`
	Image  string  `json:"image,omitempty"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// IsText reports whether the card contributes to the textual representation.
func (c Card) IsText() bool {
	return c.Kind == KindText
}

// Board is the serialized idea-board content file.
type Board struct {
	Title      string     `json:"title,omitempty"`
	Background Background `json:"background"`
	Cards      []Card     `json:"cards"`
}

// Renderer converts the textual representation (and the board it came
// from) into a final output format.
type Renderer interface {
	Render(text string, b *Board) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".txt", ".pdf").
	Extension() string
}
