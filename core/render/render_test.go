package render

import (
	"encoding/json"
	"testing"

	"github.com/avery-linden/boardtext/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBoard() *core.Board {
	return &core.Board{
		Title: "Planning",
		Cards: []core.Card{
			{ID: "c1", Kind: core.KindText, HTML: "<p><strong>Goals</strong></p>"},
			{ID: "c2", Kind: core.KindImage, Image: "roadmap.png"},
			{ID: "c3", Kind: core.KindText, HTML: "<p>Ship it</p>"},
		},
	}
}

func TestTextRendererPassthrough(t *testing.T) {
	r := NewTextRenderer()
	data, err := r.Render("Goals\n\nShip it", sampleBoard())
	require.NoError(t, err)
	assert.Equal(t, "Goals\n\nShip it", string(data))
	assert.Equal(t, ".txt", r.Extension())
}

func TestMarkdownRenderer(t *testing.T) {
	r := NewMarkdownRenderer()
	data, err := r.Render("", sampleBoard())
	require.NoError(t, err)

	md := string(data)
	assert.Contains(t, md, "# Planning")
	assert.Contains(t, md, "**Goals**")
	assert.Contains(t, md, "![card c2](roadmap.png)")
	assert.Contains(t, md, "Ship it")
	assert.Contains(t, md, "---")
	assert.Equal(t, ".md", r.Extension())
}

func TestJSONRenderer(t *testing.T) {
	r := NewJSONRenderer()
	data, err := r.Render("Goals\n\nShip it", sampleBoard())
	require.NoError(t, err)

	var export BoardExport
	require.NoError(t, json.Unmarshal(data, &export))
	assert.Equal(t, "Planning", export.Title)
	assert.Equal(t, "Goals\n\nShip it", export.Text)
	require.Len(t, export.Cards, 2, "image cards are excluded")
	assert.Equal(t, CardText{ID: "c1", Text: "Goals"}, export.Cards[0])
	assert.Equal(t, CardText{ID: "c3", Text: "Ship it"}, export.Cards[1])
	assert.Equal(t, ".json", r.Extension())
}

func TestPDFRenderer(t *testing.T) {
	r := NewPDFRenderer()
	data, err := r.Render("Goals\n\nShip it", sampleBoard())
	require.NoError(t, err)

	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
	assert.Equal(t, ".pdf", r.Extension())
}
