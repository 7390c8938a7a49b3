package board

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/avery-linden/boardtext/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBoard() *core.Board {
	return &core.Board{
		Title:      "Sprint retro",
		Background: core.Background{Color: "#fdf6e3"},
		Cards: []core.Card{
			{ID: "c1", Kind: core.KindText, HTML: "<p>Went well</p>", X: 20, Y: 20, Width: 220, Height: 160},
			{ID: "c2", Kind: core.KindImage, Image: "team.png", X: 260, Y: 20, Width: 220, Height: 160},
			{ID: "c3", Kind: core.KindText, HTML: "<p>To improve<br>next sprint</p>", X: 500, Y: 20, Width: 220, Height: 160},
			{ID: "c4", Kind: core.KindText, HTML: "<p>&nbsp;</p>", X: 740, Y: 20, Width: 220, Height: 160},
		},
	}
}

func TestTextual(t *testing.T) {
	got := Textual(testBoard())
	assert.Equal(t, "Went well\n\nTo improve\nnext sprint", got)
}

func TestTextualEmptyBoard(t *testing.T) {
	assert.Equal(t, "", Textual(&core.Board{}))
}

func TestApplyText(t *testing.T) {
	b := testBoard()
	ApplyText(b, "One\n\nTwo\nand a half\n\nThree")

	var texts, images []core.Card
	for _, c := range b.Cards {
		if c.IsText() {
			texts = append(texts, c)
		} else {
			images = append(images, c)
		}
	}

	require.Len(t, images, 1, "non-text cards must survive")
	assert.Equal(t, "c2", images[0].ID)

	require.Len(t, texts, 3)
	assert.Equal(t, `<p style="text-align: center;">One</p>`, texts[0].HTML)
	assert.Equal(t, `<p style="text-align: center;">Two<br>and a half</p>`, texts[1].HTML)
	assert.Equal(t, `<p style="text-align: center;">Three</p>`, texts[2].HTML)

	// Replacement cards land on a fresh grid, left to right.
	assert.Less(t, texts[0].X, texts[1].X)
	assert.Equal(t, texts[0].Y, texts[1].Y)

	// Board settings are untouched.
	assert.Equal(t, "Sprint retro", b.Title)
	assert.Equal(t, "#fdf6e3", b.Background.Color)
}

func TestApplyTextEmptyClearsTextCards(t *testing.T) {
	b := testBoard()
	ApplyText(b, "   \n\n   ")

	require.Len(t, b.Cards, 1)
	assert.Equal(t, core.KindImage, b.Cards[0].Kind)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "retro.json")
	want := testBoard()

	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecodeClassifiesLegacyCards(t *testing.T) {
	data := []byte(`{"cards":[{"id":"a","html":"<p>Hi</p>"},{"id":"b","image":"pic.png"}]}`)
	b, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, core.KindText, b.Cards[0].Kind)
	assert.Equal(t, core.KindImage, b.Cards[1].Kind)
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	_, err := Decode([]byte(`{"cards": [`))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
