// Package render — PDF renderer.
// Produces a print-friendly review copy of the board using gofpdf:
// the board title as a header, then one centered block per card paragraph.
// Card placement and backgrounds are intentionally not reproduced.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/avery-linden/boardtext/core"
	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer renders the textual representation as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the textual representation into PDF bytes.
func (r *PDFRenderer) Render(text string, b *core.Board) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Title from the board.
	if b.Title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, b.Title, "", "C", false)
		pdf.Ln(4)
	}

	// Card count subtitle.
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, cardCountLabel(b), "", "C", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	// One centered block per paragraph, mirroring the cards' centered text.
	for _, block := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(block) == "" {
			continue
		}
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, block, "", "C", false)
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

func cardCountLabel(b *core.Board) string {
	text, other := 0, 0
	for _, c := range b.Cards {
		if c.IsText() {
			text++
		} else {
			other++
		}
	}
	label := fmt.Sprintf("%d text cards", text)
	if other > 0 {
		label += fmt.Sprintf(", %d other cards", other)
	}
	return label
}
