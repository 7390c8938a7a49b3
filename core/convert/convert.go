// Package convert implements the bidirectional transform between a card's
// HTML fragment and the plain-text bulk-edit format. It isolates the text
// from a fragment by:
//  1. Replacing <br> elements with literal newlines
//  2. Separating each <p> from its following sibling with a newline
//  3. Pruning paragraphs that are empty or a lone &nbsp;
//
// The inverse direction splits plain text on blank lines and re-wraps each
// paragraph as a centered HTML fragment, one per card.
package convert

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const nbsp = "\u00a0"

// newlineRuns matches a newline run (with any interleaved whitespace) plus
// whatever trailing spaces precede it, so extracted text collapses the way
// a rendering engine would display it.
var newlineRuns = regexp.MustCompile("[ \t]*\n\\s*")

// paragraphSep matches the blank-line paragraph separator of the plain-text
// format: a newline, optional whitespace, then another newline.
var paragraphSep = regexp.MustCompile(`\n\s*\n`)

// HTMLToText flattens a card's HTML fragment into plain text. Line breaks
// and paragraph boundaries become newlines, empty paragraphs are dropped,
// and non-breaking spaces become ordinary spaces. Empty input yields an
// empty string; the function never fails.
func HTMLToText(html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		// Parsing board content is not expected to fail; degrade to a
		// bare tag strip rather than surfacing an error to the author.
		return finishText(stripTags(html))
	}

	// Line breaks become literal newlines in the text flow.
	doc.Find("br").Each(func(_ int, s *goquery.Selection) {
		s.ReplaceWithHtml("\n")
	})

	// Separate each paragraph from any following sibling with one newline,
	// and mark empty paragraphs for pruning. The separator decision is
	// made against the pre-prune sibling structure on purpose: pruning a
	// trailing empty paragraph must not retroactively change whether its
	// predecessor got a separator.
	var prune []*goquery.Selection
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		if n := p.Get(0); n != nil && n.NextSibling != nil {
			p.AfterHtml("\n")
		}
		t := strings.Trim(p.Text(), " \t\r\n")
		if t == "" || t == nbsp {
			prune = append(prune, p)
		}
	})
	for _, p := range prune {
		p.Remove()
	}

	return finishText(doc.Text())
}

// TextToCardHTMLs splits plain text on blank lines and wraps each surviving
// paragraph as a centered HTML fragment, in original order. Lines within a
// paragraph are trimmed and joined with <br>; paragraphs and lines that trim
// to nothing are discarded. Empty or blank input yields nil. No fragment is
// ever empty or whitespace-only.
func TextToCardHTMLs(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var fragments []string
	for _, para := range paragraphSep.Split(text, -1) {
		var lines []string
		for _, line := range strings.Split(para, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) == 0 {
			continue
		}
		fragments = append(fragments,
			`<p style="text-align: center;">`+strings.Join(lines, "<br>")+`</p>`)
	}
	return fragments
}

// finishText applies the shared post-processing: non-breaking spaces become
// ordinary spaces, newline runs collapse to a single newline, and the
// result is trimmed.
func finishText(text string) string {
	text = strings.ReplaceAll(text, nbsp, " ")
	text = newlineRuns.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
