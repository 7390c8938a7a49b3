package convert

import (
	"strings"

	"golang.org/x/net/html"
)

// stripTags is the degraded path when full parsing is unavailable: it walks
// the token stream, keeps text content, and turns <br> and closing </p>
// into newlines. Entities are decoded by the tokenizer.
func stripTags(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			if name, _ := z.TagName(); string(name) == "br" {
				b.WriteByte('\n')
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); string(name) == "p" {
				b.WriteByte('\n')
			}
		}
	}
}
