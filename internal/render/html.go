// ABOUTME: Strips the inline HTML the chat server wraps around answers, keeping their text
// ABOUTME: Line-breaking tags become newlines; entities are decoded by the tokenizer

package render

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StripHTML returns s with every tag removed. Answers are markdown with the
// occasional <span style=...> wrapper, so only tags are dropped and the text
// between them is kept verbatim.
func StripHTML(s string) string {
	if !strings.ContainsRune(s, '<') && !strings.ContainsRune(s, '&') {
		return s
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return strings.TrimSpace(b.String())
			}
			return s
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken, html.EndTagToken:
			name, _ := z.TagName()
			if breaksLine(atom.Lookup(name)) {
				b.WriteByte('\n')
			}
		}
	}
}

func breaksLine(a atom.Atom) bool {
	switch a {
	case atom.Br, atom.P, atom.Div, atom.Li, atom.Tr:
		return true
	}
	return false
}
