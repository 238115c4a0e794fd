// ABOUTME: Renders the suggestion dropdown above the input with a scrolling window
// ABOUTME: Rows are truncated by display width, cutting only on grapheme boundaries

package btea

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/mauromedda/qnachat/internal/suggest"
)

// suggestView is the scroll window over the suggestion list.
type suggestView struct {
	offset  int
	maxRows int
}

func newSuggestView(maxRows int) suggestView {
	return suggestView{maxRows: max(1, maxRows)}
}

// reset scrolls back to the first row, e.g. after a new candidate set.
func (v suggestView) reset() suggestView {
	v.offset = 0
	return v
}

// follow scrolls so selected is inside the window.
func (v suggestView) follow(selected int) suggestView {
	if selected < 0 {
		return v
	}
	if selected < v.offset {
		v.offset = selected
	}
	if selected >= v.offset+v.maxRows {
		v.offset = selected - v.maxRows + 1
	}
	return v
}

// rows returns how many rows are drawn for n items.
func (v suggestView) rows(n int) int {
	return max(0, min(n-v.offset, v.maxRows))
}

// indexAt maps a row within the window to an item index.
func (v suggestView) indexAt(row, n int) (int, bool) {
	if row < 0 || row >= v.rows(n) {
		return 0, false
	}
	return v.offset + row, true
}

func (v suggestView) render(items []suggest.Suggestion, selected, width int) string {
	s := Styles()
	n := v.rows(len(items))
	lines := make([]string, 0, n)
	for i := v.offset; i < v.offset+n; i++ {
		line := "  " + items[i].Question
		if width > 0 {
			line = truncateToWidth(line, width)
		}
		if i == selected {
			line = s.Selection.Render(padToWidth(line, width))
		} else {
			line = s.Info.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// truncateToWidth shortens s to at most w cells, ending in an ellipsis when cut.
func truncateToWidth(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= w {
		return s
	}
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		cw := runewidth.StringWidth(cluster)
		if used+cw > w-1 {
			break
		}
		b.WriteString(cluster)
		used += cw
	}
	b.WriteString("…")
	return b.String()
}

// padToWidth right-pads s with spaces to w cells so a highlight spans the row.
func padToWidth(s string, w int) string {
	sw := runewidth.StringWidth(s)
	if w <= sw {
		return s
	}
	return s + strings.Repeat(" ", w-sw)
}
