// ABOUTME: Markdown renderer wrapper around glamour for answers shown in the transcript
// ABOUTME: Caches rendered results keyed by content hash + width; falls back to raw text

package render

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// Markdown renders markdown for the terminal, caching results.
type Markdown struct {
	mu    sync.Mutex
	style string
	cache map[string]string // "hash:width" -> rendered
}

// NewMarkdown creates a renderer for the given glamour style. "" and "auto"
// detect the terminal background.
func NewMarkdown(style string) *Markdown {
	return &Markdown{
		style: style,
		cache: make(map[string]string),
	}
}

// Render returns the terminal-styled rendering of md wrapped to width.
func (r *Markdown) Render(md string, width int) string {
	if md == "" {
		return ""
	}

	key := cacheKey(md, width)
	r.mu.Lock()
	cached, ok := r.cache[key]
	r.mu.Unlock()
	if ok {
		return cached
	}

	renderer, err := glamour.NewTermRenderer(r.styleOption(), glamour.WithWordWrap(width))
	if err != nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	rendered = strings.TrimLeft(strings.TrimRight(rendered, "\n "), "\n")

	r.mu.Lock()
	r.cache[key] = rendered
	r.mu.Unlock()
	return rendered
}

// Answer strips server HTML from an answer and renders what remains.
func (r *Markdown) Answer(text string, width int) string {
	return r.Render(StripHTML(text), width)
}

func (r *Markdown) styleOption() glamour.TermRendererOption {
	switch r.style {
	case "", "auto":
		return glamour.WithAutoStyle()
	case "ascii":
		return glamour.WithStandardStyle(styles.AsciiStyle)
	case "notty":
		return glamour.WithStandardStyle(styles.NoTTYStyle)
	default:
		return glamour.WithStandardStyle(r.style)
	}
}

func cacheKey(content string, width int) string {
	h := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x:%d", h[:8], width)
}
