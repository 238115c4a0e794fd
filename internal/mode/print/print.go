// ABOUTME: Headless print mode: one question or one autocomplete lookup, printed as text or JSON
// ABOUTME: Text answers are rendered as markdown on a terminal and as plain text otherwise

package print

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mailru/easyjson"
	"golang.org/x/term"

	"github.com/mauromedda/qnachat/internal/api"
	"github.com/mauromedda/qnachat/internal/render"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config configures print mode execution.
type Config struct {
	OutputFormat string // "text" (default) or "json"
	ForceLLM     bool   // Skip Q&A matching and ask the LLM directly
	Suggest      bool   // Print autocomplete suggestions instead of asking
	Limit        int    // Suggestion limit; 0 means 8
	Theme        string // glamour style for terminal output
}

// Client is the subset of the server API print mode needs.
type Client interface {
	Autocomplete(ctx context.Context, query string, limit int) ([]api.Suggestion, error)
	Chat(ctx context.Context, req api.ChatRequest) (*api.ChatResponse, error)
}

// Streams are the process streams; zero fields default to os.Stdin/Stdout/Stderr.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func (s Streams) withDefaults() Streams {
	if s.In == nil {
		s.In = os.Stdin
	}
	if s.Out == nil {
		s.Out = os.Stdout
	}
	if s.Err == nil {
		s.Err = os.Stderr
	}
	return s
}

// Run executes one print-mode request. An empty prompt is read from stdin.
func Run(ctx context.Context, cfg Config, client Client, prompt string, streams Streams) error {
	streams = streams.withDefaults()

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		data, err := io.ReadAll(streams.In)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		prompt = strings.TrimSpace(string(data))
	}
	if prompt == "" {
		return errors.New("no question given")
	}

	f := newFormatter(cfg, streams)
	if cfg.Suggest {
		limit := cfg.Limit
		if limit <= 0 {
			limit = 8
		}
		items, err := client.Autocomplete(ctx, prompt, limit)
		if err != nil {
			return fmt.Errorf("autocomplete: %w", err)
		}
		return f.suggestions(items)
	}

	resp, err := client.Chat(ctx, api.ChatRequest{Message: prompt, ForceLLM: cfg.ForceLLM})
	if err != nil {
		return fmt.Errorf("chat: %w", err)
	}
	if err := f.answer(resp); err != nil {
		return err
	}
	if resp.NoQnAMatch && !cfg.ForceLLM {
		fmt.Fprintln(streams.Err, "(no Q&A match; rerun with --llm to ask the LLM)")
	}
	return nil
}

// formatter abstracts output formatting.
type formatter interface {
	answer(resp *api.ChatResponse) error
	suggestions(items []api.Suggestion) error
}

func newFormatter(cfg Config, streams Streams) formatter {
	if cfg.OutputFormat == FormatJSON {
		return &jsonFormatter{out: streams.Out}
	}
	f := &textFormatter{out: streams.Out}
	if w, ok := terminalWidth(streams.Out); ok {
		f.md = render.NewMarkdown(cfg.Theme)
		f.width = w
	}
	return f
}

// terminalWidth reports the width of w when it is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 80, true
	}
	return width, true
}

// textFormatter writes the answer; md is nil when output is not a terminal.
type textFormatter struct {
	out   io.Writer
	md    *render.Markdown
	width int
}

func (f *textFormatter) answer(resp *api.ChatResponse) error {
	text := render.StripHTML(resp.Response)
	if f.md != nil {
		text = f.md.Render(text, f.width)
	}
	_, err := fmt.Fprintln(f.out, text)
	return err
}

func (f *textFormatter) suggestions(items []api.Suggestion) error {
	for _, it := range items {
		if _, err := fmt.Fprintln(f.out, it.Question); err != nil {
			return err
		}
	}
	return nil
}

// jsonFormatter writes the server payload as a single JSON document.
type jsonFormatter struct {
	out io.Writer
}

func (f *jsonFormatter) answer(resp *api.ChatResponse) error {
	return f.write(resp)
}

func (f *jsonFormatter) suggestions(items []api.Suggestion) error {
	if items == nil {
		items = []api.Suggestion{}
	}
	return f.write(&api.AutocompleteResponse{Suggestions: items})
}

func (f *jsonFormatter) write(v easyjson.Marshaler) error {
	data, err := easyjson.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	_, err = fmt.Fprintln(f.out, string(data))
	return err
}
