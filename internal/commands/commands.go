// ABOUTME: Slash command registry and dispatch for interactive mode
// ABOUTME: Commands: attach, clear, clearall, detach, export, help, llm, quit, status, upload

package commands

import (
	"fmt"
	"sort"
	"strings"
)

// Command represents a slash command.
type Command struct {
	Name        string
	Usage       string
	Description string
	Execute     func(ctx *CommandContext, args string) (string, error)
}

// CommandContext provides access to app state for commands.
type CommandContext struct {
	ServerURL string
	Version   string
	Messages  int
	Staged    []string
	Dirty     bool
	Sending   bool

	// Callbacks. All nilable; commands return "not available" when nil.
	Attach     func(paths []string) (string, error)
	OpenPicker func()
	Detach     func(name string) (int, error)
	Upload     func(action string) error
	Clear      func(all bool)
	Export     func(path string) error
	Fallback   func() error
	ExitFn     func()
}

// Registry holds all registered slash commands.
type Registry struct {
	commands map[string]*Command
	aliases  map[string]string
}

// NewRegistry creates a registry with all core commands registered.
func NewRegistry() *Registry {
	r := &Registry{
		commands: make(map[string]*Command),
		aliases:  map[string]string{"exit": "quit", "q": "quit", "?": "help"},
	}
	r.registerCoreCommands()
	return r
}

// Get returns a command by name or alias.
func (r *Registry) Get(name string) (*Command, bool) {
	if target, ok := r.aliases[name]; ok {
		name = target
	}
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns all commands sorted by name for deterministic output.
func (r *Registry) List() []*Command {
	result := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		result = append(result, cmd)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Complete returns the names of commands starting with prefix (without '/').
func (r *Registry) Complete(prefix string) []string {
	var out []string
	for _, cmd := range r.List() {
		if strings.HasPrefix(cmd.Name, prefix) {
			out = append(out, cmd.Name)
		}
	}
	return out
}

// Dispatch parses a "/command args" input, looks up the command, and executes it.
func (r *Registry) Dispatch(ctx *CommandContext, input string) (string, error) {
	input = strings.TrimSpace(input)
	if !IsCommand(input) {
		return "", fmt.Errorf("not a command: %q", input)
	}

	raw := input[1:]
	parts := strings.SplitN(raw, " ", 2)
	name := parts[0]
	args := ""
	if len(parts) > 1 {
		args = strings.TrimSpace(parts[1])
	}

	cmd, ok := r.Get(name)
	if !ok {
		return "", fmt.Errorf("unknown command: /%s (try /help)", name)
	}
	return cmd.Execute(ctx, args)
}

// IsCommand returns true if input starts with '/'.
func IsCommand(input string) bool {
	return len(input) > 0 && input[0] == '/'
}

func (r *Registry) registerCoreCommands() {
	core := []*Command{
		{
			Name:        "attach",
			Usage:       "/attach [path...]",
			Description: "Stage files for upload (no args opens the picker)",
			Execute: func(ctx *CommandContext, args string) (string, error) {
				paths := strings.Fields(args)
				if len(paths) == 0 {
					if ctx.OpenPicker == nil {
						return "Usage: /attach <path...>", nil
					}
					ctx.OpenPicker()
					return "", nil
				}
				if ctx.Attach == nil {
					return "Attach not available.", nil
				}
				return ctx.Attach(paths)
			},
		},
		{
			Name:        "detach",
			Usage:       "/detach <name|name#n>",
			Description: "Remove a staged file (name#n picks one of several with the same name)",
			Execute: func(ctx *CommandContext, args string) (string, error) {
				if ctx.Detach == nil {
					return "Detach not available.", nil
				}
				if args == "" {
					return "Usage: /detach <name|name#n>", nil
				}
				n, err := ctx.Detach(args)
				if err != nil {
					return "", err
				}
				if n == 0 {
					return fmt.Sprintf("%s is not staged.", args), nil
				}
				return fmt.Sprintf("Removed %s.", args), nil
			},
		},
		{
			Name:        "upload",
			Usage:       "/upload [upload|keep|clear]",
			Description: "Upload staged files (keep or clear the conversation)",
			Execute: func(ctx *CommandContext, args string) (string, error) {
				if ctx.Upload == nil {
					return "Upload not available.", nil
				}
				if len(ctx.Staged) == 0 {
					return "No files staged. Use /attach first.", nil
				}
				if err := ctx.Upload(args); err != nil {
					return "", err
				}
				return fmt.Sprintf("Uploading %d file(s)...", len(ctx.Staged)), nil
			},
		},
		{
			Name:        "clear",
			Usage:       "/clear",
			Description: "Clear the chat history",
			Execute: func(ctx *CommandContext, _ string) (string, error) {
				if ctx.Clear == nil {
					return "Clear not available.", nil
				}
				ctx.Clear(false)
				return "", nil
			},
		},
		{
			Name:        "clearall",
			Usage:       "/clearall",
			Description: "Clear the chat history and the uploaded document",
			Execute: func(ctx *CommandContext, _ string) (string, error) {
				if ctx.Clear == nil {
					return "Clear not available.", nil
				}
				ctx.Clear(true)
				return "", nil
			},
		},
		{
			Name:        "export",
			Usage:       "/export [path]",
			Description: "Export the transcript (.html for a styled page, plain text otherwise)",
			Execute: func(ctx *CommandContext, args string) (string, error) {
				if ctx.Export == nil {
					return "Export not available.", nil
				}
				if args == "" {
					args = "chat_export.txt"
				}
				if err := ctx.Export(args); err != nil {
					return "", fmt.Errorf("export transcript: %w", err)
				}
				return fmt.Sprintf("Exported to %s.", args), nil
			},
		},
		{
			Name:        "llm",
			Usage:       "/llm",
			Description: "Ask the LLM to answer the last unmatched question",
			Execute: func(ctx *CommandContext, _ string) (string, error) {
				if ctx.Fallback == nil {
					return "LLM fallback not available.", nil
				}
				if err := ctx.Fallback(); err != nil {
					return "", err
				}
				return "", nil
			},
		},
		{
			Name:        "status",
			Usage:       "/status",
			Description: "Show server, transcript and staging status",
			Execute: func(ctx *CommandContext, _ string) (string, error) {
				pending := "no"
				if ctx.Dirty {
					pending = "yes"
				}
				staged := "none"
				if len(ctx.Staged) > 0 {
					staged = strings.Join(ctx.Staged, ", ")
				}
				return fmt.Sprintf(
					"Server:   %s\nMessages: %d\nStaged:   %s\nPending:  %s\nVersion:  %s",
					ctx.ServerURL, ctx.Messages, staged, pending, ctx.Version,
				), nil
			},
		},
		{
			Name:        "quit",
			Usage:       "/quit",
			Description: "Exit the application",
			Execute: func(ctx *CommandContext, _ string) (string, error) {
				if ctx.ExitFn == nil {
					return "Exit not available.", nil
				}
				ctx.ExitFn()
				return "Goodbye.", nil
			},
		},
	}
	core = append(core, &Command{
		Name:        "help",
		Usage:       "/help",
		Description: "Show available commands",
		Execute: func(_ *CommandContext, _ string) (string, error) {
			var b strings.Builder
			b.WriteString("Available commands:\n")
			for _, cmd := range r.List() {
				fmt.Fprintf(&b, "  %-28s %s\n", cmd.Usage, cmd.Description)
			}
			b.WriteString("\nKeys: enter send/stop, up/down suggestions, esc dismiss, ctrl+f attach, ctrl+l ask LLM, ctrl+c quit")
			return b.String(), nil
		},
	})
	for _, cmd := range core {
		r.commands[cmd.Name] = cmd
	}
}
