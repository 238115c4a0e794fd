// ABOUTME: Tests for the slash command registry and dispatch
// ABOUTME: Covers every command, aliases, unknown command errors and nil callback safety

package commands

import (
	"errors"
	"strings"
	"testing"
)

type testCallbacks struct {
	attached    []string
	pickerOpen  bool
	detached    string
	uploadArg   string
	clearCalls  []bool
	exportArg   string
	fallbackHit bool
	exitCalled  bool
}

// testContext creates a CommandContext with callback tracking for test assertions.
func testContext() (*CommandContext, *testCallbacks) {
	cb := &testCallbacks{}
	ctx := &CommandContext{
		ServerURL: "http://localhost:5000",
		Version:   "0.1.0",
		Messages:  4,
		Staged:    []string{"faq.csv", "notes.md"},
		Dirty:     true,
		Attach: func(paths []string) (string, error) {
			cb.attached = paths
			return "Staged 2 file(s).", nil
		},
		OpenPicker: func() { cb.pickerOpen = true },
		Detach: func(name string) (int, error) {
			cb.detached = name
			if name == "faq.csv" {
				return 1, nil
			}
			return 0, nil
		},
		Upload: func(action string) error {
			cb.uploadArg = action
			if action == "bogus" {
				return errors.New("unknown upload action")
			}
			return nil
		},
		Clear:    func(all bool) { cb.clearCalls = append(cb.clearCalls, all) },
		Export:   func(path string) error { cb.exportArg = path; return nil },
		Fallback: func() error { cb.fallbackHit = true; return nil },
		ExitFn:   func() { cb.exitCalled = true },
	}
	return ctx, cb
}

func TestDispatch_Attach(t *testing.T) {
	r := NewRegistry()
	ctx, cb := testContext()

	out, err := r.Dispatch(ctx, "/attach ./faq.csv  notes.md")
	if err != nil {
		t.Fatalf("Dispatch() error: %v", err)
	}
	if out != "Staged 2 file(s)." {
		t.Errorf("output = %q", out)
	}
	if len(cb.attached) != 2 || cb.attached[0] != "./faq.csv" || cb.attached[1] != "notes.md" {
		t.Errorf("attached = %v", cb.attached)
	}

	if _, err := r.Dispatch(ctx, "/attach"); err != nil {
		t.Fatalf("Dispatch() error: %v", err)
	}
	if !cb.pickerOpen {
		t.Error("/attach without args should open the picker")
	}
}

func TestDispatch_Detach(t *testing.T) {
	r := NewRegistry()
	ctx, cb := testContext()

	out, _ := r.Dispatch(ctx, "/detach faq.csv")
	if cb.detached != "faq.csv" || out != "Removed faq.csv." {
		t.Errorf("detach: arg=%q out=%q", cb.detached, out)
	}
	out, _ = r.Dispatch(ctx, "/detach missing.txt")
	if !strings.Contains(out, "not staged") {
		t.Errorf("detach missing: out=%q", out)
	}
	out, _ = r.Dispatch(ctx, "/detach")
	if !strings.HasPrefix(out, "Usage:") {
		t.Errorf("detach without args: out=%q", out)
	}
}

func TestDispatch_Upload(t *testing.T) {
	r := NewRegistry()
	ctx, cb := testContext()

	out, err := r.Dispatch(ctx, "/upload keep")
	if err != nil {
		t.Fatalf("Dispatch() error: %v", err)
	}
	if cb.uploadArg != "keep" {
		t.Errorf("upload arg = %q; want keep", cb.uploadArg)
	}
	if !strings.Contains(out, "2 file(s)") {
		t.Errorf("output = %q", out)
	}

	if _, err := r.Dispatch(ctx, "/upload bogus"); err == nil {
		t.Error("expected error for bad action")
	}

	ctx.Staged = nil
	cb.uploadArg = ""
	out, _ = r.Dispatch(ctx, "/upload")
	if cb.uploadArg != "" || !strings.Contains(out, "No files staged") {
		t.Errorf("upload with nothing staged: arg=%q out=%q", cb.uploadArg, out)
	}
}

func TestDispatch_ClearAndClearAll(t *testing.T) {
	r := NewRegistry()
	ctx, cb := testContext()

	r.Dispatch(ctx, "/clear")
	r.Dispatch(ctx, "/clearall")
	if len(cb.clearCalls) != 2 || cb.clearCalls[0] || !cb.clearCalls[1] {
		t.Errorf("clear calls = %v; want [false true]", cb.clearCalls)
	}
}

func TestDispatch_Export(t *testing.T) {
	r := NewRegistry()
	ctx, cb := testContext()

	out, err := r.Dispatch(ctx, "/export")
	if err != nil {
		t.Fatalf("Dispatch() error: %v", err)
	}
	if cb.exportArg != "chat_export.txt" {
		t.Errorf("default export path = %q", cb.exportArg)
	}
	if out != "Exported to chat_export.txt." {
		t.Errorf("output = %q", out)
	}

	r.Dispatch(ctx, "/export /tmp/out.txt")
	if cb.exportArg != "/tmp/out.txt" {
		t.Errorf("export path = %q", cb.exportArg)
	}

	ctx.Export = func(string) error { return errors.New("read-only") }
	if _, err := r.Dispatch(ctx, "/export x"); err == nil {
		t.Error("expected export error")
	}
}

func TestDispatch_LLM(t *testing.T) {
	r := NewRegistry()
	ctx, cb := testContext()

	r.Dispatch(ctx, "/llm")
	if !cb.fallbackHit {
		t.Error("Fallback not called")
	}

	ctx.Fallback = func() error { return errors.New("no unmatched question") }
	if _, err := r.Dispatch(ctx, "/llm"); err == nil {
		t.Error("expected fallback error")
	}
}

func TestDispatch_Status(t *testing.T) {
	r := NewRegistry()
	ctx, _ := testContext()

	out, err := r.Dispatch(ctx, "/status")
	if err != nil {
		t.Fatalf("Dispatch() error: %v", err)
	}
	for _, want := range []string{"http://localhost:5000", "Messages: 4", "faq.csv, notes.md", "Pending:  yes"} {
		if !strings.Contains(out, want) {
			t.Errorf("status output missing %q:\n%s", want, out)
		}
	}
}

func TestDispatch_QuitAndAliases(t *testing.T) {
	r := NewRegistry()
	for _, in := range []string{"/quit", "/exit", "/q"} {
		ctx, cb := testContext()
		if _, err := r.Dispatch(ctx, in); err != nil {
			t.Fatalf("Dispatch(%q) error: %v", in, err)
		}
		if !cb.exitCalled {
			t.Errorf("%s did not exit", in)
		}
	}
}

func TestDispatch_Help(t *testing.T) {
	r := NewRegistry()
	ctx, _ := testContext()

	out, err := r.Dispatch(ctx, "/help")
	if err != nil {
		t.Fatalf("Dispatch() error: %v", err)
	}
	for _, cmd := range r.List() {
		if !strings.Contains(out, cmd.Usage) {
			t.Errorf("help missing %s", cmd.Usage)
		}
	}
}

func TestDispatch_UnknownAndNotCommand(t *testing.T) {
	r := NewRegistry()
	ctx, _ := testContext()

	if _, err := r.Dispatch(ctx, "/frobnicate"); err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("unknown command error = %v", err)
	}
	if _, err := r.Dispatch(ctx, "hello"); err == nil {
		t.Error("expected error for non-command input")
	}
}

func TestDispatch_NilCallbacks(t *testing.T) {
	r := NewRegistry()
	ctx := &CommandContext{Staged: []string{"a.txt"}}

	inputs := []string{"/attach a.txt", "/detach a.txt", "/upload", "/clear", "/clearall", "/export", "/llm", "/quit"}
	for _, in := range inputs {
		out, err := r.Dispatch(ctx, in)
		if err != nil {
			t.Errorf("Dispatch(%q) error: %v", in, err)
		}
		if !strings.Contains(out, "not available") {
			t.Errorf("Dispatch(%q) = %q; want not available", in, out)
		}
	}
}

func TestIsCommand(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"/help", true},
		{"/", true},
		{"help", false},
		{"", false},
		{" /help", false},
	}
	for _, tt := range tests {
		if got := IsCommand(tt.input); got != tt.want {
			t.Errorf("IsCommand(%q) = %v; want %v", tt.input, got, tt.want)
		}
	}
}

func TestComplete(t *testing.T) {
	r := NewRegistry()
	got := r.Complete("cl")
	if len(got) != 2 || got[0] != "clear" || got[1] != "clearall" {
		t.Errorf("Complete(cl) = %v", got)
	}
	if len(r.Complete("zzz")) != 0 {
		t.Error("Complete(zzz) should be empty")
	}
}
