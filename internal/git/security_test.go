// ABOUTME: Security tests for git command validation
// ABOUTME: Tests command injection prevention and the subcommand/option allow-lists

package git

import (
	"strings"
	"testing"
)

func TestSanitizeGitArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		errorMsg string
	}{
		{name: "rev-parse toplevel", args: []string{"rev-parse", "--show-toplevel"}},
		{name: "ls-files", args: []string{"ls-files", "--cached", "--others", "--exclude-standard", "-z"}},
		{name: "semicolon", args: []string{"ls-files", "; rm -rf /"}, errorMsg: "dangerous character"},
		{name: "pipe", args: []string{"ls-files", "| cat /etc/passwd"}, errorMsg: "dangerous character"},
		{name: "backtick", args: []string{"rev-parse", "`whoami`"}, errorMsg: "command substitution"},
		{name: "dollar paren", args: []string{"rev-parse", "$(whoami)"}, errorMsg: "command substitution"},
		{name: "write subcommand", args: []string{"commit", "-m", "x"}, errorMsg: "not allowed"},
		{name: "unknown option", args: []string{"ls-files", "--exec=sh"}, errorMsg: "option not allowed"},
		{name: "empty", args: []string{}, errorMsg: "no git command"},
		{name: "non-printable", args: []string{"rev-parse", "HEAD\x07"}, errorMsg: "non-printable"},
		{name: "too long", args: []string{"rev-parse", strings.Repeat("a", 256)}, errorMsg: "too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sanitizeGitArgs(tt.args)
			if tt.errorMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if len(got) != len(tt.args) {
					t.Errorf("sanitized = %v; want %v", got, tt.args)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.errorMsg)
			}
			if !strings.Contains(err.Error(), tt.errorMsg) {
				t.Errorf("error = %q; want it to contain %q", err, tt.errorMsg)
			}
		})
	}
}

func TestSanitizeGitArgs_DropsEmpty(t *testing.T) {
	got, err := sanitizeGitArgs([]string{"rev-parse", "", "--show-toplevel"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[1] != "--show-toplevel" {
		t.Errorf("sanitized = %v", got)
	}
}
