// ABOUTME: Argument validation for the read-only git commands qnachat runs
// ABOUTME: Only allow-listed subcommands and options pass; shell metacharacters are rejected

package git

import (
	"fmt"
	"strings"
	"unicode"
)

// allowedGitCommands lists the subcommands qnachat may run. All are read-only.
var allowedGitCommands = map[string]bool{
	"rev-parse": true,
	"ls-files":  true,
}

var allowedGitOptions = map[string]bool{
	"--cached":              true,
	"--others":              true,
	"--exclude-standard":    true,
	"--show-toplevel":       true,
	"--is-inside-work-tree": true,
	"-z":                    true,
}

// sanitizeGitArgs validates git arguments, dropping empty ones.
func sanitizeGitArgs(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no git command specified")
	}

	subcommand := args[0]
	if !allowedGitCommands[subcommand] {
		return nil, fmt.Errorf("git subcommand not allowed: %q", subcommand)
	}

	sanitized := make([]string, 0, len(args))
	sanitized = append(sanitized, subcommand)
	for _, arg := range args[1:] {
		if arg == "" {
			continue
		}
		if err := validateGitArg(arg); err != nil {
			return nil, fmt.Errorf("invalid git argument %q: %w", arg, err)
		}
		sanitized = append(sanitized, arg)
	}
	return sanitized, nil
}

func validateGitArg(arg string) error {
	// Checked first so the error names the substitution.
	if strings.Contains(arg, "$(") || strings.Contains(arg, "`") {
		return fmt.Errorf("command substitution not allowed")
	}

	for _, char := range []string{";", "|", "&", "$", "(", ")", "{", "}", "<", ">", "\\"} {
		if strings.Contains(arg, char) {
			return fmt.Errorf("contains dangerous character: %s", char)
		}
	}

	if strings.HasPrefix(arg, "-") {
		if !allowedGitOptions[arg] {
			return fmt.Errorf("git option not allowed: %s", arg)
		}
		return nil
	}
	return validateGitString(arg)
}

func validateGitString(s string) error {
	if len(s) > 255 {
		return fmt.Errorf("string too long (max 255 characters)")
	}
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return fmt.Errorf("contains non-printable character")
		}
	}
	return nil
}
