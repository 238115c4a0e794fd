// ABOUTME: Settles the terminal background before BubbleTea's init() sends OSC queries
// ABOUTME: QNACHAT_BACKGROUND=light|dark picks the palette; default is dark

package termfix

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BackgroundEnv selects the adaptive colour variant without querying the terminal.
const BackgroundEnv = "QNACHAT_BACKGROUND"

func init() {
	// Setting the background explicitly skips lipgloss's OSC 10/11 query,
	// whose late reply would otherwise be read as typed input.
	// This package must not import bubbletea so it initialises first.
	lipgloss.SetHasDarkBackground(!isLight(os.Getenv(BackgroundEnv)))
}

func isLight(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "light")
}
