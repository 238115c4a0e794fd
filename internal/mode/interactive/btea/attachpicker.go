// ABOUTME: AttachPickerModel is a fuzzy file picker overlay for staging uploads
// ABOUTME: Items come from an async scan; enter stages the highlighted file, esc closes

package btea

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"
)

// FileInfo holds file metadata for display.
type FileInfo struct {
	Path    string
	RelPath string
	Size    int64
	ModTime time.Time
}

// AttachSelectMsg is returned when the user picks a file.
type AttachSelectMsg struct{ Path string }

// AttachDismissMsg is returned when the user closes the picker.
type AttachDismissMsg struct{}

// AttachPickerModel is a fuzzy selector over uploadable files.
// Implements tea.Model with value semantics. No filesystem I/O; items
// are provided externally via SetItems.
type AttachPickerModel struct {
	items     []FileInfo
	visible   []FileInfo
	selected  int
	scrollOff int
	maxHeight int
	filter    string
	width     int
	loading   bool
}

// NewAttachPickerModel creates an empty picker in the loading state.
func NewAttachPickerModel() AttachPickerModel {
	return AttachPickerModel{
		maxHeight: 10,
		loading:   true,
	}
}

// Init returns nil; no commands needed at startup.
func (m AttachPickerModel) Init() tea.Cmd {
	return nil
}

// Update handles key and window-size messages.
func (m AttachPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyRunes, tea.KeySpace:
			m = m.SetFilter(m.filter + string(msg.Runes))
		case tea.KeyBackspace:
			if len(m.filter) > 0 {
				r := []rune(m.filter)
				m = m.SetFilter(string(r[:len(r)-1]))
			}
		case tea.KeyUp:
			m.moveUp()
		case tea.KeyDown:
			m.moveDown()
		case tea.KeyEnter, tea.KeyTab:
			if p := m.SelectedPath(); p != "" {
				return m, func() tea.Msg { return AttachSelectMsg{Path: p} }
			}
		case tea.KeyEsc:
			return m, func() tea.Msg { return AttachDismissMsg{} }
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// View renders the header, loading state and the visible window.
func (m AttachPickerModel) View() string {
	s := Styles()
	var b strings.Builder

	header := "  Attach file"
	if m.filter != "" {
		header += fmt.Sprintf(" matching %q", m.filter)
	}
	b.WriteString(s.Dim.Render(header))

	if m.loading && len(m.items) == 0 {
		b.WriteByte('\n')
		b.WriteString(s.Dim.Render("  Scanning files..."))
		return b.String()
	}
	if len(m.visible) == 0 {
		b.WriteByte('\n')
		if m.filter != "" {
			b.WriteString(s.Dim.Render("  No matching files"))
		} else {
			b.WriteString(s.Dim.Render("  No uploadable files found"))
		}
		return b.String()
	}

	end := min(m.scrollOff+m.maxHeight, len(m.visible))
	for i := m.scrollOff; i < end; i++ {
		b.WriteByte('\n')
		b.WriteString(formatFileItem(s, m.visible[i], m.width, i == m.selected))
	}
	return b.String()
}

// SetItems replaces the file list and ends the loading state.
func (m AttachPickerModel) SetItems(items []FileInfo) AttachPickerModel {
	m.items = items
	m.loading = false
	m.selected = 0
	m.scrollOff = 0
	m.applyFilter()
	return m
}

// SetFilter sets the fuzzy filter string and refilters.
func (m AttachPickerModel) SetFilter(f string) AttachPickerModel {
	m.filter = f
	m.selected = 0
	m.scrollOff = 0
	m.applyFilter()
	return m
}

// SelectedPath returns the absolute path of the highlighted file, or "".
func (m AttachPickerModel) SelectedPath() string {
	if len(m.visible) == 0 {
		return ""
	}
	return m.visible[m.selected].Path
}

// VisibleItems returns the currently filtered items.
func (m AttachPickerModel) VisibleItems() []FileInfo {
	return m.visible
}

// Height returns the number of lines View renders.
func (m AttachPickerModel) Height() int {
	if len(m.visible) == 0 {
		return 2
	}
	return 1 + min(m.maxHeight, len(m.visible)-m.scrollOff)
}

func (m *AttachPickerModel) moveUp() {
	if m.selected > 0 {
		m.selected--
		m.adjustScroll()
	}
}

func (m *AttachPickerModel) moveDown() {
	if m.selected < len(m.visible)-1 {
		m.selected++
		m.adjustScroll()
	}
}

func (m *AttachPickerModel) adjustScroll() {
	if m.selected < m.scrollOff {
		m.scrollOff = m.selected
	}
	if m.selected >= m.scrollOff+m.maxHeight {
		m.scrollOff = m.selected - m.maxHeight + 1
	}
}

func (m *AttachPickerModel) applyFilter() {
	if m.filter == "" {
		m.visible = append([]FileInfo(nil), m.items...)
		return
	}
	paths := make([]string, len(m.items))
	for i, item := range m.items {
		paths[i] = item.RelPath
	}
	matches := fuzzy.Find(m.filter, paths)
	m.visible = make([]FileInfo, len(matches))
	for i, match := range matches {
		m.visible[i] = m.items[match.Index]
	}
}

func formatFileItem(s ThemeStyles, item FileInfo, w int, selected bool) string {
	meta := fmt.Sprintf("  (%s, %s)", humanSize(item.Size), item.ModTime.Format("Jan 02 15:04"))
	name := "  " + item.RelPath
	if w > 0 {
		name = truncateToWidth(name, max(4, w-runewidth.StringWidth(meta)))
	}
	if selected {
		return s.Bold.Render(s.Selection.Render(name + meta))
	}
	return name + s.Secondary.Render(meta)
}

func humanSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
