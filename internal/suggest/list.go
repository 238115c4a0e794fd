// ABOUTME: Suggestion list model: candidate set plus a clamped selection cursor
// ABOUTME: Every operation returns an Event describing what the view must update

package suggest

// Suggestion is one candidate question and its answer.
type Suggestion struct {
	Question string
	Answer   string
}

// Direction is a keyboard navigation direction.
type Direction int

const (
	Next Direction = iota
	Previous
)

// EventKind tells the view what changed.
type EventKind int

const (
	// None means nothing observable changed.
	None EventKind = iota
	// Changed means a new candidate set is shown with no selection.
	Changed
	// Active means the selection moved to Event.Index.
	Active
	// Hidden means the list is no longer shown.
	Hidden
)

func (k EventKind) String() string {
	switch k {
	case Changed:
		return "changed"
	case Active:
		return "active"
	case Hidden:
		return "hidden"
	default:
		return "none"
	}
}

// Event is the result of a list operation.
type Event struct {
	Kind  EventKind
	Index int
}

// List holds the current candidates and the selection. selected is -1 when
// nothing is selected and is always within [-1, len(items)-1].
type List struct {
	items    []Suggestion
	selected int
	visible  bool
}

// NewList returns an empty, hidden list.
func NewList() *List {
	return &List{selected: -1}
}

// Replace installs a new candidate set and resets the selection. An empty
// set hides the list.
func (l *List) Replace(items []Suggestion) Event {
	l.items = append([]Suggestion(nil), items...)
	l.selected = -1
	if len(l.items) == 0 {
		return l.hide()
	}
	l.visible = true
	return Event{Kind: Changed, Index: -1}
}

// Clear empties the candidate set and hides the list.
func (l *List) Clear() Event {
	l.items = nil
	l.selected = -1
	return l.hide()
}

// Move shifts the selection, clamping at both ends. From no selection, Next
// selects the first item and Previous does nothing.
func (l *List) Move(dir Direction) Event {
	if !l.visible {
		return Event{Kind: None, Index: l.selected}
	}
	next := l.selected
	switch dir {
	case Next:
		if next < len(l.items)-1 {
			next++
		}
	case Previous:
		if next > 0 {
			next--
		}
	}
	if next == l.selected {
		return Event{Kind: None, Index: l.selected}
	}
	l.selected = next
	return Event{Kind: Active, Index: next}
}

// Hover selects the item under the pointer and changes nothing else.
func (l *List) Hover(i int) Event {
	if !l.visible || i < 0 || i >= len(l.items) || i == l.selected {
		return Event{Kind: None, Index: l.selected}
	}
	l.selected = i
	return Event{Kind: Active, Index: i}
}

// Commit returns the selected suggestion and hides the list. With no
// selection it returns false and leaves the list as is; the caller then
// treats the raw input as the message.
func (l *List) Commit() (Suggestion, bool) {
	if !l.visible || l.selected < 0 {
		return Suggestion{}, false
	}
	s := l.items[l.selected]
	l.selected = -1
	l.visible = false
	return s, true
}

// Dismiss clears the selection and hides the list without touching items.
func (l *List) Dismiss() Event {
	l.selected = -1
	return l.hide()
}

func (l *List) hide() Event {
	if !l.visible {
		return Event{Kind: None, Index: -1}
	}
	l.visible = false
	return Event{Kind: Hidden, Index: -1}
}

// Items returns a copy of the candidates.
func (l *List) Items() []Suggestion {
	return append([]Suggestion(nil), l.items...)
}

// Len returns the number of candidates.
func (l *List) Len() int { return len(l.items) }

// Selected returns the selected index or -1.
func (l *List) Selected() int { return l.selected }

// Visible reports whether the list should be rendered. It is never true for
// an empty list.
func (l *List) Visible() bool { return l.visible && len(l.items) > 0 }
