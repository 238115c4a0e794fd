// ABOUTME: Tests for suggestion list navigation, hover, commit and dismissal
// ABOUTME: Includes an exhaustive bounds walk over random-ish move sequences

package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func three() []Suggestion {
	return []Suggestion{
		{Question: "How do I reset?", Answer: "Hold the button."},
		{Question: "How do I pair?", Answer: "Open settings."},
		{Question: "How do I charge?", Answer: "Use USB-C."},
	}
}

func TestList_ReplaceResetsSelection(t *testing.T) {
	t.Parallel()

	l := NewList()
	assert.Equal(t, Event{Kind: Changed, Index: -1}, l.Replace(three()))
	l.Move(Next)
	l.Move(Next)
	require.Equal(t, 1, l.Selected())

	l.Replace(three()[:2])
	assert.Equal(t, -1, l.Selected())
	assert.True(t, l.Visible())
}

func TestList_EmptyNeverVisible(t *testing.T) {
	t.Parallel()

	l := NewList()
	assert.Equal(t, None, l.Replace(nil).Kind)
	assert.False(t, l.Visible())

	l.Replace(three())
	assert.Equal(t, Hidden, l.Replace([]Suggestion{}).Kind)
	assert.False(t, l.Visible())
	assert.Equal(t, None, l.Move(Next).Kind)
}

func TestList_MoveClampsWithoutWrap(t *testing.T) {
	t.Parallel()

	l := NewList()
	l.Replace(three())

	assert.Equal(t, None, l.Move(Previous).Kind, "previous with no selection")
	assert.Equal(t, -1, l.Selected())

	assert.Equal(t, Event{Kind: Active, Index: 0}, l.Move(Next))
	assert.Equal(t, None, l.Move(Previous).Kind)
	assert.Equal(t, None, l.Move(Previous).Kind)
	assert.Equal(t, 0, l.Selected())

	l.Move(Next)
	l.Move(Next)
	assert.Equal(t, None, l.Move(Next).Kind)
	assert.Equal(t, 2, l.Selected())
}

func TestList_SelectionAlwaysInBounds(t *testing.T) {
	t.Parallel()

	moves := []Direction{Next, Next, Previous, Next, Next, Next, Next, Previous, Previous, Previous, Previous, Next}
	for n := 0; n <= 4; n++ {
		items := make([]Suggestion, n)
		l := NewList()
		l.Replace(items)
		for _, m := range moves {
			l.Move(m)
			assert.GreaterOrEqual(t, l.Selected(), -1)
			assert.LessOrEqual(t, l.Selected(), n-1)
		}
	}
}

func TestList_Hover(t *testing.T) {
	t.Parallel()

	l := NewList()
	l.Replace(three())
	assert.Equal(t, Event{Kind: Active, Index: 2}, l.Hover(2))
	assert.Equal(t, None, l.Hover(5).Kind)
	assert.Equal(t, None, l.Hover(-1).Kind)
	assert.Equal(t, 2, l.Selected())
	assert.Len(t, l.Items(), 3)
	assert.True(t, l.Visible())
}

func TestList_Commit(t *testing.T) {
	t.Parallel()

	l := NewList()
	l.Replace(three())

	_, ok := l.Commit()
	assert.False(t, ok, "no selection")
	assert.True(t, l.Visible())

	l.Move(Next)
	l.Move(Next)
	s, ok := l.Commit()
	require.True(t, ok)
	assert.Equal(t, "How do I pair?", s.Question)
	assert.False(t, l.Visible())
	assert.Equal(t, -1, l.Selected())
}

func TestList_DismissKeepsItems(t *testing.T) {
	t.Parallel()

	l := NewList()
	l.Replace(three())
	l.Move(Next)

	assert.Equal(t, Hidden, l.Dismiss().Kind)
	assert.Equal(t, None, l.Dismiss().Kind)
	assert.Equal(t, -1, l.Selected())
	assert.Equal(t, 3, l.Len())
	assert.False(t, l.Visible())
}

func TestList_Clear(t *testing.T) {
	t.Parallel()

	l := NewList()
	l.Replace(three())
	assert.Equal(t, Hidden, l.Clear().Kind)
	assert.Zero(t, l.Len())
	assert.Equal(t, None, l.Clear().Kind)
}
