package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/cybercalc/cybercalc/internal/ui/theme"
)

// ListGroup is a heading followed by its entries.
type ListGroup struct {
	Heading string
	Items   []string
}

// GroupedList is a cursor over the entries of several groups. Headings are
// drawn but never hold the cursor.
type GroupedList struct {
	groups []ListGroup
	group  int
	item   int
}

// NewGroupedList places the cursor on the first entry.
func NewGroupedList(groups []ListGroup) GroupedList {
	l := GroupedList{groups: groups}
	for g := range groups {
		if len(groups[g].Items) > 0 {
			l.group = g
			break
		}
	}
	return l
}

// Cursor returns the group and item index under the cursor.
func (l GroupedList) Cursor() (group, item int) {
	return l.group, l.item
}

// SetCursor moves to item of group, ignoring positions that do not exist.
func (l *GroupedList) SetCursor(group, item int) {
	if group < 0 || group >= len(l.groups) || item < 0 || item >= len(l.groups[group].Items) {
		return
	}
	l.group, l.item = group, item
}

// Move steps the cursor by delta entries across group boundaries, stopping
// at either end.
func (l *GroupedList) Move(delta int) {
	for ; delta > 0; delta-- {
		if !l.step(1) {
			return
		}
	}
	for ; delta < 0; delta++ {
		if !l.step(-1) {
			return
		}
	}
}

func (l *GroupedList) step(dir int) bool {
	g, i := l.group, l.item+dir
	for g >= 0 && g < len(l.groups) {
		if i >= 0 && i < len(l.groups[g].Items) {
			l.group, l.item = g, i
			return true
		}
		g += dir
		if g >= 0 && g < len(l.groups) && dir < 0 {
			i = len(l.groups[g].Items) - 1
		} else {
			i = 0
		}
	}
	return false
}

func (l GroupedList) View() string {
	heading := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	var lines []string
	for g, grp := range l.groups {
		if g > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, heading.Render(grp.Heading))
		for i, item := range grp.Items {
			if g == l.group && i == l.item {
				lines = append(lines, theme.Selected.Render(" ▸ "+item))
			} else {
				lines = append(lines, theme.Unselected.Render("   "+item))
			}
		}
	}
	return strings.Join(lines, "\n")
}
