package components

import (
	"strings"
	"testing"
)

func testList() GroupedList {
	return NewGroupedList([]ListGroup{
		{Heading: "EMPTY"},
		{Heading: "A", Items: []string{"a1", "a2"}},
		{Heading: "B", Items: []string{"b1"}},
		{Heading: "C", Items: []string{"c1", "c2"}},
	})
}

func TestGroupedList_StartsOnFirstEntry(t *testing.T) {
	if g, i := testList().Cursor(); g != 1 || i != 0 {
		t.Errorf("cursor = (%d, %d), want (1, 0)", g, i)
	}
}

func TestGroupedList_Move(t *testing.T) {
	tests := []struct {
		delta        int
		wantG, wantI int
	}{
		{1, 1, 1},
		{2, 2, 0},
		{3, 3, 0},
		{10, 3, 1},
		{-1, 1, 0},
	}
	for _, tt := range tests {
		l := testList()
		l.Move(tt.delta)
		if g, i := l.Cursor(); g != tt.wantG || i != tt.wantI {
			t.Errorf("Move(%d): cursor = (%d, %d), want (%d, %d)", tt.delta, g, i, tt.wantG, tt.wantI)
		}
	}

	l := testList()
	l.Move(4)
	l.Move(-2)
	if g, i := l.Cursor(); g != 2 || i != 0 {
		t.Errorf("back across groups: cursor = (%d, %d), want (2, 0)", g, i)
	}
	l.Move(-1)
	if g, i := l.Cursor(); g != 1 || i != 1 {
		t.Errorf("into previous group's last entry: cursor = (%d, %d), want (1, 1)", g, i)
	}
}

func TestGroupedList_SetCursor(t *testing.T) {
	l := testList()
	l.SetCursor(3, 1)
	l.SetCursor(0, 0) // EMPTY has no entries
	l.SetCursor(9, 0)
	if g, i := l.Cursor(); g != 3 || i != 1 {
		t.Errorf("cursor = (%d, %d), want (3, 1)", g, i)
	}
}

func TestGroupedList_View(t *testing.T) {
	out := testList().View()
	if !strings.Contains(out, "▸ a1") || strings.Contains(out, "▸ b1") {
		t.Errorf("cursor marker misplaced:\n%s", out)
	}
	for _, h := range []string{"EMPTY", "A", "B", "C"} {
		if !strings.Contains(out, h) {
			t.Errorf("missing heading %q", h)
		}
	}
}
