package keypad

import (
	"testing"
	"unicode/utf8"
)

func TestInsert(t *testing.T) {
	tests := []struct {
		name       string
		buf        string
		start, end int
		token      string
		wantBuf    string
		wantCursor int
	}{
		{"empty buffer", "", 0, 0, "x", "x", 1},
		{"append", "x+", 2, 2, "1", "x+1", 3},
		{"middle", "x1", 1, 1, "+", "x+1", 2},
		{"replace selection", "x+1", 0, 1, "y", "y+1", 1},
		{"multi rune token", "", 0, 0, `\sin(`, `\sin(`, 5},
		{"reversed selection", "abc", 2, 0, "z", "zc", 1},
		{"cursor past end", "ab", 10, 10, "c", "abc", 3},
		{"negative cursor", "ab", -3, -3, "c", "cab", 1},
		{"unicode buffer", "π+", 1, 1, "∞", "π∞+", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotBuf, gotCursor := Insert(tt.buf, tt.start, tt.end, tt.token)
			if gotBuf != tt.wantBuf || gotCursor != tt.wantCursor {
				t.Errorf("Insert(%q, %d, %d, %q) = (%q, %d), want (%q, %d)",
					tt.buf, tt.start, tt.end, tt.token, gotBuf, gotCursor, tt.wantBuf, tt.wantCursor)
			}
		})
	}
}

func TestBackspace(t *testing.T) {
	tests := []struct {
		name       string
		buf        string
		start, end int
		wantBuf    string
		wantCursor int
	}{
		{"collapsed end", "x+1", 3, 3, "x+", 2},
		{"collapsed middle", "x+1", 2, 2, "x1", 1},
		{"collapsed at zero", "x+1", 0, 0, "x+1", 0},
		{"empty buffer", "", 0, 0, "", 0},
		{"selection", "x+1", 1, 3, "x", 1},
		{"whole selection", "abc", 0, 3, "", 0},
		{"reversed selection", "abc", 3, 1, "a", 1},
		{"unicode rune", "π∞", 2, 2, "π", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotBuf, gotCursor := Backspace(tt.buf, tt.start, tt.end)
			if gotBuf != tt.wantBuf || gotCursor != tt.wantCursor {
				t.Errorf("Backspace(%q, %d, %d) = (%q, %d), want (%q, %d)",
					tt.buf, tt.start, tt.end, gotBuf, gotCursor, tt.wantBuf, tt.wantCursor)
			}
		})
	}
}

func TestInsertThenBackspace(t *testing.T) {
	bufs := []string{"", "x^2", "π + 1"}
	for _, buf := range bufs {
		n := utf8.RuneCountInString(buf)
		for s := 0; s <= n; s++ {
			// Single-rune tokens round-trip.
			for _, tok := range []string{"x", "+", "π", "∞"} {
				after, cur := Insert(buf, s, s, tok)
				back, backCur := Backspace(after, cur, cur)
				if back != buf || backCur != s {
					t.Errorf("buf=%q s=%d tok=%q: got (%q, %d), want (%q, %d)", buf, s, tok, back, backCur, buf, s)
				}
			}

			// Multi-rune tokens lose exactly one rune.
			for _, tok := range []string{`\sin(`, `\lim_{x \to a} `, `\frac{d}{dx}`} {
				after, cur := Insert(buf, s, s, tok)
				back, _ := Backspace(after, cur, cur)
				if got, want := utf8.RuneCountInString(back), utf8.RuneCountInString(after)-1; got != want {
					t.Errorf("buf=%q s=%d tok=%q: len after backspace = %d, want %d", buf, s, tok, got, want)
				}
			}
		}
	}
}

func TestLayout(t *testing.T) {
	var solve, clear, back int
	for r, row := range Layout {
		width := 0
		for _, k := range row {
			width += k.Span
			switch k.Action {
			case ActionSolve:
				solve++
			case ActionClear:
				clear++
			case ActionBackspace:
				back++
			case ActionInsert:
				if k.Token == "" {
					t.Errorf("row %d key %q inserts nothing", r, k.Label)
				}
			}
		}
		if width != Columns {
			t.Errorf("row %d spans %d columns, want %d", r, width, Columns)
		}
	}
	if solve != 1 || clear != 1 || back != 1 {
		t.Errorf("solve=%d clear=%d backspace=%d, want one of each", solve, clear, back)
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		from       Pos
		dRow, dCol int
		want       Pos
	}{
		{Pos{0, 0}, 0, 1, Pos{0, 1}},
		{Pos{0, 0}, 0, -1, Pos{0, 4}},
		{Pos{0, 0}, -1, 0, Pos{6, 0}},
		{Pos{5, 4}, 1, 0, Pos{6, 3}},
		{Pos{6, 3}, 0, 1, Pos{6, 0}},
	}
	for _, tt := range tests {
		if got := Move(tt.from, tt.dRow, tt.dCol); got != tt.want {
			t.Errorf("Move(%v, %d, %d) = %v, want %v", tt.from, tt.dRow, tt.dCol, got, tt.want)
		}
	}
	if k := At(Pos{6, 3}); k.Action != ActionSolve {
		t.Errorf("At(6,3) = %q, want HITUNG", k.Label)
	}
}
