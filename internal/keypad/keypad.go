// Package keypad edits the expression buffer at an explicit cursor.
//
// Positions are rune offsets into the buffer. A selection is the half-open
// range [start, end); a collapsed cursor has start == end. Out-of-range or
// reversed positions are clamped and ordered before use.
package keypad

// Insert replaces the selected range with token and returns the new buffer
// and the cursor placed immediately after the inserted text.
func Insert(buf string, start, end int, token string) (string, int) {
	r := []rune(buf)
	start, end = normalize(len(r), start, end)

	tok := []rune(token)
	out := make([]rune, 0, len(r)-(end-start)+len(tok))
	out = append(out, r[:start]...)
	out = append(out, tok...)
	out = append(out, r[end:]...)
	return string(out), start + len(tok)
}

// Backspace deletes one rune before a collapsed cursor, or the whole
// selection otherwise. A collapsed cursor at 0 is a no-op.
func Backspace(buf string, start, end int) (string, int) {
	r := []rune(buf)
	start, end = normalize(len(r), start, end)

	if start == end {
		if start == 0 {
			return buf, 0
		}
		start--
	}

	out := make([]rune, 0, len(r)-(end-start))
	out = append(out, r[:start]...)
	out = append(out, r[end:]...)
	return string(out), start
}

func normalize(n, start, end int) (int, int) {
	start = clamp(start, 0, n)
	end = clamp(end, 0, n)
	if end < start {
		start, end = end, start
	}
	return start, end
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
