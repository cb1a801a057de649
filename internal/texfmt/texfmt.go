// Package texfmt turns the LaTeX returned by the solver into readable
// Unicode for a terminal. It is a best-effort typesetter: unknown commands
// degrade to their name and malformed input never fails.
package texfmt

import (
	"regexp"
	"strings"
	"unicode"
)

var fenceLatex = regexp.MustCompile("(?i)```latex")

// Render converts latex to plain Unicode. In display mode a `\\` line break
// becomes a newline; inline it becomes a space.
func Render(latex string, display bool) string {
	s := clean(latex)
	if s == "" {
		return ""
	}
	c := &converter{src: []rune(s), display: display}
	return tidy(c.run(false), display)
}

// clean removes markdown fences, $ delimiters and a \[ \] wrapper.
func clean(s string) string {
	s = fenceLatex.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "```", "")
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "$")
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, `\[`) && strings.HasSuffix(s, `\]`) && len(s) >= 4 {
		s = strings.TrimSpace(s[2 : len(s)-2])
	}
	return s
}

type converter struct {
	src     []rune
	pos     int
	display bool
}

func (c *converter) peek() (rune, bool) {
	if c.pos >= len(c.src) {
		return 0, false
	}
	return c.src[c.pos], true
}

func (c *converter) skipSpaces() {
	for c.pos < len(c.src) && unicode.IsSpace(c.src[c.pos]) {
		c.pos++
	}
}

// run converts until the end of input, or until the closing brace of the
// current group when inGroup is set.
func (c *converter) run(inGroup bool) string {
	var b strings.Builder
	for c.pos < len(c.src) {
		r := c.src[c.pos]
		switch r {
		case '}':
			c.pos++
			if inGroup {
				return b.String()
			}
		case '{':
			c.pos++
			b.WriteString(c.run(true))
		case '\\':
			b.WriteString(c.command())
		case '^':
			c.pos++
			b.WriteString(script(c.arg(), superscripts, "^"))
		case '_':
			c.pos++
			b.WriteString(script(c.arg(), subscripts, "_"))
		case '&':
			c.pos++
		case '~', '\t', '\n', '\r':
			c.pos++
			b.WriteByte(' ')
		default:
			c.pos++
			b.WriteRune(r)
		}
	}
	return b.String()
}

// arg reads one argument: a braced group, a command, or a single rune.
func (c *converter) arg() string {
	c.skipSpaces()
	r, ok := c.peek()
	if !ok {
		return ""
	}
	switch r {
	case '{':
		c.pos++
		return c.run(true)
	case '\\':
		return c.command()
	default:
		c.pos++
		return string(r)
	}
}

// optArg reads an optional [..] argument.
func (c *converter) optArg() string {
	c.skipSpaces()
	if r, ok := c.peek(); !ok || r != '[' {
		return ""
	}
	c.pos++
	start := c.pos
	for c.pos < len(c.src) && c.src[c.pos] != ']' {
		c.pos++
	}
	inner := string(c.src[start:c.pos])
	if c.pos < len(c.src) {
		c.pos++
	}
	return Render(inner, false)
}

// command converts a backslash command starting at c.pos.
func (c *converter) command() string {
	c.pos++
	r, ok := c.peek()
	if !ok {
		return ""
	}
	if !unicode.IsLetter(r) {
		c.pos++
		switch r {
		case ',', ';', ':', '>', ' ':
			return " "
		case '!':
			return ""
		case '\\':
			if c.display {
				return "\n"
			}
			return " "
		default:
			return string(r)
		}
	}

	start := c.pos
	for c.pos < len(c.src) && unicode.IsLetter(c.src[c.pos]) {
		c.pos++
	}
	name := string(c.src[start:c.pos])

	switch name {
	case "frac", "dfrac", "tfrac", "cfrac":
		num := c.arg()
		den := c.arg()
		return wrap(num) + "/" + wrap(den)
	case "sqrt":
		idx := c.optArg()
		body := wrap(c.arg())
		if idx == "" {
			return "√" + body
		}
		return script(idx, superscripts, "") + "√" + body
	case "lim":
		save := c.pos
		c.skipSpaces()
		if r, ok := c.peek(); ok && r == '_' {
			c.pos++
			return "lim(" + strings.Join(strings.Fields(c.arg()), "") + ")"
		}
		c.pos = save
		return "lim"
	case "left", "right", "bigl", "bigr", "Bigl", "Bigr", "big", "Big":
		return c.delimiter()
	case "text", "textrm", "textbf", "textit", "mathrm", "mathbf", "mathit",
		"mathsf", "mathtt", "operatorname", "boldsymbol", "mbox":
		return c.arg()
	case "begin", "end":
		c.arg()
		return ""
	case "quad", "qquad":
		return " "
	case "displaystyle", "textstyle", "limits", "nolimits":
		return ""
	}
	if s, ok := symbols[name]; ok {
		return s
	}
	return name
}

// delimiter reads the delimiter after \left or \right. "." is invisible.
func (c *converter) delimiter() string {
	c.skipSpaces()
	r, ok := c.peek()
	if !ok {
		return ""
	}
	switch r {
	case '.':
		c.pos++
		return ""
	case '\\':
		return c.command()
	default:
		c.pos++
		return string(r)
	}
}

// wrap parenthesises s unless it is a single atom.
func wrap(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || atomic(s) {
		return s
	}
	return "(" + s + ")"
}

func atomic(s string) bool {
	rs := []rune(s)
	if len(rs) == 1 {
		return true
	}
	for _, r := range rs {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '.' {
			return false
		}
	}
	return true
}

// script maps s through table. When some rune has no mapping the result
// falls back to marker followed by s, parenthesised unless it is one rune.
func script(s string, table map[rune]rune, marker string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	var b strings.Builder
	for _, r := range s {
		m, ok := table[r]
		if !ok {
			if len([]rune(s)) == 1 {
				return marker + s
			}
			return marker + "(" + s + ")"
		}
		b.WriteRune(m)
	}
	return b.String()
}

// tidy collapses runs of spaces and trims each line.
func tidy(s string, display bool) string {
	if !display {
		s = strings.ReplaceAll(s, "\n", " ")
	}
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, l := range lines {
		l = strings.Join(strings.Fields(l), " ")
		if l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}
