package keypad

// Action is what pressing a key does.
type Action int

const (
	ActionInsert Action = iota
	ActionClear
	ActionBackspace
	ActionSolve
)

// Class groups keys for styling.
type Class int

const (
	ClassBasic Class = iota
	ClassOperator
	ClassControl
	ClassSolve
)

// Key is one button on the on-screen keypad.
type Key struct {
	Label  string
	Token  string
	Action Action
	Class  Class
	Span   int
}

func ins(label, token string) Key {
	return Key{Label: label, Token: token, Action: ActionInsert, Class: ClassBasic, Span: 1}
}

func op(label, token string) Key {
	return Key{Label: label, Token: token, Action: ActionInsert, Class: ClassOperator, Span: 1}
}

// Layout is the keypad grid, row by row.
var Layout = [][]Key{
	{ins("x", "x"), ins("y", "y"), ins("(", "("), ins(")", ")"), {Label: "AC", Action: ActionClear, Class: ClassControl, Span: 1}},
	{ins("sin", `\sin(`), ins("cos", `\cos(`), ins("tan", `\tan(`), ins("^", "^"), {Label: "⌫", Action: ActionBackspace, Class: ClassControl, Span: 1}},
	{op("∫", `\int `), op("lim", `\lim_{x \to a} `), op("d/dx", `\frac{d}{dx}`), ins("√", `\sqrt{}`), ins("÷", "/")},
	{ins("7", "7"), ins("8", "8"), ins("9", "9"), ins("π", `\pi`), ins("×", "*")},
	{ins("4", "4"), ins("5", "5"), ins("6", "6"), ins("e", "e"), ins("-", "-")},
	{ins("1", "1"), ins("2", "2"), ins("3", "3"), ins(".", "."), ins("+", "+")},
	{ins("0", "0"), ins("∞", `\infty`), {Label: "=", Token: "=", Action: ActionInsert, Class: ClassControl, Span: 1}, {Label: "HITUNG", Action: ActionSolve, Class: ClassSolve, Span: 2}},
}

// Columns is the width of the grid in single-span cells.
const Columns = 5

// Pos addresses a key in Layout.
type Pos struct {
	Row, Col int
}

// At returns the key at p, clamping p into the grid.
func At(p Pos) Key {
	p = Clamp(p)
	return Layout[p.Row][p.Col]
}

// Clamp keeps p inside the grid.
func Clamp(p Pos) Pos {
	p.Row = clamp(p.Row, 0, len(Layout)-1)
	p.Col = clamp(p.Col, 0, len(Layout[p.Row])-1)
	return p
}

// Move shifts p by the given deltas, wrapping around both axes.
func Move(p Pos, dRow, dCol int) Pos {
	p = Clamp(p)
	rows := len(Layout)
	p.Row = ((p.Row+dRow)%rows + rows) % rows
	cols := len(Layout[p.Row])
	if p.Col >= cols {
		p.Col = cols - 1
	}
	p.Col = ((p.Col+dCol)%cols + cols) % cols
	return p
}
