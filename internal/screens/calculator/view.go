package calculator

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/cybercalc/cybercalc/internal/calc"
	"github.com/cybercalc/cybercalc/internal/catalog"
	"github.com/cybercalc/cybercalc/internal/plot"
	"github.com/cybercalc/cybercalc/internal/solver"
	"github.com/cybercalc/cybercalc/internal/texfmt"
	"github.com/cybercalc/cybercalc/internal/ui/components"
	"github.com/cybercalc/cybercalc/internal/ui/theme"
)

const (
	sidebarWidth = 26
	graphWidth   = 40

	// wideThreshold is the width from which the sidebar and graph column
	// are shown beside the main column.
	wideThreshold = 120

	placeholderText = "Masukkan ekspresi matematika..."
	processingText  = "PROCESSING DATA..."
	waitingText     = "WAITING_FOR_DATA"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(theme.TextDim)
)

func (c *CalculatorScreen) View(st calc.State, width, height int) string {
	c.sync(st)

	wide := width >= wideThreshold
	mainWidth := width - 2
	if wide {
		mainWidth = width - sidebarWidth - graphWidth - 6
	}

	main := c.renderMain(st, mainWidth, wide)
	main = c.scroll(main, height)

	if !wide {
		return main
	}
	sidebar := renderSidebar(st, sidebarWidth, height)
	graph := renderGraph(st, graphWidth)
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", main, "  ", graph)
}

// scroll clips the main column to height starting at the scroll offset.
func (c *CalculatorScreen) scroll(content string, height int) string {
	lines := strings.Split(content, "\n")
	c.maxOffset = max(len(lines)-height, 0)
	c.offset = min(c.offset, c.maxOffset)
	if height <= 0 {
		return ""
	}
	end := min(c.offset+height, len(lines))
	return strings.Join(lines[c.offset:end], "\n")
}

func (c *CalculatorScreen) renderMain(st calc.State, width int, wide bool) string {
	var sections []string
	sections = append(sections, renderHeading(st, width), "")

	sections = append(sections, labelStyle.Render("INPUT_SEQUENCE"))
	sections = append(sections, c.renderExpression(st, width))
	if st.Buffer != "" {
		sections = append(sections, dimStyle.Render("↳ ")+theme.Mono.Render(texfmt.Render(st.Buffer, false)))
	}

	if st.IsIntegral() {
		bounds := lipgloss.JoinHorizontal(lipgloss.Top, c.lower.View(), "   ", c.upper.View())
		preview := lipgloss.NewStyle().
			Width(width-2).
			Align(lipgloss.Center).
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Primary).
			Foreground(theme.Text).
			Render(labelStyle.Render("INTEGRAL_PREVIEW") + "\n" + texfmt.Render(st.Preview(), true))
		sections = append(sections, "", bounds, preview)
	}

	if st.Err != nil {
		sections = append(sections, "", theme.Alert.Width(width-2).Render("⚠ "+st.Err.Message))
	}

	if st.KeypadVisible {
		sections = append(sections, "", c.pad.View())
	}

	switch {
	case st.Loading:
		sections = append(sections, "", c.spinner.View()+" "+theme.Selected.Render(processingText))
	case st.Response != nil:
		sections = append(sections, "", renderResult(*st.Response, width))
		if !wide {
			sections = append(sections, "", renderGraph(st, width))
		}
	}

	return strings.Join(sections, "\n")
}

func renderHeading(st calc.State, width int) string {
	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("▣ COMPUTATION_MODULE")
	tags := components.Tag(st.Selection.Topic.Info().Label, theme.Secondary) + " " +
		components.Tag(st.Selection.Sub.Label(), theme.Primary)

	kp := dimStyle.Render("⌨ OFF")
	if st.KeypadVisible {
		kp = theme.Selected.Render("⌨ ON")
	}
	gap := width - lipgloss.Width(title) - lipgloss.Width(kp)
	head := title + strings.Repeat(" ", max(gap, 1)) + kp
	return head + "\n" + tags
}

// renderExpression draws the buffer with the cursor or selection. Long
// buffers are windowed around the cursor head.
func (c *CalculatorScreen) renderExpression(st calc.State, width int) string {
	inner := max(width-4, 8)
	focused := c.focus == FocusExpression

	var line string
	if st.Buffer == "" && !focused {
		line = dimStyle.Render(placeholderText)
	} else {
		line = renderBuffer([]rune(st.Buffer), st.Cursor, inner, focused)
		if st.Buffer == "" {
			line += dimStyle.Render(placeholderText)
		}
	}

	border := theme.Border
	switch {
	case st.Err != nil:
		border = theme.Error
	case focused:
		border = theme.Primary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(border).
		Width(width-2).
		Padding(0, 1).
		Render(line)
}

func renderBuffer(runes []rune, cur calc.Cursor, width int, focused bool) string {
	n := len(runes)
	start, end := cur.Range()
	start, end = min(max(start, 0), n), min(max(end, 0), n)
	head := min(max(cur.Head, 0), n)

	// One cell is reserved for the caret past the end.
	from := 0
	if n+1 > width {
		from = max(0, min(head-width+1, n+1-width))
	}
	to := min(from+width, n)

	text := theme.Body
	var b strings.Builder
	for i := from; i < to; i++ {
		ch := string(runes[i])
		switch {
		case i >= start && i < end:
			b.WriteString(theme.Highlight.Render(ch))
		case focused && start == end && i == head:
			b.WriteString(theme.Caret.Render(ch))
		default:
			b.WriteString(text.Render(ch))
		}
	}
	if focused && start == end && head == n {
		b.WriteString(theme.Caret.Render(" "))
	}
	return b.String()
}

func renderResult(resp solver.Response, width int) string {
	inner := width - 4
	final := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(theme.Primary).
		PaddingLeft(1).
		Width(width - 1).
		Render(labelStyle.Render("FINAL_OUTPUT") + "\n" +
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(texfmt.Render(resp.LatexResult, true)))

	var steps []string
	for i, step := range resp.Steps {
		num := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(fmt.Sprintf("[%d]", i+1))
		expl := lipgloss.NewStyle().Width(inner - 4).Foreground(theme.Text).Render(step.Explanation)
		result := theme.Mono.Render(texfmt.Render(step.Result, true))
		steps = append(steps, lipgloss.JoinHorizontal(lipgloss.Top, num, " ", expl+"\n"+result))
	}
	stepBox := components.Panel("COMPUTATION_STEPS", strings.Join(steps, "\n\n"), theme.Secondary, width)

	summary := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Padding(0, 1).
		Render(labelStyle.Render("ⓘ AI_SUMMARY") + "\n" + theme.Body.Render(resp.Explanation))

	return strings.Join([]string{final, "", stepBox, "", summary}, "\n")
}

func renderGraph(st calc.State, width int) string {
	if st.Response == nil || st.Loading {
		box := lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Border).
			Width(width-2).
			Height(8).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("▦\n\n" + waitingText)
		return box
	}
	points := st.Response.GraphPoints
	chart := lipgloss.NewStyle().Foreground(theme.Primary).Render(plot.Render(points, width-4, 14))
	caption := dimStyle.Render(plot.Caption(points))
	return components.Panel("■ GRAPH_VISUALIZATION", chart+"\n"+caption, theme.Secondary, width)
}

func renderSidebar(st calc.State, width, height int) string {
	var lines []string
	lines = append(lines, dimStyle.Render("⌂ MAIN_MENU (Esc)"))
	for _, t := range catalog.Topics() {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(strings.ToUpper(t.Label)))
		for _, s := range t.SubTopics {
			if s == st.Selection.Sub {
				lines = append(lines, theme.Selected.Render("▌"+s.Label()))
			} else {
				lines = append(lines, dimStyle.Render(" "+s.Label()))
			}
		}
	}
	return lipgloss.NewStyle().
		Width(width).
		MaxHeight(height).
		Render(components.Panel("≡ NAVIGATION", strings.Join(lines, "\n"), theme.Secondary, width))
}
