package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// footerLines is the status bar plus the key help bar.
const footerLines = 2

func (a *App) renderHeader() string {
	left := headerAppStyle.Render(appName)
	right := ""
	if a.user != nil {
		right = headerUserStyle.Render("signed in as " + a.user.Email)
	} else {
		right = headerUserStyle.Render("guest")
	}
	if a.width == 0 {
		return headerBarStyle.Render(left + "  " + right)
	}
	inner := a.width - headerBarStyle.GetHorizontalPadding()
	gap := inner - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	fill := lipgloss.NewStyle().Background(colorMantle).Render(strings.Repeat(" ", gap))
	return headerBarStyle.Width(a.width).Render(left + fill + right)
}

func (a *App) renderFooter(bindings []key.Binding) string {
	bg := colorMantle
	keyStyle := helpKeyStyle.Background(bg)
	descStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if !b.Enabled() || (h.Key == "" && h.Desc == "") {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	content := strings.Join(parts, sep)
	if a.width == 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(a.width).Render(content)
}

func (a *App) renderStatus() string {
	text := strings.ReplaceAll(a.status, "\n", " ")
	if a.loading != "" {
		text = a.spinner.View() + " " + a.loading
	}
	style := statusBarStyle
	if a.statusErr {
		style = errorStatusStyle
	}
	if a.width == 0 {
		return style.Render(text)
	}
	return style.Width(a.width).Render(text)
}

func (a *App) renderSection(title, content string) string {
	body := titleStyle.Render(title) + "\n" + content
	if a.width == 0 {
		return sectionStyle.Render(body)
	}
	w := a.width - sectionStyle.GetHorizontalFrameSize()
	if w < 20 {
		w = 20
	}
	return sectionStyle.Width(w).Render(body)
}

// placeWithFooter pins the status and footer bars to the bottom of the
// terminal.
func (a *App) placeWithFooter(body, statusLine, footer string) string {
	if a.height == 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := max(a.height-footerLines, 1)
	if lipgloss.Height(body) >= contentHeight {
		lines := splitLines(body)[:contentHeight]
		return strings.Join(lines, "\n") + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(a.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	// full-width lines so stale cells from the previous frame are cleared
	lines := splitLines(main)
	for i, line := range lines {
		lines[i] = padRight(line, a.width)
	}
	return strings.Join(lines, "\n") + "\n" + statusLine + "\n" + footer
}

// modalPlacement frames content and returns the top-left cell that centres
// it over the body area.
func (a *App) modalPlacement(content string) (frame string, x, y int) {
	frame = modalStyle.Render(content)
	if a.width == 0 || a.height == 0 {
		return frame, 0, 0
	}
	lines := splitLines(frame)
	x = max((a.width-maxLineWidth(lines))/2, 0)
	y = max((a.height-footerLines-len(lines))/2, 0)
	return frame, x, y
}

func (a *App) composeModal(base, statusLine, footer, content string) string {
	view := a.placeWithFooter(base, statusLine, footer)
	frame, x, y := a.modalPlacement(content)
	if a.width == 0 || a.height == 0 {
		return view + "\n\n" + frame
	}
	return overlayAt(view, frame, x, y, a.width, a.height-footerLines)
}

// overlayAt draws overlay over base with its top-left corner at (x, y).
func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := splitLines(base)
	overlayLines := splitLines(overlay)
	overlayWidth := maxLineWidth(overlayLines)
	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		target := padRight(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		line = padRight(line, overlayWidth)
		right := ansi.TruncateLeft(target, x+overlayWidth, "")
		baseLines[row] = left + line + right
	}
	return strings.Join(baseLines, "\n")
}

func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		m = max(m, ansi.StringWidth(line))
	}
	return m
}

func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if width <= 0 || w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
