package tui

import (
	"strings"

	"github.com/vango-dev/elements/pkg/dom"
)

// stateAttrs are the reflected attributes shown next to each element.
var stateAttrs = []string{
	"data-state", "aria-checked", "aria-pressed", "aria-selected", "aria-expanded",
	"aria-disabled", "data-disabled", "hidden", "tabindex",
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	st := m.session.Story
	b.WriteString(titleStyle.Render(st.Title + "  " + stateStyle.Render(st.Component+" · "+st.Name)))
	b.WriteString("\n")

	doc := m.session.Document()
	for _, c := range doc.Body().Children() {
		m.writeTree(&b, c, 0, doc.ActiveElement())
	}

	if m.err != "" {
		b.WriteString("\n" + errorStyle.Render(m.err) + "\n")
	}
	b.WriteString("\n" + logStyle.Render(m.events.View()) + "\n")
	b.WriteString(helpStyle.Render("tab/shift+tab select · enter space arrows home end press · c click · f finish · r restart · q quit"))
	return b.String()
}

func (m Model) writeTree(b *strings.Builder, e *dom.Element, depth int, active *dom.Element) {
	indent := strings.Repeat("  ", depth)
	if e.IsText() {
		if t := strings.TrimSpace(e.Data()); t != "" {
			b.WriteString(indent + textStyle.Render(`"`+t+`"`) + "\n")
		}
		return
	}

	label := "<" + e.Tag()
	if id := e.ID(); id != "" {
		label += "#" + id
	}
	label += ">"
	mark := "  "
	if e == active {
		mark = focusedMarkStyle.Render("● ")
	}
	if id := e.ID(); id != "" && id == m.Selected() {
		label = selectedStyle.Render(label)
	}
	b.WriteString(indent + mark + label)
	if s := describe(e); s != "" {
		b.WriteString(" " + stateStyle.Render(s))
	}
	b.WriteString("\n")

	for _, c := range e.Children() {
		m.writeTree(b, c, depth+1, active)
	}
}

func describe(e *dom.Element) string {
	var parts []string
	for _, name := range stateAttrs {
		if v, ok := e.Attr(name); ok {
			if v == "" {
				parts = append(parts, name)
			} else {
				parts = append(parts, name+"="+v)
			}
		}
	}
	return strings.Join(parts, " ")
}

func logText(lines []string) string {
	if len(lines) == 0 {
		return "no events yet"
	}
	return strings.Join(lines, "\n")
}
