package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type field struct {
	label    string
	optional bool
	input    textinput.Model
}

func newField(label, placeholder string) field {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = 120
	in.Width = 40
	return field{label: label, input: in}
}

func passwordField(label string) field {
	f := newField(label, "")
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '•'
	return f
}

func optionalField(label, placeholder string) field {
	f := newField(label, placeholder)
	f.optional = true
	return f
}

// form is a column of text inputs with one focused at a time.
type form struct {
	fields []field
	focus  int
}

func newForm(fields ...field) form {
	f := form{fields: fields}
	if len(f.fields) > 0 {
		f.fields[0].input.Focus()
	}
	return f
}

func (f *form) setFocus(i int) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	i = (i + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Blur()
	f.focus = i
	return f.fields[i].input.Focus()
}

func (f *form) next() tea.Cmd { return f.setFocus(f.focus + 1) }
func (f *form) prev() tea.Cmd { return f.setFocus(f.focus - 1) }

func (f *form) last() bool { return f.focus == len(f.fields)-1 }

func (f *form) update(msg tea.Msg) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func (f form) value(i int) string {
	return strings.TrimSpace(f.fields[i].input.Value())
}

func (f *form) setValue(i int, v string) {
	f.fields[i].input.SetValue(v)
}

func (f *form) reset() {
	for i := range f.fields {
		f.fields[i].input.Reset()
	}
	f.setFocus(0)
}

func (f form) view() string {
	labelWidth := 0
	for _, fl := range f.fields {
		labelWidth = max(labelWidth, len(fl.label)+2)
	}
	var b strings.Builder
	for i, fl := range f.fields {
		label := fl.label
		if !fl.optional {
			label += " *"
		}
		style := labelStyle
		marker := "  "
		if i == f.focus {
			style = focusedLabelStyle
			marker = cursorStyle.Render("> ")
		}
		b.WriteString(marker + style.Render(padRight(label, labelWidth)) + " " + fl.input.View())
		if i < len(f.fields)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
