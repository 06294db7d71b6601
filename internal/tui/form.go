package tui

import (
	"strings"

	"github.com/HardenedIot/console/internal/forms"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// inputForm is the shared machinery behind every form screen: a fixed list
// of fields, one focused at a time, with validation errors rendered under
// the offending field. Field keys match the validation error keys.
type inputForm struct {
	title  string
	fields []formField
	focus  int
	errs   forms.Errors
}

type formField struct {
	key   string
	label string
	input textinput.Model

	// checkbox fields ignore the input and toggle on space/enter.
	checkbox bool
	checked  bool
}

func newTextField(key, label, placeholder string) formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 200
	in.Width = 40
	return formField{key: key, label: label, input: in}
}

func newSecretField(key, label string) formField {
	f := newTextField(key, label, "")
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '•'
	return f
}

func newCheckboxField(key, label string) formField {
	return formField{key: key, label: label, checkbox: true}
}

func newInputForm(title string, fields ...formField) inputForm {
	f := inputForm{title: title, fields: fields, errs: forms.Errors{}}
	f.setFocus(0)
	return f
}

func (f *inputForm) setFocus(i int) {
	if len(f.fields) == 0 {
		return
	}
	if i < 0 {
		i = len(f.fields) - 1
	}
	if i >= len(f.fields) {
		i = 0
	}
	f.focus = i
	for j := range f.fields {
		if j == i && !f.fields[j].checkbox {
			f.fields[j].input.Focus()
		} else {
			f.fields[j].input.Blur()
		}
	}
}

func (f *inputForm) value(key string) string {
	for _, field := range f.fields {
		if field.key == key {
			return field.input.Value()
		}
	}
	return ""
}

func (f *inputForm) checked(key string) bool {
	for _, field := range f.fields {
		if field.key == key {
			return field.checked
		}
	}
	return false
}

func (f *inputForm) setValue(key, v string) {
	for i := range f.fields {
		if f.fields[i].key == key {
			f.fields[i].input.SetValue(v)
		}
	}
}

func (f *inputForm) setChecked(key string, v bool) {
	for i := range f.fields {
		if f.fields[i].key == key {
			f.fields[i].checked = v
		}
	}
}

// handleKey processes navigation and typing. It reports whether the form
// wants to submit (enter on the last field, or ctrl+s anywhere).
func (f *inputForm) handleKey(msg tea.KeyMsg) (submit bool, cmd tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		f.setFocus(f.focus + 1)
		return false, nil
	case "shift+tab", "up":
		f.setFocus(f.focus - 1)
		return false, nil
	case "ctrl+s":
		return true, nil
	case "enter":
		if f.focus == len(f.fields)-1 {
			return true, nil
		}
		if f.fields[f.focus].checkbox {
			f.fields[f.focus].checked = !f.fields[f.focus].checked
			return false, nil
		}
		f.setFocus(f.focus + 1)
		return false, nil
	case " ":
		if f.fields[f.focus].checkbox {
			f.fields[f.focus].checked = !f.fields[f.focus].checked
			return false, nil
		}
	}

	if !f.fields[f.focus].checkbox {
		var c tea.Cmd
		f.fields[f.focus].input, c = f.fields[f.focus].input.Update(msg)
		return false, c
	}
	return false, nil
}

func (f inputForm) view() string {
	var b strings.Builder
	b.WriteString(styleHeader().Render(f.title))
	b.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().Width(14)
	for i, field := range f.fields {
		marker := "  "
		if i == f.focus {
			marker = lipglossRender(colorAccent, "> ")
		}
		b.WriteString(marker)
		b.WriteString(labelStyle.Render(field.label))

		if field.checkbox {
			box := "[ ]"
			if field.checked {
				box = "[x]"
			}
			b.WriteString(box)
		} else {
			b.WriteString(field.input.View())
		}
		b.WriteString("\n")

		if msg := f.errs[field.key]; msg != "" {
			b.WriteString("    " + styleFieldError().Render(msg) + "\n")
		}
	}

	b.WriteString("\n" + styleMuted().Render("tab: next field  enter: submit  esc: back"))
	return b.String()
}
