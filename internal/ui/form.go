package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField int

const (
	fieldTitle formField = iota
	fieldContent
	fieldSubmit
	fieldCount
)

// submitForm is the "Submit Your Article" panel. Submitting is a placeholder:
// nothing is validated, sent or added to the feed.
type submitForm struct {
	title   textinput.Model
	content textarea.Model
	focus   formField
}

func newSubmitForm() submitForm {
	ti := textinput.New()
	ti.Placeholder = "Enter article title"
	ti.CharLimit = 200
	ti.Prompt = ""

	ta := textarea.New()
	ta.Placeholder = "Write your article content..."
	ta.ShowLineNumbers = false
	ta.SetHeight(4)

	return submitForm{title: ti, content: ta}
}

// Focus puts the cursor in the title field.
func (f *submitForm) Focus() tea.Cmd {
	f.focus = fieldTitle
	return f.applyFocus()
}

// Blur removes focus from every field.
func (f *submitForm) Blur() {
	f.title.Blur()
	f.content.Blur()
}

// Cycle moves focus forward (delta 1) or backward (delta -1).
func (f *submitForm) Cycle(delta int) tea.Cmd {
	f.focus = formField((int(f.focus) + delta + int(fieldCount)) % int(fieldCount))
	return f.applyFocus()
}

func (f *submitForm) applyFocus() tea.Cmd {
	f.Blur()
	switch f.focus {
	case fieldTitle:
		return f.title.Focus()
	case fieldContent:
		return f.content.Focus()
	}
	return nil
}

// SubmitFocused reports whether the submit control has focus.
func (f submitForm) SubmitFocused() bool { return f.focus == fieldSubmit }

// Values returns the current field contents.
func (f submitForm) Values() (title, content string) {
	return f.title.Value(), f.content.Value()
}

// SetWidth sizes both fields to fit a panel of the given outer width.
func (f *submitForm) SetWidth(width int) {
	w := innerWidth(width)
	if w < 10 {
		w = 10
	}
	f.title.Width = w - 1
	f.content.SetWidth(w)
}

// Update forwards msg to the focused field.
func (f submitForm) Update(msg tea.Msg) (submitForm, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldContent:
		f.content, cmd = f.content.Update(msg)
	}
	return f, cmd
}

// View renders the panel at the given outer width.
func (f submitForm) View(st Styles, width int) string {
	button := st.FormButton
	if f.focus == fieldSubmit {
		button = st.FormButtonFocused
	}

	var b strings.Builder
	b.WriteString(st.FormTitle.Render("Submit Your Article"))
	b.WriteString("\n")
	b.WriteString(st.FormLabel.Render("Title"))
	b.WriteString("\n")
	b.WriteString(f.title.View())
	b.WriteString("\n\n")
	b.WriteString(st.FormLabel.Render("Content"))
	b.WriteString("\n")
	b.WriteString(f.content.View())
	b.WriteString("\n\n")
	b.WriteString(button.Render("[ Submit for Review ]"))

	return st.FormBox.Width(width - 2).Render(b.String())
}
