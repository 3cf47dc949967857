package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PathModal prompts for a file path and emits OnSubmit(path) on Enter.
// Empty input is ignored.
type PathModal struct {
	Title    string
	Input    textinput.Model
	OnSubmit func(path string) tea.Msg
}

var _ View = (*PathModal)(nil)

// NewPathModal creates a prompt prefilled with value.
func NewPathModal(title, value string, onSubmit func(string) tea.Msg) *PathModal {
	ti := textinput.New()
	ti.Placeholder = "path/ke/file.csv"
	ti.CharLimit = 512
	ti.Width = 48
	ti.SetValue(value)
	ti.Focus()
	return &PathModal{Title: title, Input: ti, OnSubmit: onSubmit}
}

// NewImportModal asks for the CSV file to import.
func NewImportModal() *PathModal {
	return NewPathModal("Import CSV", "", func(p string) tea.Msg { return ImportFileMsg{Path: p} })
}

// NewExportModal asks where to save the export, defaulting to path.
func NewExportModal(path string) *PathModal {
	return NewPathModal("Export CSV", path, func(p string) tea.Msg { return ExportToMsg{Path: p} })
}

func (m *PathModal) Init() tea.Cmd {
	return textinput.Blink
}

func (m *PathModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			p := strings.TrimSpace(m.Input.Value())
			if p == "" || m.OnSubmit == nil {
				return m, nil
			}
			return m, func() tea.Msg { return m.OnSubmit(p) }
		}
	}
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m *PathModal) View() string {
	content := Styles.Title.Render(m.Title) + "\n\n"
	content += m.Input.View()
	content += "\n\n" + Styles.Hint.Render("Enter: lanjut  Esc: batal")
	return Styles.Box.Render(content)
}
