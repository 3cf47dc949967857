package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// AlertModal shows a message until the user closes it with Enter or Esc.
// It is used for mutation failures, import results and the info screens.
type AlertModal struct {
	Title string
	Text  string
	Error bool
}

var _ View = (*AlertModal)(nil)

// NewAlertModal creates an alert.
func NewAlertModal(title, text string, isError bool) *AlertModal {
	return &AlertModal{Title: title, Text: text, Error: isError}
}

// NewTutorialModal explains how to use the application.
func NewTutorialModal() *AlertModal {
	steps := []string{
		"1. Buka Barang → Alat / Material di sidebar untuk melihat kategori.",
		"2. Pilih kategori untuk melihat produk terkait.",
		"3. a: tambah produk; pilih produk lalu e: edit, d: hapus.",
		"4. SPC i: import CSV untuk banyak data; SPC x: export ke CSV.",
		"5. Data disimpan di spreadsheet (sheet Data); aktivitas dicatat di sheet Log.",
	}
	return NewAlertModal("Tutorial Singkat", strings.Join(steps, "\n"), false)
}

// NewAboutModal shows the company profile.
func NewAboutModal() *AlertModal {
	return NewAlertModal("PT. CONTOH", "Inventory & Asset Management, versi demo.", false)
}

func (m *AlertModal) Init() tea.Cmd { return nil }

func (m *AlertModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter", "esc", "q":
			return m, func() tea.Msg { return DismissModalMsg{} }
		}
	}
	return m, nil
}

func (m *AlertModal) View() string {
	box, title := Styles.Box, Styles.Title
	if m.Error {
		box, title = Styles.BoxDanger, Styles.TitleWarning
	}
	content := title.Render(m.Title)
	if m.Text != "" {
		content += "\n\n" + Styles.Normal.Render(m.Text)
	}
	content += "\n\n" + Styles.Hint.Render("Enter/Esc: tutup")
	return box.Render(content)
}
