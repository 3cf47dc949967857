package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gudang/internal/inventory"
	"gudang/internal/remote"
)

// ConfirmModal asks a yes/no question before a destructive action.
// Enter or y confirms once; further presses are ignored. Esc cancels.
type ConfirmModal struct {
	Title       string
	Label       string
	Details     string // optional warning shown under the label
	OnConfirm   func() tea.Msg
	boxStyle    lipgloss.Style
	titleStyle  lipgloss.Style
	detailStyle lipgloss.Style
	confirmed   bool
}

// Ensure ConfirmModal implements View.
var _ View = (*ConfirmModal)(nil)

// NewConfirmModal creates a confirmation modal.
func NewConfirmModal(title, label string, onConfirm func() tea.Msg) *ConfirmModal {
	return &ConfirmModal{
		Title:       title,
		Label:       label,
		OnConfirm:   onConfirm,
		boxStyle:    Styles.BoxDanger,
		titleStyle:  Styles.TitleWarning,
		detailStyle: Styles.Details,
	}
}

// WithDetails adds warning details to the modal.
func (m *ConfirmModal) WithDetails(details string) *ConfirmModal {
	m.Details = details
	return m
}

// NewDeleteItemConfirmModal asks before deleting it. Nothing is sent to the
// remote store unless the user confirms.
func NewDeleteItemConfirmModal(it inventory.Item) *ConfirmModal {
	m := NewConfirmModal(
		"Hapus barang?",
		fmt.Sprintf("Hapus %s (%s) ?", it.Nama, it.ID),
		func() tea.Msg { return DispatchMsg{Mutation: remote.DeleteItem(it.ID, it.Nama)} },
	)
	if it.Part != "" {
		m.WithDetails("Part: " + it.Part)
	}
	return m
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "n":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter", "y":
			if m.OnConfirm != nil && !m.confirmed {
				m.confirmed = true
				return m, m.OnConfirm
			}
		}
	}
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	content := m.titleStyle.Render(m.Title) + "\n\n"
	content += Styles.Label.Render(m.Label)
	if m.Details != "" {
		content += "\n" + m.detailStyle.Render(m.Details)
	}
	content += "\n\n" + Styles.Hint.Render("y/Enter: hapus  Esc: batal")
	return m.boxStyle.Render(content)
}
