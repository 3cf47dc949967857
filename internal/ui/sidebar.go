package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"gudang/internal/inventory"
	"gudang/internal/ui/textutil"
)

// SidebarWidth is the inner width of the category browser.
const SidebarWidth = 26

type sidebarRowKind int

const (
	rowHome sidebarRowKind = iota
	rowBarang
	rowJenis
	rowKategori
	rowTutorial
)

type sidebarRow struct {
	kind     sidebarRowKind
	jenis    inventory.Jenis
	kategori string
}

// SidebarView is the category browser: Home, the Barang tree
// (Alat/Material, each expanding to its categories) and Tutorial.
// Categories are derived from the catalog snapshot by SetCatalog.
// Enter on a Jenis expands it and lists all its items; left collapses.
type SidebarView struct {
	Focused    bool
	BarangOpen bool
	Open       map[inventory.Jenis]bool

	categories map[inventory.Jenis][]string
	stats      inventory.Stats
	cursor     int
}

var _ View = (*SidebarView)(nil)

// NewSidebarView creates a sidebar with Barang expanded and both Jenis collapsed.
func NewSidebarView() *SidebarView {
	return &SidebarView{
		BarangOpen: true,
		Open:       make(map[inventory.Jenis]bool),
		categories: make(map[inventory.Jenis][]string),
	}
}

// SetCatalog replaces the category lists and counts. The cursor is clamped
// to the new rows.
func (s *SidebarView) SetCatalog(categories map[inventory.Jenis][]string, stats inventory.Stats) {
	s.categories = categories
	s.stats = stats
	if n := len(s.rows()); s.cursor >= n {
		s.cursor = n - 1
	}
}

// Categories returns the categories shown under jenis.
func (s *SidebarView) Categories(jenis inventory.Jenis) []string {
	return s.categories[jenis]
}

func (s *SidebarView) rows() []sidebarRow {
	rows := []sidebarRow{{kind: rowHome}, {kind: rowBarang}}
	if s.BarangOpen {
		for _, j := range inventory.Jenises {
			rows = append(rows, sidebarRow{kind: rowJenis, jenis: j})
			if s.Open[j] {
				for _, k := range s.categories[j] {
					rows = append(rows, sidebarRow{kind: rowKategori, jenis: j, kategori: k})
				}
			}
		}
	}
	return append(rows, sidebarRow{kind: rowTutorial})
}

func (s *SidebarView) current() sidebarRow {
	rows := s.rows()
	if s.cursor < 0 || s.cursor >= len(rows) {
		return sidebarRow{kind: rowHome}
	}
	return rows[s.cursor]
}

// setOpen expands or collapses the row under the cursor.
func (s *SidebarView) setOpen(open bool) {
	switch r := s.current(); r.kind {
	case rowBarang:
		s.BarangOpen = open
	case rowJenis:
		s.Open[r.jenis] = open
	}
}

func (s *SidebarView) Init() tea.Cmd { return nil }

func (s *SidebarView) Update(msg tea.Msg) (View, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch k.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.rows())-1 {
			s.cursor++
		}
	case "right", "l":
		s.setOpen(true)
	case "left", "h":
		s.setOpen(false)
	case "enter":
		return s, s.activate()
	}
	return s, nil
}

// activate handles Enter on the current row.
func (s *SidebarView) activate() tea.Cmd {
	r := s.current()
	switch r.kind {
	case rowHome:
		return func() tea.Msg { return HomeMsg{} }
	case rowBarang:
		s.BarangOpen = !s.BarangOpen
	case rowJenis:
		s.Open[r.jenis] = true
		return func() tea.Msg { return SelectJenisMsg{Jenis: r.jenis} }
	case rowKategori:
		return func() tea.Msg { return SelectCategoryMsg{Jenis: r.jenis, Kategori: r.kategori} }
	case rowTutorial:
		return func() tea.Msg { return ShowTutorialMsg{} }
	}
	return nil
}

func (s *SidebarView) label(r sidebarRow) string {
	arrow := func(open bool) string {
		if open {
			return "▾ "
		}
		return "▸ "
	}
	switch r.kind {
	case rowHome:
		return "Home"
	case rowBarang:
		return arrow(s.BarangOpen) + "Barang"
	case rowJenis:
		n := s.stats.Alat
		if r.jenis == inventory.JenisMaterial {
			n = s.stats.Material
		}
		return fmt.Sprintf("  %s%s (%d)", arrow(s.Open[r.jenis]), r.jenis.Title(), n)
	case rowKategori:
		return "      " + r.kategori
	case rowTutorial:
		return "Tutorial"
	}
	return ""
}

func (s *SidebarView) View() string {
	var b strings.Builder
	for i, r := range s.rows() {
		line := textutil.PadRight(s.label(r), SidebarWidth)
		switch {
		case i == s.cursor && s.Focused:
			line = Styles.Selected.Render(line)
		case r.kind == rowKategori:
			line = Styles.Muted.Render(line)
		default:
			line = Styles.Normal.Render(line)
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	style := Styles.Pane
	if s.Focused {
		style = Styles.PaneFocused
	}
	return style.Render(b.String())
}
