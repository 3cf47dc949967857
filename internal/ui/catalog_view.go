package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"gudang/internal/inventory"
	"gudang/internal/ui/textutil"
)

// DetailWidth is the inner width of the selected-item pane.
const DetailWidth = 34

// itemEntry adapts inventory.Item to list.DefaultItem.
type itemEntry struct {
	item inventory.Item
}

func (e itemEntry) Title() string {
	t := e.item.Icon() + " " + e.item.Nama
	if e.item.Part != "" {
		t += " (" + e.item.Part + ")"
	}
	return t
}

func (e itemEntry) Description() string {
	return fmt.Sprintf("ID: %s • Kategori: %s • %s", e.item.ID, e.item.Kategori, e.item.Quantity())
}

func (e itemEntry) FilterValue() string { return e.item.Nama }

// CatalogView lists the visible items and shows the selected one in detail.
// Filtering is done by the app (search, category), not by the list widget.
type CatalogView struct {
	Focused bool
	list    list.Model
	empty   string // shown instead of the list when it has no items
}

var _ View = (*CatalogView)(nil)

// NewCatalogView creates an empty item list.
func NewCatalogView() *CatalogView {
	l := list.New(nil, NewItemListDelegate(), 80, 20)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return &CatalogView{list: l, empty: "Memuat data…"}
}

// SetItems replaces the visible items. empty is shown when items is empty.
// The selection stays on the same index when possible.
func (c *CatalogView) SetItems(items []inventory.Item, empty string) {
	entries := make([]list.Item, len(items))
	for i, it := range items {
		entries[i] = itemEntry{item: it}
	}
	idx := c.list.Index()
	c.list.SetItems(entries)
	if idx >= len(entries) {
		idx = len(entries) - 1
	}
	if idx >= 0 {
		c.list.Select(idx)
	}
	c.empty = empty
}

// Items returns the visible items in display order.
func (c *CatalogView) Items() []inventory.Item {
	out := make([]inventory.Item, 0, len(c.list.Items()))
	for _, e := range c.list.Items() {
		out = append(out, e.(itemEntry).item)
	}
	return out
}

// SelectedItem returns the highlighted item, if any.
func (c *CatalogView) SelectedItem() (inventory.Item, bool) {
	e, ok := c.list.SelectedItem().(itemEntry)
	if !ok {
		return inventory.Item{}, false
	}
	return e.item, true
}

// EmptyText returns the message shown when the list is empty.
func (c *CatalogView) EmptyText() string {
	return c.empty
}

// SetSize sets the list's inner dimensions.
func (c *CatalogView) SetSize(width, height int) {
	c.list.SetSize(width, height)
}

func (c *CatalogView) Init() tea.Cmd { return nil }

func (c *CatalogView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	c.list, cmd = c.list.Update(msg)
	return c, cmd
}

func (c *CatalogView) View() string {
	style := Styles.Pane
	if c.Focused {
		style = Styles.PaneFocused
	}
	if len(c.list.Items()) == 0 {
		text := Styles.Empty.Render(c.empty)
		if strings.HasPrefix(c.empty, "Gagal") {
			text = Styles.Error.Render(c.empty)
		}
		return style.Width(c.list.Width()).Render(text)
	}
	return style.Render(c.list.View())
}

// DetailView renders the selected item's full record.
func (c *CatalogView) DetailView() string {
	it, ok := c.SelectedItem()
	if !ok {
		return Styles.Pane.Width(DetailWidth).Render(Styles.Empty.Render("Pilih produk"))
	}
	inner := DetailWidth - 2 // Pane padding
	row := func(label, value string) string {
		return Styles.Muted.Render(textutil.PadRight(label, 11)) + Styles.Normal.Render(textutil.Truncate(value, inner-11))
	}
	lines := []string{
		Styles.Title.Render(textutil.Truncate(it.Icon()+" "+it.Nama, inner)),
		"",
		row("ID", it.ID),
		row("Jenis", it.Jenis),
		row("Kategori", it.Kategori),
		row("Part", it.Part),
		row("Jumlah", it.Quantity()),
		row("Keterangan", it.NotesOrDash()),
		"",
		Styles.Hint.Render("e: edit  d: hapus"),
	}
	return Styles.Pane.Width(DetailWidth).Render(strings.Join(lines, "\n"))
}
