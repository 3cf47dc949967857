package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"gudang/internal/inventory"
)

func sidebarWithCatalog() *SidebarView {
	s := NewSidebarView()
	s.SetCatalog(map[inventory.Jenis][]string{
		inventory.JenisAlat:     {"Listrik", "Tangan"},
		inventory.JenisMaterial: {"Bangunan"},
	}, inventory.Stats{Total: 3, Alat: 2, Material: 1})
	return s
}

func sendKeys(s *SidebarView, keys ...string) tea.Msg {
	var last tea.Msg
	for _, k := range keys {
		_, cmd := s.Update(keyMsg(k))
		if cmd != nil {
			last = cmd()
		}
	}
	return last
}

func TestSidebar_Rows(t *testing.T) {
	s := sidebarWithCatalog()
	if n := len(s.rows()); n != 5 {
		t.Fatalf("collapsed rows = %d, want 5 (Home, Barang, Alat, Material, Tutorial)", n)
	}
	s.Open[inventory.JenisAlat] = true
	if n := len(s.rows()); n != 7 {
		t.Errorf("rows with Alat open = %d, want 7", n)
	}
	s.BarangOpen = false
	if n := len(s.rows()); n != 3 {
		t.Errorf("rows with Barang closed = %d, want 3", n)
	}
}

func TestSidebar_Activate(t *testing.T) {
	s := sidebarWithCatalog()
	if _, ok := sendKeys(s, "enter").(HomeMsg); !ok {
		t.Error("enter on Home should emit HomeMsg")
	}

	sendKeys(s, "down", "enter")
	if s.BarangOpen {
		t.Error("enter on Barang should toggle it closed")
	}
	sendKeys(s, "enter")

	msg := sendKeys(s, "down", "down", "enter", "down", "enter")
	got, ok := msg.(SelectCategoryMsg)
	if !ok {
		t.Fatalf("got %#v, want SelectCategoryMsg", msg)
	}
	if got.Jenis != inventory.JenisMaterial || got.Kategori != "Bangunan" {
		t.Errorf("got %+v", got)
	}
}

func TestSidebar_ExpandCollapse(t *testing.T) {
	s := sidebarWithCatalog()
	sendKeys(s, "down", "down", "right")
	if !s.Open[inventory.JenisAlat] {
		t.Error("right should expand Alat")
	}
	sendKeys(s, "left")
	if s.Open[inventory.JenisAlat] {
		t.Error("left should collapse Alat")
	}
}

func TestSidebar_CursorClampedOnShrink(t *testing.T) {
	s := sidebarWithCatalog()
	s.Open[inventory.JenisAlat] = true
	s.Open[inventory.JenisMaterial] = true
	sendKeys(s, "down", "down", "down", "down", "down", "down", "down", "down")
	s.SetCatalog(map[inventory.Jenis][]string{}, inventory.Stats{})
	if max := len(s.rows()) - 1; s.cursor > max {
		t.Errorf("cursor %d beyond last row %d", s.cursor, max)
	}
}

func TestSidebar_ViewShowsCounts(t *testing.T) {
	s := sidebarWithCatalog()
	out := s.View()
	for _, want := range []string{"Home", "Barang", "Alat (2)", "Material (1)", "Tutorial"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
}
