package ui

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"gudang/internal/inventory"
	"gudang/internal/remote"
)

// statsLine renders the header counters.
func statsLine(st inventory.Stats) string {
	return fmt.Sprintf("Total: %d  Alat: %d  Material: %d", st.Total, st.Alat, st.Material)
}

// failurePrefix is the alert title for a failed mutation.
func failurePrefix(a remote.Action) string {
	switch a {
	case remote.ActionAdd:
		return "Gagal tambah"
	case remote.ActionUpdate:
		return "Gagal update"
	case remote.ActionDelete:
		return "Gagal hapus"
	case remote.ActionImportCSV:
		return "Import gagal"
	default:
		return "Gagal " + string(a)
	}
}

// handleKey routes a key press: open modal first, then the search box when
// focused, then global keybindings, then the focused pane.
func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if top, ok := a.Overlays.Peek(); ok && top.IsDismissKey(msg.String()) {
		a.Overlays.Pop()
		return a, nil
	}
	if cmd, ok := a.Overlays.UpdateTop(msg); ok {
		return a, cmd
	}

	if a.Focus.Is(PaneSearch) && !a.KeyHandler.Waiting() {
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(a.Search.Value())
			return a, func() tea.Msg { return SearchMsg{Query: q} }
		case "esc":
			a.Focus.SetFocus(PaneList)
			return a, nil
		case "tab":
			a.Focus.Next()
			return a, nil
		case "shift+tab":
			a.Focus.Prev()
			return a, nil
		case "ctrl+c":
			return a, tea.Quit
		}
		var cmd tea.Cmd
		a.Search, cmd = a.Search.Update(msg)
		return a, cmd
	}

	if a.KeyHandler != nil {
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return a, cmd
		}
	}

	switch {
	case a.Focus.Is(PaneSidebar):
		_, cmd := a.Sidebar.Update(msg)
		return a, cmd
	case a.Focus.Is(PaneList):
		if msg.String() == "enter" {
			return a, func() tea.Msg { return ShowEditItemMsg{} }
		}
		_, cmd := a.Catalog.Update(msg)
		return a, cmd
	}
	return a, nil
}

// handleCatalogLoaded applies a fetch result unless a newer fetch was started.
func (a *appModelAdapter) handleCatalogLoaded(msg CatalogLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		if a.Store.Fail(msg.Gen, msg.Err) {
			a.setStatus("Gagal muat data", true)
		}
		return a, nil
	}
	if !a.Store.Apply(msg.Gen, msg.Items) {
		log.Printf("ui.handleCatalogLoaded: dropped stale generation %d", msg.Gen)
	}
	return a, nil
}

// handleNavigate switches the list to another view of the catalog.
func (a *appModelAdapter) handleNavigate(mode AppMode, query string, jenis inventory.Jenis, kategori string) (tea.Model, tea.Cmd) {
	a.Mode = mode
	a.Query = query
	a.Jenis = jenis
	a.Kategori = kategori
	if mode == ModeJenis || mode == ModeCategory {
		a.Sidebar.BarangOpen = true
		a.Sidebar.Open[jenis] = true
	}
	a.syncViews()
	return a, nil
}

// handleSearch runs a search; an empty query returns to Home.
func (a *appModelAdapter) handleSearch(msg SearchMsg) (tea.Model, tea.Cmd) {
	q := strings.TrimSpace(msg.Query)
	a.Focus.SetFocus(PaneList)
	if q == "" {
		return a.handleNavigate(ModeHome, "", "", "")
	}
	return a.handleNavigate(ModeSearch, q, "", "")
}

// lookup resolves an item by ID, or the list selection when id is empty.
func (a *appModelAdapter) lookup(id string) (inventory.Item, bool) {
	if id == "" {
		return a.Catalog.SelectedItem()
	}
	return a.Store.Find(id)
}

// handleShowEdit opens the edit form. Unknown IDs are ignored.
func (a *appModelAdapter) handleShowEdit(msg ShowEditItemMsg) (tea.Model, tea.Cmd) {
	it, ok := a.lookup(msg.ID)
	if !ok {
		return a, nil
	}
	return a, a.pushModal(NewEditItemModal(it))
}

// handleShowDelete asks for confirmation. Unknown IDs are ignored.
func (a *appModelAdapter) handleShowDelete(msg ShowDeleteItemMsg) (tea.Model, tea.Cmd) {
	it, ok := a.lookup(msg.ID)
	if !ok {
		return a, nil
	}
	return a, a.pushModal(NewDeleteItemConfirmModal(it))
}

// handleDispatch sends a mutation. A confirmation modal is closed once the
// user has answered; forms stay open until the request succeeds.
func (a *appModelAdapter) handleDispatch(msg DispatchMsg) (tea.Model, tea.Cmd) {
	var origin View
	if top, ok := a.Overlays.Peek(); ok {
		switch top.View.(type) {
		case *ConfirmModal:
			a.Overlays.Pop()
		case *ItemFormModal:
			origin = top.View
		}
	}
	a.setStatus("Mengirim "+msg.Mutation.String()+"…", false)
	return a, mutateCmd(a.Remote, msg.Mutation, origin)
}

// handleMutationDone refreshes the catalog after a successful mutation, or
// raises an alert on failure. Only the sending form is closed; modals opened
// while the request was in flight stay up. The catalog is never patched
// locally.
func (a *appModelAdapter) handleMutationDone(msg MutationDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		prefix := failurePrefix(msg.Mutation.Action)
		a.setStatus(prefix, true)
		return a, a.pushModal(NewAlertModal(prefix, msg.Err.Error(), true))
	}
	if msg.Origin != nil {
		a.Overlays.Remove(msg.Origin)
	}
	a.setStatus("Berhasil: "+msg.Mutation.String(), false)
	cmds := []tea.Cmd{a.refresh()}
	if msg.Mutation.Action == remote.ActionImportCSV {
		cmds = append(cmds, a.pushModal(NewAlertModal("Import berhasil", "", false)))
	}
	return a, tea.Batch(cmds...)
}

// handleExportDone reports the result of an export.
func (a *appModelAdapter) handleExportDone(msg ExportDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		a.setStatus("Gagal export", true)
		return a, a.pushModal(NewAlertModal("Gagal export", msg.Err.Error(), true))
	}
	a.setStatus(fmt.Sprintf("Export tersimpan: %s (%d byte)", msg.Path, msg.Bytes), false)
	return a, nil
}
