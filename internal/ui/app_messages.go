package ui

import (
	"gudang/internal/inventory"
	"gudang/internal/remote"
	"gudang/internal/store"
)

// CatalogLoadedMsg carries the result of one list fetch. Gen is the store
// generation issued when the fetch started; stale results are dropped.
type CatalogLoadedMsg struct {
	Gen   store.Generation
	Items []inventory.Item
	Err   error
}

// RefreshMsg re-fetches the whole catalog (SPC r, r).
type RefreshMsg struct{}

// DispatchMsg sends a mutation to the remote store. Every add, update,
// delete and import goes through it.
type DispatchMsg struct {
	Mutation remote.Mutation
}

// MutationDoneMsg reports the outcome of a dispatched mutation. Origin is
// the form that sent it, if any.
type MutationDoneMsg struct {
	Mutation remote.Mutation
	Origin   View
	Err      error
}

// ExportDoneMsg reports a finished CSV export.
type ExportDoneMsg struct {
	Path  string
	Bytes int
	Err   error
}

// AlertMsg opens a blocking alert; it is closed with enter or esc.
type AlertMsg struct {
	Title string
	Text  string
	Error bool
}

// HomeMsg shows the full catalog.
type HomeMsg struct{}

// SearchMsg filters the catalog by Query. An empty query shows everything.
type SearchMsg struct {
	Query string
}

// SelectJenisMsg shows every item of one Jenis.
type SelectJenisMsg struct {
	Jenis inventory.Jenis
}

// SelectCategoryMsg shows the items of one Kategori within a Jenis.
type SelectCategoryMsg struct {
	Jenis    inventory.Jenis
	Kategori string
}

// ShowAddItemMsg opens the empty item form.
type ShowAddItemMsg struct{}

// ShowEditItemMsg opens the item form prefilled with the item's current
// record. An empty ID means the item selected in the list.
type ShowEditItemMsg struct {
	ID string
}

// ShowDeleteItemMsg asks for confirmation before deleting an item.
// An empty ID means the item selected in the list.
type ShowDeleteItemMsg struct {
	ID string
}

// ShowImportMsg asks for a CSV file to import.
type ShowImportMsg struct{}

// ShowExportMsg asks where to save the exported CSV.
type ShowExportMsg struct{}

// ImportFileMsg reads the CSV at Path and dispatches it as an import.
type ImportFileMsg struct {
	Path string
}

// ExportToMsg downloads the catalog CSV into Path.
type ExportToMsg struct {
	Path string
}

// ShowTutorialMsg opens the usage guide.
type ShowTutorialMsg struct{}

// ShowAboutMsg opens the company profile.
type ShowAboutMsg struct{}

// DismissModalMsg closes the top modal.
type DismissModalMsg struct{}

// FocusSearchMsg moves focus to the search input.
type FocusSearchMsg struct{}

// FocusNextMsg and FocusPrevMsg rotate focus between panes.
type FocusNextMsg struct{}

type FocusPrevMsg struct{}
