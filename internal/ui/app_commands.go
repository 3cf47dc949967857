package ui

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"gudang/internal/remote"
	"gudang/internal/store"
)

// fetchCatalogCmd lists the remote catalog for generation gen.
func fetchCatalogCmd(r Remote, gen store.Generation) tea.Cmd {
	return func() tea.Msg {
		if r == nil {
			return CatalogLoadedMsg{Gen: gen, Err: fmt.Errorf("no remote store configured")}
		}
		items, err := r.List(context.Background())
		if err != nil {
			log.Printf("ui.fetchCatalog: gen %d: %v", gen, err)
		}
		return CatalogLoadedMsg{Gen: gen, Items: items, Err: err}
	}
}

// mutateCmd posts m to the remote store. origin is echoed back in the result.
func mutateCmd(r Remote, m remote.Mutation, origin View) tea.Cmd {
	return func() tea.Msg {
		if r == nil {
			return MutationDoneMsg{Mutation: m, Origin: origin, Err: fmt.Errorf("no remote store configured")}
		}
		err := r.Do(context.Background(), m)
		if err != nil {
			log.Printf("ui.mutate: %s: %v", m, err)
		}
		return MutationDoneMsg{Mutation: m, Origin: origin, Err: err}
	}
}

// exportCmd downloads the CSV export and writes it to path.
func exportCmd(r Remote, path string) tea.Cmd {
	return func() tea.Msg {
		if r == nil {
			return ExportDoneMsg{Path: path, Err: fmt.Errorf("no remote store configured")}
		}
		data, err := r.Export(context.Background())
		if err != nil {
			return ExportDoneMsg{Path: path, Err: err}
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return ExportDoneMsg{Path: path, Err: fmt.Errorf("write %s: %w", path, err)}
		}
		log.Printf("ui.export: wrote %d bytes to %s", len(data), path)
		return ExportDoneMsg{Path: path, Bytes: len(data)}
	}
}

// readImportCmd reads a CSV file and turns it into an import mutation. The
// content is forwarded as-is; parsing happens on the remote side.
func readImportCmd(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return AlertMsg{Title: "Import gagal", Text: err.Error(), Error: true}
		}
		return DispatchMsg{Mutation: remote.ImportCSV(filepath.Base(path), string(data))}
	}
}
