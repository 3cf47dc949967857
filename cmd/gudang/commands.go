package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gudang/internal/inventory"
	"gudang/internal/remote"
	"gudang/internal/ui/textutil"
)

// backend is what the headless commands need from *remote.Client.
type backend interface {
	List(ctx context.Context) ([]inventory.Item, error)
	Export(ctx context.Context) ([]byte, error)
	Do(ctx context.Context, m remote.Mutation) error
}

var listColumns = []textutil.Column{
	{Title: "ID"},
	{Title: "Nama", MaxWidth: 32},
	{Title: "Jenis"},
	{Title: "Kategori", MaxWidth: 20},
	{Title: "Jumlah", Right: true},
	{Title: "Satuan"},
}

// listCommand prints the catalog, optionally narrowed by -q.
func listCommand(ctx context.Context, s backend, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	query := fs.String("q", "", "search by name, ID or part")
	if err := fs.Parse(args); err != nil {
		return err
	}
	items, err := s.List(ctx)
	if err != nil {
		return err
	}
	items = inventory.Search(items, *query)

	rows := make([][]string, len(items))
	for i, it := range items {
		rows[i] = []string{it.ID, it.Nama, it.Jenis, it.Kategori, it.Jumlah.String(), it.Satuan}
	}
	fmt.Fprint(w, textutil.Table(listColumns, rows))
	st := inventory.ComputeStats(items)
	fmt.Fprintf(w, "\nTotal: %d  Alat: %d  Material: %d\n", st.Total, st.Alat, st.Material)
	return nil
}

// exportCommand writes the remote CSV export to -o, byte for byte.
func exportCommand(ctx context.Context, s backend, args []string, defaultPath string, w io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	out := fs.String("o", defaultPath, "output file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	data, err := s.Export(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", *out, err)
	}
	fmt.Fprintf(w, "Export tersimpan: %s (%d byte)\n", *out, len(data))
	return nil
}

// importCommand forwards a CSV file to the store as an import_csv mutation.
func importCommand(ctx context.Context, s backend, args []string, w io.Writer) error {
	if len(args) != 1 {
		return errors.New("import: expected exactly one CSV file")
	}
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	if err := s.Do(ctx, remote.ImportCSV(filepath.Base(path), string(data))); err != nil {
		return fmt.Errorf("import gagal: %w", err)
	}
	fmt.Fprintln(w, "Import berhasil")
	return nil
}
