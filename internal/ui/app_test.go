package ui

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"gudang/internal/inventory"
	"gudang/internal/remote"
	"gudang/internal/store"
)

// fakeRemote is an in-memory remote store. Deletes are applied so a
// refresh after a mutation observes the server-side change.
type fakeRemote struct {
	mu      sync.Mutex
	items   []inventory.Item
	csv     []byte
	listErr error
	doErr   error
	lists   int
	done    []remote.Mutation
}

func (f *fakeRemote) List(ctx context.Context) ([]inventory.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]inventory.Item(nil), f.items...), nil
}

func (f *fakeRemote) Export(ctx context.Context) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.doErr != nil {
		return nil, f.doErr
	}
	return f.csv, nil
}

func (f *fakeRemote) Do(ctx context.Context, m remote.Mutation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.done = append(f.done, m)
	if f.doErr != nil {
		return f.doErr
	}
	if m.Action == remote.ActionDelete {
		kept := f.items[:0]
		for _, it := range f.items {
			if it.ID != m.ItemID {
				kept = append(kept, it)
			}
		}
		f.items = kept
	}
	return nil
}

func sampleItems() []inventory.Item {
	return []inventory.Item{
		{ID: "A-1", Nama: "Bor Listrik", Jenis: "Alat", Kategori: "Listrik", Part: "BL-10", Jumlah: decimal.NewFromInt(5), Satuan: "pcs"},
		{ID: "A-2", Nama: "Tang", Jenis: "Alat", Kategori: "Tangan", Jumlah: decimal.NewFromInt(3), Satuan: "pcs"},
		{ID: "M-1", Nama: "Semen", Jenis: "Material", Kategori: "Bangunan", Jumlah: decimal.NewFromInt(50), Satuan: "sak"},
	}
}

// newTestApp creates an app backed by f and runs the initial load.
func newTestApp(t *testing.T, f *fakeRemote) *appModelAdapter {
	t.Helper()
	m := NewAppModel(store.New(), f, filepath.Join(t.TempDir(), "export.csv"))
	a := m.AsTeaModel().(*appModelAdapter)
	run(t, a, a.Init())
	return a
}

// run executes cmd and feeds every resulting message from this package back
// into Update until the queue drains. Framework messages (spinner ticks,
// cursor blinks, quit) are dropped.
func run(t *testing.T, a *appModelAdapter, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 100 {
			t.Fatal("command loop did not settle")
		}
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		if msg == nil || reflect.TypeOf(msg).PkgPath() != reflect.TypeOf(RefreshMsg{}).PkgPath() {
			continue
		}
		_, next := a.Update(msg)
		queue = append(queue, next)
	}
}

// press sends one key and runs whatever it triggers.
func press(t *testing.T, a *appModelAdapter, keys ...string) {
	t.Helper()
	for _, k := range keys {
		_, cmd := a.Update(keyMsg(k))
		run(t, a, cmd)
	}
}

func ids(items []inventory.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func topView(a *appModelAdapter) View {
	top, ok := a.Overlays.Peek()
	if !ok {
		return nil
	}
	return top.View
}

func TestApp_InitialLoad(t *testing.T) {
	f := &fakeRemote{items: sampleItems()}
	a := newTestApp(t, f)

	if got := ids(a.Catalog.Items()); !reflect.DeepEqual(got, []string{"A-1", "A-2", "M-1"}) {
		t.Errorf("items = %v", got)
	}
	if a.Title() != "Home" {
		t.Errorf("title = %q", a.Title())
	}
	if st := a.Store.Stats(); st != (inventory.Stats{Total: 3, Alat: 2, Material: 1}) {
		t.Errorf("stats = %+v", st)
	}
	if got := a.Sidebar.Categories(inventory.JenisAlat); !reflect.DeepEqual(got, []string{"Listrik", "Tangan"}) {
		t.Errorf("alat categories = %v", got)
	}
	if !strings.Contains(a.View(), "Total: 3") {
		t.Error("header should show stats")
	}
}

func TestApp_FetchErrorShownInList(t *testing.T) {
	f := &fakeRemote{listErr: errors.New("HTTP 500")}
	a := newTestApp(t, f)

	if got := a.Catalog.EmptyText(); got != "Gagal muat data: HTTP 500" {
		t.Errorf("empty text = %q", got)
	}
	if len(a.Catalog.Items()) != 0 {
		t.Error("list should be empty on fetch error")
	}
	if a.Overlays.Len() != 0 {
		t.Error("fetch errors are shown inline, not as an alert")
	}
}

func TestApp_EmptyCatalog(t *testing.T) {
	a := newTestApp(t, &fakeRemote{})
	if got := a.Catalog.EmptyText(); got != "Tidak ada produk." {
		t.Errorf("empty text = %q", got)
	}
}

func TestApp_StaleCatalogDiscarded(t *testing.T) {
	a := newTestApp(t, &fakeRemote{items: sampleItems()})

	older := a.Store.Begin()
	newer := a.Store.Begin()
	a.Update(CatalogLoadedMsg{Gen: newer, Items: sampleItems()[:1]})
	a.Update(CatalogLoadedMsg{Gen: older, Items: sampleItems()})

	if got := ids(a.Catalog.Items()); !reflect.DeepEqual(got, []string{"A-1"}) {
		t.Errorf("stale response overwrote newer one: %v", got)
	}
}

func TestApp_RefreshIsIdempotent(t *testing.T) {
	f := &fakeRemote{items: sampleItems()}
	a := newTestApp(t, f)
	before := a.Catalog.Items()

	press(t, a, "r")
	if f.lists != 2 {
		t.Fatalf("lists = %d, want 2", f.lists)
	}
	if !reflect.DeepEqual(before, a.Catalog.Items()) {
		t.Error("refresh changed an unchanged catalog")
	}
}

func TestApp_DeleteRequiresConfirmation(t *testing.T) {
	f := &fakeRemote{items: sampleItems()}
	a := newTestApp(t, f)

	press(t, a, "d")
	confirm, ok := topView(a).(*ConfirmModal)
	if !ok {
		t.Fatalf("top overlay = %T, want *ConfirmModal", topView(a))
	}
	if confirm.Label != "Hapus Bor Listrik (A-1) ?" {
		t.Errorf("label = %q", confirm.Label)
	}

	press(t, a, "esc")
	if a.Overlays.Len() != 0 {
		t.Error("esc should close the confirmation")
	}
	if len(f.done) != 0 {
		t.Fatalf("cancelled delete sent %v", f.done)
	}

	press(t, a, "d", "y")
	if len(f.done) != 1 || f.done[0].Action != remote.ActionDelete || f.done[0].ItemID != "A-1" {
		t.Fatalf("done = %v", f.done)
	}
	if f.lists != 2 {
		t.Errorf("lists = %d, want refresh after delete", f.lists)
	}
	if got := ids(a.Catalog.Items()); !reflect.DeepEqual(got, []string{"A-2", "M-1"}) {
		t.Errorf("catalog after delete = %v, want re-fetched list", got)
	}
	if a.Overlays.Len() != 0 {
		t.Error("no overlay expected after successful delete")
	}
}

func TestApp_DeleteConfirmSendsOnce(t *testing.T) {
	f := &fakeRemote{items: sampleItems()}
	a := newTestApp(t, f)

	press(t, a, "d")
	_, first := a.Update(keyMsg("y"))
	_, second := a.Update(keyMsg("enter"))
	if second != nil {
		t.Error("a confirmed modal should ignore further confirmations")
	}
	run(t, a, first)
	run(t, a, second)
	if len(f.done) != 1 {
		t.Fatalf("done = %v, want a single delete", f.done)
	}
}

func TestApp_MutationSuccessKeepsLaterModals(t *testing.T) {
	f := &fakeRemote{items: sampleItems()}
	a := newTestApp(t, f)

	press(t, a, "a", "A", "-", "9", "tab", "T", "a", "n", "g")
	form, ok := topView(a).(*ItemFormModal)
	if !ok {
		t.Fatalf("top overlay = %T", topView(a))
	}
	_, submit := a.Update(keyMsg("ctrl+s"))
	_, send := a.Update(submit())

	// An export failure lands while the add is still in flight.
	a.Update(ExportDoneMsg{Path: "x.csv", Err: errors.New("disk full")})
	run(t, a, send)

	if len(f.done) != 1 || f.lists != 2 {
		t.Fatalf("done=%v lists=%d", f.done, f.lists)
	}
	if a.Overlays.Len() != 1 {
		t.Fatalf("overlays = %d, want only the export alert", a.Overlays.Len())
	}
	alert, ok := topView(a).(*AlertModal)
	if !ok || alert.Title != "Gagal export" {
		t.Errorf("top overlay = %#v", topView(a))
	}
	for _, o := range a.Overlays.Stack {
		if o.View == View(form) {
			t.Error("the form that sent the add should be closed")
		}
	}
}

func TestApp_MutationFailureRaisesAlert(t *testing.T) {
	f := &fakeRemote{items: sampleItems()}
	a := newTestApp(t, f)
	f.doErr = errors.New("remote add failed: HTTP 403")

	press(t, a, "a", "ctrl+s")
	alert, ok := topView(a).(*AlertModal)
	if !ok {
		t.Fatalf("top overlay = %T, want *AlertModal", topView(a))
	}
	if alert.Title != "Gagal tambah" || !strings.Contains(alert.Text, "403") {
		t.Errorf("alert = %+v", alert)
	}
	if a.Overlays.Len() != 2 {
		t.Errorf("form should stay open under the alert, overlays = %d", a.Overlays.Len())
	}
	if f.lists != 1 {
		t.Errorf("failed mutation must not refresh, lists = %d", f.lists)
	}

	press(t, a, "enter")
	if _, ok := topView(a).(*ItemFormModal); !ok {
		t.Errorf("closing the alert should return to the form, got %T", topView(a))
	}
}

func TestApp_AddFormCoercesJumlah(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "0"},
		{"abc", "0"},
		{"5", "5"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f := &fakeRemote{items: sampleItems()}
			a := newTestApp(t, f)

			press(t, a, "a")
			form, ok := topView(a).(*ItemFormModal)
			if !ok {
				t.Fatalf("top overlay = %T", topView(a))
			}
			press(t, a, "A", "-", "9", "tab", "T", "a", "n", "g")
			form.inputs[fieldJumlah].SetValue(tt.input)
			press(t, a, "ctrl+s")

			if len(f.done) != 1 {
				t.Fatalf("done = %v", f.done)
			}
			m := f.done[0]
			if m.Action != remote.ActionAdd || m.Fields[inventory.FieldID] != "A-9" || m.Fields[inventory.FieldNama] != "Tang" {
				t.Errorf("mutation = %+v", m)
			}
			if got := m.Fields[inventory.FieldJumlah]; got != json.Number(tt.want) {
				t.Errorf("Jumlah = %#v, want %s", got, tt.want)
			}
			if m.Fields[inventory.FieldJenis] != "Alat" || m.Fields[inventory.FieldSatuan] != "pcs" {
				t.Errorf("defaults not applied: %+v", m.Fields)
			}
			if a.Overlays.Len() != 0 || f.lists != 2 {
				t.Errorf("expected form closed and refresh, overlays=%d lists=%d", a.Overlays.Len(), f.lists)
			}
		})
	}
}

func TestApp_AddDefaultsToSidebarJenis(t *testing.T) {
	f := &fakeRemote{items: sampleItems()}
	a := newTestApp(t, f)
	a.Update(SelectJenisMsg{Jenis: inventory.JenisMaterial})

	press(t, a, "a", "ctrl+s")
	if len(f.done) != 1 || f.done[0].Fields[inventory.FieldJenis] != "Material" {
		t.Errorf("done = %v", f.done)
	}
}

func TestApp_EditResendsFullRecord(t *testing.T) {
	f := &fakeRemote{items: sampleItems()}
	a := newTestApp(t, f)

	_, cmd := a.Update(ShowEditItemMsg{ID: "M-1"})
	run(t, a, cmd)
	form, ok := topView(a).(*ItemFormModal)
	if !ok || !form.Edit {
		t.Fatalf("top overlay = %T", topView(a))
	}
	if form.cursor != fieldNama {
		t.Errorf("edit form should start on Nama, cursor = %d", form.cursor)
	}
	form.inputs[fieldJumlah].SetValue("45")
	press(t, a, "ctrl+s")

	if len(f.done) != 1 {
		t.Fatalf("done = %v", f.done)
	}
	m := f.done[0]
	if m.Action != remote.ActionUpdate || m.ItemID != "M-1" {
		t.Fatalf("mutation = %v", m)
	}
	want := map[string]interface{}{
		"ID": "M-1", "Nama": "Semen", "Jenis": "Material", "Kategori": "Bangunan",
		"Part": "", "Jumlah": json.Number("45"), "Satuan": "sak", "Keterangan": "",
	}
	if !reflect.DeepEqual(m.Fields, want) {
		t.Errorf("fields = %v, want %v", m.Fields, want)
	}
}

func TestApp_EditIDIsReadOnly(t *testing.T) {
	a := newTestApp(t, &fakeRemote{items: sampleItems()})
	_, cmd := a.Update(ShowEditItemMsg{ID: "A-1"})
	run(t, a, cmd)
	form := topView(a).(*ItemFormModal)

	for i := 0; i < 2*fieldCount; i++ {
		press(t, a, "tab")
		if form.cursor == fieldID || form.cursor == fieldJenis {
			t.Fatalf("tab reached read-only field %d", form.cursor)
		}
	}
	if form.Item().ID != "A-1" {
		t.Errorf("ID = %q", form.Item().ID)
	}
}

func TestApp_LookupMissIsNoop(t *testing.T) {
	f := &fakeRemote{items: sampleItems()}
	a := newTestApp(t, f)

	a.Update(ShowEditItemMsg{ID: "nope"})
	a.Update(ShowDeleteItemMsg{ID: "nope"})
	if a.Overlays.Len() != 0 {
		t.Errorf("unknown ID opened %T", topView(a))
	}

	empty := newTestApp(t, &fakeRemote{})
	press(t, empty, "e", "d")
	if empty.Overlays.Len() != 0 {
		t.Error("edit/delete with no selection should do nothing")
	}
}

func TestApp_Search(t *testing.T) {
	a := newTestApp(t, &fakeRemote{items: sampleItems()})

	press(t, a, "/")
	if !a.Focus.Is(PaneSearch) {
		t.Fatal("/ should focus search")
	}
	press(t, a, "b", "o", "r", "enter")
	if a.Title() != "Search: bor" {
		t.Errorf("title = %q", a.Title())
	}
	if got := ids(a.Catalog.Items()); !reflect.DeepEqual(got, []string{"A-1"}) {
		t.Errorf("results = %v", got)
	}
	if !a.Focus.Is(PaneList) {
		t.Error("submitting a search should focus the list")
	}

	a.Update(SearchMsg{Query: "bl-10"})
	if got := ids(a.Catalog.Items()); !reflect.DeepEqual(got, []string{"A-1"}) {
		t.Errorf("part search = %v", got)
	}

	a.Update(SearchMsg{Query: "   "})
	if a.Mode != ModeHome || len(a.Catalog.Items()) != 3 {
		t.Errorf("blank search should return Home, mode=%v items=%d", a.Mode, len(a.Catalog.Items()))
	}
}

func TestApp_SearchTypingDoesNotTriggerBindings(t *testing.T) {
	f := &fakeRemote{items: sampleItems()}
	a := newTestApp(t, f)
	press(t, a, "/", "d", "q", "a")
	if a.Overlays.Len() != 0 || len(f.done) != 0 {
		t.Error("keys typed into search must not trigger actions")
	}
	if a.Search.Value() != "dqa" {
		t.Errorf("search value = %q", a.Search.Value())
	}
}

func TestApp_CategoryFilterKeptAcrossRefresh(t *testing.T) {
	f := &fakeRemote{items: sampleItems()}
	a := newTestApp(t, f)

	a.Update(SelectCategoryMsg{Jenis: inventory.JenisAlat, Kategori: "Tangan"})
	if a.Title() != "Alat • Tangan" {
		t.Errorf("title = %q", a.Title())
	}
	if got := ids(a.Catalog.Items()); !reflect.DeepEqual(got, []string{"A-2"}) {
		t.Errorf("category items = %v", got)
	}

	f.items = append(f.items, inventory.Item{ID: "A-3", Nama: "Obeng", Jenis: "alat", Kategori: "Tangan"})
	press(t, a, "r")
	if got := ids(a.Catalog.Items()); !reflect.DeepEqual(got, []string{"A-2", "A-3"}) {
		t.Errorf("after refresh = %v", got)
	}

	press(t, a, " ", "h")
	if a.Mode != ModeHome || len(a.Catalog.Items()) != 4 {
		t.Errorf("SPC h: mode=%v items=%d", a.Mode, len(a.Catalog.Items()))
	}
}

func TestApp_SidebarNavigation(t *testing.T) {
	a := newTestApp(t, &fakeRemote{items: sampleItems()})
	press(t, a, "shift+tab")
	if !a.Focus.Is(PaneSidebar) {
		t.Fatalf("focus = %s", a.Focus.Current)
	}

	// Home, Barang, Alat
	press(t, a, "down", "down", "enter")
	if a.Mode != ModeJenis || a.Jenis != inventory.JenisAlat {
		t.Fatalf("mode=%v jenis=%q", a.Mode, a.Jenis)
	}
	press(t, a, "down", "enter")
	if a.Mode != ModeCategory || a.Kategori != "Listrik" {
		t.Errorf("mode=%v kategori=%q", a.Mode, a.Kategori)
	}
}

func TestApp_ImportCSV(t *testing.T) {
	f := &fakeRemote{items: sampleItems()}
	a := newTestApp(t, f)
	path := filepath.Join(t.TempDir(), "stok.csv")
	content := "ID,Nama,Jenis\nA-9,\"Kunci, Inggris\",Alat\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	press(t, a, " ", "i")
	if _, ok := topView(a).(*PathModal); !ok {
		t.Fatalf("top overlay = %T, want *PathModal", topView(a))
	}
	_, cmd := a.Update(ImportFileMsg{Path: path})
	run(t, a, cmd)

	if len(f.done) != 1 {
		t.Fatalf("done = %v", f.done)
	}
	m := f.done[0]
	if m.Action != remote.ActionImportCSV || m.Fields["csv"] != content || m.Fields["Note"] != "Import file stok.csv" {
		t.Errorf("import mutation = %+v", m)
	}
	alert, ok := topView(a).(*AlertModal)
	if !ok || alert.Title != "Import berhasil" {
		t.Errorf("top overlay = %#v", topView(a))
	}
	if f.lists != 2 {
		t.Errorf("lists = %d, want refresh after import", f.lists)
	}
}

func TestApp_ImportMissingFile(t *testing.T) {
	f := &fakeRemote{items: sampleItems()}
	a := newTestApp(t, f)
	_, cmd := a.Update(ImportFileMsg{Path: filepath.Join(t.TempDir(), "missing.csv")})
	run(t, a, cmd)

	alert, ok := topView(a).(*AlertModal)
	if !ok || alert.Title != "Import gagal" {
		t.Fatalf("top overlay = %#v", topView(a))
	}
	if len(f.done) != 0 {
		t.Error("nothing should be sent when the file cannot be read")
	}
}

func TestApp_Export(t *testing.T) {
	csv := "ID,Nama\nA-1,Bor Listrik\n"
	f := &fakeRemote{items: sampleItems(), csv: []byte(csv)}
	a := newTestApp(t, f)

	press(t, a, " ", "x")
	pm, ok := topView(a).(*PathModal)
	if !ok {
		t.Fatalf("top overlay = %T", topView(a))
	}
	if pm.Input.Value() != a.ExportPath {
		t.Errorf("export prompt = %q, want default %q", pm.Input.Value(), a.ExportPath)
	}
	press(t, a, "enter")

	got, err := os.ReadFile(a.ExportPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != csv {
		t.Errorf("exported %q, want %q", got, csv)
	}
	if a.Overlays.Len() != 0 || a.StatusIsError {
		t.Errorf("overlays=%d status=%q", a.Overlays.Len(), a.Status)
	}
}

func TestApp_ExportFailure(t *testing.T) {
	f := &fakeRemote{items: sampleItems()}
	a := newTestApp(t, f)
	f.doErr = errors.New("HTTP 500")

	_, cmd := a.Update(ExportToMsg{Path: filepath.Join(t.TempDir(), "x.csv")})
	run(t, a, cmd)
	alert, ok := topView(a).(*AlertModal)
	if !ok || alert.Title != "Gagal export" {
		t.Errorf("top overlay = %#v", topView(a))
	}
}

func TestApp_InfoModals(t *testing.T) {
	a := newTestApp(t, &fakeRemote{})
	press(t, a, " ", "?")
	if alert, ok := topView(a).(*AlertModal); !ok || alert.Title != "PT. CONTOH" {
		t.Fatalf("top overlay = %#v", topView(a))
	}
	press(t, a, "esc", " ", "t")
	if alert, ok := topView(a).(*AlertModal); !ok || alert.Title != "Tutorial Singkat" {
		t.Fatalf("top overlay = %#v", topView(a))
	}
	if !strings.Contains(a.View(), "Tutorial Singkat") {
		t.Error("view should render the open modal")
	}
}

func TestApp_LeaderHelpInView(t *testing.T) {
	a := newTestApp(t, &fakeRemote{})
	a.Update(keyMsg(" "))
	if !strings.Contains(a.View(), "Import CSV") {
		t.Error("SPC should show the leader hints")
	}
	a.Update(keyMsg("esc"))
	if strings.Contains(a.View(), "Import CSV") {
		t.Error("esc should hide the leader hints")
	}
}
