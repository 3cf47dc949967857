package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gudang/internal/inventory"
	"gudang/internal/remote"
	"gudang/internal/store"
)

// Remote is the subset of *remote.Client the UI needs.
type Remote interface {
	List(ctx context.Context) ([]inventory.Item, error)
	Export(ctx context.Context) ([]byte, error)
	Do(ctx context.Context, m remote.Mutation) error
}

// AppModel is the root model: a sidebar, the item list with its detail
// pane, and a search box, with modals stacked on top. The catalog lives in
// Store; every view is derived from its snapshot.
type AppModel struct {
	Mode     AppMode
	Query    string          // ModeSearch
	Jenis    inventory.Jenis // ModeJenis, ModeCategory
	Kategori string          // ModeCategory

	Store      *store.Store
	Remote     Remote
	ExportPath string

	Sidebar    *SidebarView
	Catalog    *CatalogView
	Search     textinput.Model
	Spinner    spinner.Model
	Focus      *FocusManager
	KeyHandler *KeyHandler
	Overlays   OverlayStack

	Status        string
	StatusIsError bool

	width, height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model. exportPath is the default offered
// by the export prompt.
func NewAppModel(st *store.Store, r Remote, exportPath string) *AppModel {
	if st == nil {
		st = store.New()
	}
	search := textinput.New()
	search.Placeholder = "Cari nama, ID atau part…"
	search.Prompt = "/ "
	search.CharLimit = 128

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = Styles.Status

	m := &AppModel{
		Mode:       ModeHome,
		Store:      st,
		Remote:     r,
		ExportPath: exportPath,
		Sidebar:    NewSidebarView(),
		Catalog:    NewCatalogView(),
		Search:     search,
		Spinner:    sp,
		Focus:      NewFocusManager(PaneList, PaneSearch, PaneSidebar),
	}
	m.Focus.OnChange = m.applyFocus
	m.applyFocus("", m.Focus.Current)
	m.KeyHandler = NewKeyHandler(defaultKeybinds())
	st.OnChange(m.syncViews)
	m.syncViews()
	return m
}

// defaultKeybinds registers the global keys and the SPC leader menu.
func defaultKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	msg := func(v tea.Msg) tea.Cmd { return func() tea.Msg { return v } }

	reg.Bind("q", tea.Quit)
	reg.Bind("ctrl+c", tea.Quit)
	reg.Bind("/", msg(FocusSearchMsg{}))
	reg.Bind("tab", msg(FocusNextMsg{}))
	reg.Bind("shift+tab", msg(FocusPrevMsg{}))
	reg.Bind("a", msg(ShowAddItemMsg{}))
	reg.Bind("e", msg(ShowEditItemMsg{}))
	reg.Bind("d", msg(ShowDeleteItemMsg{}))
	reg.Bind("r", msg(RefreshMsg{}))

	reg.BindHint("SPC a", "Tambah", msg(ShowAddItemMsg{}))
	reg.BindHint("SPC e", "Edit", msg(ShowEditItemMsg{}))
	reg.BindHint("SPC d", "Hapus", msg(ShowDeleteItemMsg{}))
	reg.BindHint("SPC i", "Import CSV", msg(ShowImportMsg{}))
	reg.BindHint("SPC x", "Export CSV", msg(ShowExportMsg{}))
	reg.BindHint("SPC r", "Refresh", msg(RefreshMsg{}))
	reg.BindHint("SPC /", "Cari", msg(FocusSearchMsg{}))
	reg.Submenu("SPC j", "Jenis")
	reg.BindHint("SPC j a", "Alat", msg(SelectJenisMsg{Jenis: inventory.JenisAlat}))
	reg.BindHint("SPC j m", "Material", msg(SelectJenisMsg{Jenis: inventory.JenisMaterial}))
	reg.BindHint("SPC h", "Home", msg(HomeMsg{}), ModeSearch, ModeJenis, ModeCategory)
	reg.BindHint("SPC t", "Tutorial", msg(ShowTutorialMsg{}))
	reg.BindHint("SPC ?", "Tentang", msg(ShowAboutMsg{}))
	reg.BindHint("SPC q", "Keluar", tea.Quit)
	return reg
}

// AsTeaModel returns a tea.Model for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Title is the page heading for the current mode.
func (m *AppModel) Title() string {
	switch m.Mode {
	case ModeSearch:
		return "Search: " + m.Query
	case ModeJenis:
		return m.Jenis.Title()
	case ModeCategory:
		return m.Jenis.Title() + " • " + m.Kategori
	default:
		return "Home"
	}
}

// visibleItems derives the list contents for the current mode from the
// store snapshot.
func (m *AppModel) visibleItems() []inventory.Item {
	items := m.Store.Snapshot()
	switch m.Mode {
	case ModeSearch:
		return inventory.Search(items, m.Query)
	case ModeJenis:
		return inventory.FilterJenis(items, m.Jenis)
	case ModeCategory:
		return inventory.FilterCategory(items, m.Jenis, m.Kategori)
	default:
		return items
	}
}

// syncViews rebuilds the sidebar and list from the store. It runs after
// every accepted fetch and every navigation change; the current filter is
// kept across refreshes.
func (m *AppModel) syncViews() {
	cats := make(map[inventory.Jenis][]string, len(inventory.Jenises))
	for _, j := range inventory.Jenises {
		cats[j] = m.Store.Categories(j)
	}
	m.Sidebar.SetCatalog(cats, m.Store.Stats())

	switch {
	case m.Store.Err() != nil:
		m.Catalog.SetItems(nil, "Gagal muat data: "+m.Store.Err().Error())
	case !m.Store.Loaded():
		m.Catalog.SetItems(nil, "Memuat data…")
	default:
		m.Catalog.SetItems(m.visibleItems(), "Tidak ada produk.")
	}
}

// applyFocus mirrors the focus manager onto the panes.
func (m *AppModel) applyFocus(_, to string) {
	m.Sidebar.Focused = to == PaneSidebar
	m.Catalog.Focused = to == PaneList
	if to == PaneSearch {
		m.Search.Focus()
	} else {
		m.Search.Blur()
	}
}

// refresh starts a list fetch under a new store generation.
func (m *AppModel) refresh() tea.Cmd {
	gen := m.Store.Begin()
	return tea.Batch(m.Spinner.Tick, fetchCatalogCmd(m.Remote, gen))
}

// pushModal opens v above the current screen.
func (m *AppModel) pushModal(v View) tea.Cmd {
	m.Overlays.Push(Overlay{View: v, Dismiss: "esc"})
	return v.Init()
}

func (m *AppModel) setStatus(s string, isErr bool) {
	m.Status = s
	m.StatusIsError = isErr
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.refresh()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	case spinner.TickMsg:
		if !a.Store.Loading() {
			return a, nil
		}
		var cmd tea.Cmd
		a.Spinner, cmd = a.Spinner.Update(msg)
		return a, cmd
	case CatalogLoadedMsg:
		return a.handleCatalogLoaded(msg)
	case RefreshMsg:
		a.setStatus("", false)
		return a, a.refresh()
	case DispatchMsg:
		return a.handleDispatch(msg)
	case MutationDoneMsg:
		return a.handleMutationDone(msg)
	case ExportDoneMsg:
		return a.handleExportDone(msg)
	case AlertMsg:
		return a, a.pushModal(NewAlertModal(msg.Title, msg.Text, msg.Error))
	case HomeMsg:
		return a.handleNavigate(ModeHome, "", "", "")
	case SearchMsg:
		return a.handleSearch(msg)
	case SelectJenisMsg:
		return a.handleNavigate(ModeJenis, "", msg.Jenis, "")
	case SelectCategoryMsg:
		return a.handleNavigate(ModeCategory, "", msg.Jenis, msg.Kategori)
	case ShowAddItemMsg:
		return a, a.pushModal(NewAddItemModal(a.Jenis))
	case ShowEditItemMsg:
		return a.handleShowEdit(msg)
	case ShowDeleteItemMsg:
		return a.handleShowDelete(msg)
	case ShowImportMsg:
		return a, a.pushModal(NewImportModal())
	case ShowExportMsg:
		return a, a.pushModal(NewExportModal(a.ExportPath))
	case ImportFileMsg:
		a.Overlays.Pop()
		a.setStatus("Mengimpor "+msg.Path+"…", false)
		return a, readImportCmd(msg.Path)
	case ExportToMsg:
		a.Overlays.Pop()
		a.ExportPath = msg.Path
		a.setStatus("Mengekspor ke "+msg.Path+"…", false)
		return a, exportCmd(a.Remote, msg.Path)
	case ShowTutorialMsg:
		return a, a.pushModal(NewTutorialModal())
	case ShowAboutMsg:
		return a, a.pushModal(NewAboutModal())
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case FocusSearchMsg:
		a.Focus.SetFocus(PaneSearch)
		return a, textinput.Blink
	case FocusNextMsg:
		a.Focus.Next()
		return a, nil
	case FocusPrevMsg:
		a.Focus.Prev()
		return a, nil
	}

	// Anything else (cursor blink and similar) goes to the modal or input that owns it.
	if cmd, ok := a.Overlays.UpdateTop(msg); ok {
		return a, cmd
	}
	if a.Focus.Is(PaneSearch) {
		var cmd tea.Cmd
		a.Search, cmd = a.Search.Update(msg)
		return a, cmd
	}
	return a, nil
}

// resize lays the panes out for a terminal of the given size.
func (m *AppModel) resize(width, height int) {
	m.width, m.height = width, height
	// Borders and padding take 4 columns per pane; header, search and status take 8 rows.
	listWidth := width - (SidebarWidth + 4) - (DetailWidth + 4) - 4
	if listWidth < 30 {
		listWidth = 30
	}
	listHeight := height - 8
	if listHeight < 5 {
		listHeight = 5
	}
	m.Catalog.SetSize(listWidth, listHeight)
	m.Search.Width = width - 6
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if top, ok := a.Overlays.Peek(); ok {
		if a.width == 0 || a.height == 0 {
			return top.View.View()
		}
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, top.View.View())
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		a.Sidebar.View(),
		a.Catalog.View(),
		a.Catalog.DetailView(),
	)
	searchStyle := Styles.Pane
	if a.Focus.Is(PaneSearch) {
		searchStyle = Styles.PaneFocused
	}
	parts := []string{a.headerView(), body, searchStyle.Render(a.Search.View()), a.statusView()}
	if a.KeyHandler != nil && a.KeyHandler.Waiting() {
		parts = append(parts, RenderKeybindHelp(a.KeyHandler, a.Mode))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *appModelAdapter) headerView() string {
	st := a.Store.Stats()
	header := Styles.Title.Render(a.Title())
	header += "  " + Styles.Muted.Render(statsLine(st))
	if a.Store.Loading() {
		header += "  " + a.Spinner.View()
	}
	return header
}

func (a *appModelAdapter) statusView() string {
	if a.Status == "" {
		return Styles.Hint.Render("SPC: menu  a: tambah  e: edit  d: hapus  /: cari  r: refresh  q: keluar")
	}
	if a.StatusIsError {
		return Styles.Error.Render(a.Status)
	}
	return Styles.Status.Render(a.Status)
}
