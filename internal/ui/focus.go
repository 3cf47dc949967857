package ui

// Pane IDs used for focus rotation on the main screen.
const (
	PaneSidebar = "sidebar"
	PaneList    = "list"
	PaneSearch  = "search"
)

// FocusManager tracks and rotates focus across panes.
type FocusManager struct {
	Current  string   // ID of the focused pane
	Order    []string // Tab order
	OnChange func(from, to string)
}

// NewFocusManager creates a manager focused on the first pane in order.
func NewFocusManager(order ...string) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Is reports whether id has focus.
func (f *FocusManager) Is(id string) bool {
	return f != nil && f.Current == id
}

func (f *FocusManager) indexOf(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}

func (f *FocusManager) moveTo(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}

// Next advances focus to the next pane and returns its ID.
func (f *FocusManager) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	f.moveTo(f.Order[(f.indexOf(f.Current)+1)%len(f.Order)])
	return f.Current
}

// Prev moves focus to the previous pane and returns its ID.
func (f *FocusManager) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.indexOf(f.Current) - 1
	if idx < 0 {
		idx = len(f.Order) - 1
	}
	f.moveTo(f.Order[idx])
	return f.Current
}

// SetFocus focuses the given pane. Returns false if id is not in Order.
func (f *FocusManager) SetFocus(id string) bool {
	if f.indexOf(id) < 0 {
		return false
	}
	f.moveTo(id)
	return true
}
