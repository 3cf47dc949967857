package ui

// AppMode is what the item list is currently showing.
type AppMode int

const (
	ModeHome     AppMode = iota // full catalog
	ModeSearch                  // search result
	ModeJenis                   // every item of one Jenis
	ModeCategory                // one (Jenis, Kategori) facet
)

func (m AppMode) String() string {
	switch m {
	case ModeHome:
		return "Home"
	case ModeSearch:
		return "Search"
	case ModeJenis:
		return "Jenis"
	case ModeCategory:
		return "Category"
	default:
		return "Unknown"
	}
}
