package inventory

import "strings"

// Stats are the aggregate counts shown in the header.
type Stats struct {
	Total    int
	Alat     int
	Material int
}

// ComputeStats counts items by normalised Jenis.
func ComputeStats(items []Item) Stats {
	s := Stats{Total: len(items)}
	for _, it := range items {
		switch it.Kind() {
		case JenisAlat:
			s.Alat++
		case JenisMaterial:
			s.Material++
		}
	}
	return s
}

// Search returns the items matching q, in catalog order. An empty query
// returns the whole catalog. Otherwise an item matches when its name
// contains q, or its ID or Part equals q, all case-insensitively.
func Search(items []Item, q string) []Item {
	q = strings.TrimSpace(q)
	if q == "" {
		return append([]Item(nil), items...)
	}
	lq := strings.ToLower(q)
	var out []Item
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Nama), lq) ||
			strings.EqualFold(it.ID, q) ||
			strings.EqualFold(it.Part, q) {
			out = append(out, it)
		}
	}
	return out
}

// FilterCategory returns items whose Jenis normalises to jenis and whose
// Kategori equals kategori exactly.
func FilterCategory(items []Item, jenis Jenis, kategori string) []Item {
	var out []Item
	for _, it := range items {
		if it.Kind() == jenis && it.Kategori == kategori {
			out = append(out, it)
		}
	}
	return out
}

// FilterJenis returns all items of one Jenis.
func FilterJenis(items []Item, jenis Jenis) []Item {
	var out []Item
	for _, it := range items {
		if it.Kind() == jenis {
			out = append(out, it)
		}
	}
	return out
}

// Categories returns the distinct non-empty Kategori values of one Jenis
// in first-seen order.
func Categories(items []Item, jenis Jenis) []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range items {
		if it.Kind() != jenis || it.Kategori == "" || seen[it.Kategori] {
			continue
		}
		seen[it.Kategori] = true
		out = append(out, it.Kategori)
	}
	return out
}

// Find returns the item with the given ID. A miss is not an error; callers
// treat it as a no-op.
func Find(items []Item, id string) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
