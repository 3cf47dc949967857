// Package inventory holds the inventory record type, the normalisation
// rules applied to loosely typed spreadsheet values, and the derived views
// (search, category facets, stats) computed from a catalog snapshot.
package inventory

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Jenis is the normalised top-level classification of an item.
type Jenis string

const (
	JenisAlat     Jenis = "alat"     // tool
	JenisMaterial Jenis = "material" // material
	JenisUnknown  Jenis = ""
)

// Jenises lists the known classifications in display order.
var Jenises = []Jenis{JenisAlat, JenisMaterial}

// NormalizeJenis maps a raw Jenis value ("Alat", " MATERIAL ") to its
// canonical form. Anything else is JenisUnknown.
func NormalizeJenis(s string) Jenis {
	switch Jenis(strings.ToLower(strings.TrimSpace(s))) {
	case JenisAlat:
		return JenisAlat
	case JenisMaterial:
		return JenisMaterial
	default:
		return JenisUnknown
	}
}

// Title returns the display form used by the remote store ("Alat", "Material").
func (j Jenis) Title() string {
	switch j {
	case JenisAlat:
		return "Alat"
	case JenisMaterial:
		return "Material"
	default:
		return "Lainnya"
	}
}

// Item is one inventory record as held by the remote store.
// ID is immutable once created and is the only key used for edit and delete.
type Item struct {
	ID         string
	Nama       string
	Jenis      string // raw value as stored remotely; see Kind
	Kategori   string
	Part       string
	Jumlah     decimal.Decimal
	Satuan     string
	Keterangan string
}

// Kind returns the normalised Jenis of the item.
func (it Item) Kind() Jenis {
	return NormalizeJenis(it.Jenis)
}

// Icon returns the glyph shown next to the item.
func (it Item) Icon() string {
	if it.Kind() == JenisAlat {
		return "🔧"
	}
	return "🧱"
}

// NotesOrDash returns Keterangan, or "-" when it is empty.
func (it Item) NotesOrDash() string {
	if strings.TrimSpace(it.Keterangan) == "" {
		return "-"
	}
	return it.Keterangan
}

// Quantity renders Jumlah with its unit, e.g. "5 pcs".
func (it Item) Quantity() string {
	return strings.TrimSpace(it.Jumlah.String() + " " + it.Satuan)
}

// Label identifies the item in prompts: "Bor Listrik (A-001)".
func (it Item) Label() string {
	return fmt.Sprintf("%s (%s)", it.Nama, it.ID)
}

// ParseJumlah converts user or spreadsheet text to a quantity.
// Empty, non-numeric and negative input all become zero; this is a
// normalisation, not a validation, so no error is returned.
func ParseJumlah(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// JumlahFromAny applies ParseJumlah's policy to a decoded JSON value.
func JumlahFromAny(v interface{}) decimal.Decimal {
	switch val := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		if val.IsNegative() {
			return decimal.Zero
		}
		return val
	case float64:
		return ParseJumlah(decimal.NewFromFloat(val).String())
	case int:
		return ParseJumlah(decimal.NewFromInt(int64(val)).String())
	case int64:
		return ParseJumlah(decimal.NewFromInt(val).String())
	case fmt.Stringer: // json.Number
		return ParseJumlah(val.String())
	case string:
		return ParseJumlah(val)
	default:
		return decimal.Zero
	}
}
