package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gudang/internal/inventory"
	"gudang/internal/remote"
)

// Form field indices, in tab order.
const (
	fieldID = iota
	fieldNama
	fieldJenis
	fieldKategori
	fieldPart
	fieldJumlah
	fieldSatuan
	fieldKeterangan
	fieldCount
)

var formLabels = [fieldCount]string{
	fieldID:         "ID",
	fieldNama:       "Nama",
	fieldJenis:      "Jenis",
	fieldKategori:   "Kategori",
	fieldPart:       "Part / Part Number",
	fieldJumlah:     "Jumlah",
	fieldSatuan:     "Satuan",
	fieldKeterangan: "Keterangan",
}

// ItemFormModal is the add and edit form. Jenis is a toggle between Alat and
// Material; every other field is free text. In edit mode ID and Jenis are
// read-only and the full record is resent on save.
//
// There is no client-side validation: Jumlah is coerced with
// inventory.ParseJumlah and ID uniqueness is left to the remote store.
type ItemFormModal struct {
	Edit     bool
	original inventory.Item
	inputs   [fieldCount]textinput.Model // fieldJenis slot unused
	jenis    inventory.Jenis
	cursor   int
}

var _ View = (*ItemFormModal)(nil)

func newFormInput(value string) textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40
	ti.SetValue(value)
	return ti
}

// NewAddItemModal creates an empty form. jenis preselects the toggle; an
// unknown Jenis falls back to Alat.
func NewAddItemModal(jenis inventory.Jenis) *ItemFormModal {
	if jenis == inventory.JenisUnknown {
		jenis = inventory.JenisAlat
	}
	m := &ItemFormModal{jenis: jenis}
	for i := range m.inputs {
		m.inputs[i] = newFormInput("")
	}
	m.inputs[fieldJumlah].SetValue("1")
	m.inputs[fieldSatuan].SetValue("pcs")
	m.focus(fieldID)
	return m
}

// NewEditItemModal creates a form prefilled from it.
func NewEditItemModal(it inventory.Item) *ItemFormModal {
	m := &ItemFormModal{Edit: true, original: it, jenis: it.Kind()}
	values := [fieldCount]string{
		fieldID:         it.ID,
		fieldNama:       it.Nama,
		fieldKategori:   it.Kategori,
		fieldPart:       it.Part,
		fieldJumlah:     it.Jumlah.String(),
		fieldSatuan:     it.Satuan,
		fieldKeterangan: it.Keterangan,
	}
	for i := range m.inputs {
		m.inputs[i] = newFormInput(values[i])
	}
	m.focus(fieldNama)
	return m
}

func (m *ItemFormModal) readOnly(field int) bool {
	return m.Edit && (field == fieldID || field == fieldJenis)
}

func (m *ItemFormModal) focus(field int) {
	m.inputs[m.cursor].Blur()
	m.cursor = field
	if field != fieldJenis {
		m.inputs[field].Focus()
	}
}

// move steps the cursor by delta, skipping read-only fields.
func (m *ItemFormModal) move(delta int) {
	next := m.cursor
	for range fieldCount {
		next = (next + delta + fieldCount) % fieldCount
		if !m.readOnly(next) {
			break
		}
	}
	m.focus(next)
}

func (m *ItemFormModal) lastField() bool {
	return m.cursor == fieldKeterangan
}

// Item returns the record described by the form.
func (m *ItemFormModal) Item() inventory.Item {
	val := func(f int) string { return strings.TrimSpace(m.inputs[f].Value()) }
	it := inventory.Item{
		ID:         val(fieldID),
		Nama:       val(fieldNama),
		Jenis:      m.jenis.Title(),
		Kategori:   val(fieldKategori),
		Part:       val(fieldPart),
		Jumlah:     inventory.ParseJumlah(val(fieldJumlah)),
		Satuan:     val(fieldSatuan),
		Keterangan: val(fieldKeterangan),
	}
	if m.Edit {
		it.ID = m.original.ID
		it.Jenis = m.original.Jenis
	}
	return it
}

// Mutation returns the add or update request for the form's record.
func (m *ItemFormModal) Mutation() remote.Mutation {
	if m.Edit {
		return remote.UpdateItem(m.Item())
	}
	return remote.AddItem(m.Item())
}

func (m *ItemFormModal) submit() tea.Cmd {
	mut := m.Mutation()
	return func() tea.Msg { return DispatchMsg{Mutation: mut} }
}

func (m *ItemFormModal) toggleJenis() {
	if m.jenis == inventory.JenisAlat {
		m.jenis = inventory.JenisMaterial
	} else {
		m.jenis = inventory.JenisAlat
	}
}

func (m *ItemFormModal) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ItemFormModal) Update(msg tea.Msg) (View, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.cursor == fieldJenis {
			return m, nil
		}
		var cmd tea.Cmd
		m.inputs[m.cursor], cmd = m.inputs[m.cursor].Update(msg)
		return m, cmd
	}

	switch k.String() {
	case "esc":
		return m, func() tea.Msg { return DismissModalMsg{} }
	case "ctrl+s":
		return m, m.submit()
	case "tab", "down":
		m.move(1)
		return m, nil
	case "shift+tab", "up":
		m.move(-1)
		return m, nil
	case "enter":
		if m.lastField() {
			return m, m.submit()
		}
		m.move(1)
		return m, nil
	}

	if m.cursor == fieldJenis {
		switch k.String() {
		case " ", "left", "right", "h", "l":
			if !m.readOnly(fieldJenis) {
				m.toggleJenis()
			}
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.cursor], cmd = m.inputs[m.cursor].Update(msg)
	return m, cmd
}

func (m *ItemFormModal) View() string {
	title := "Tambah Produk"
	if m.Edit {
		title = "Edit Produk"
	}
	var b strings.Builder
	b.WriteString(Styles.Title.Render(title) + "\n\n")
	for f := range fieldCount {
		label := formLabels[f]
		if m.readOnly(f) {
			label += " (readonly)"
		}
		marker := "  "
		labelStyle := Styles.Muted
		if f == m.cursor {
			marker = "> "
			labelStyle = Styles.Selected
		}
		b.WriteString(marker + labelStyle.Render(label) + "\n")

		var value string
		switch {
		case f == fieldJenis:
			value = m.jenisView()
		case m.readOnly(f):
			value = Styles.Normal.Render(m.inputs[f].Value())
		default:
			value = m.inputs[f].View()
		}
		b.WriteString("  " + value + "\n")
	}
	save := "Simpan"
	if m.Edit {
		save = "Simpan Perubahan"
	}
	b.WriteString("\n" + Styles.Hint.Render("Tab: pindah  Spasi: ganti Jenis  Ctrl+S: "+save+"  Esc: batal"))
	return Styles.Box.Render(b.String())
}

func (m *ItemFormModal) jenisView() string {
	if m.readOnly(fieldJenis) {
		return Styles.Normal.Render(m.original.Jenis)
	}
	parts := make([]string, 0, len(inventory.Jenises))
	for _, j := range inventory.Jenises {
		if j == m.jenis {
			parts = append(parts, Styles.Selected.Render("["+j.Title()+"]"))
		} else {
			parts = append(parts, Styles.Muted.Render(" "+j.Title()+" "))
		}
	}
	return strings.Join(parts, " ")
}
