package remote

import (
	"encoding/json"
	"fmt"

	"gudang/internal/inventory"
)

// Action is the discriminator the remote store dispatches on.
type Action string

const (
	ActionAdd       Action = "add"
	ActionUpdate    Action = "update"
	ActionDelete    Action = "delete"
	ActionImportCSV Action = "import_csv"
	ActionExport    Action = "export"
)

// Mutation is one POST to the remote store: an action plus the record
// fields it carries. Build it with AddItem, UpdateItem, DeleteItem or
// ImportCSV.
type Mutation struct {
	Action Action
	ItemID string // empty for imports
	Fields map[string]interface{}
}

// MarshalJSON flattens the mutation into {"action": ..., <fields>}.
func (m Mutation) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(m.Fields)+1)
	for k, v := range m.Fields {
		out[k] = v
	}
	out["action"] = m.Action
	return json.Marshal(out)
}

func (m Mutation) String() string {
	if m.ItemID == "" {
		return string(m.Action)
	}
	return fmt.Sprintf("%s %s", m.Action, m.ItemID)
}

// recordFields returns every field of it. Jumlah is sent as a JSON number.
func recordFields(it inventory.Item) map[string]interface{} {
	return map[string]interface{}{
		inventory.FieldID:         it.ID,
		inventory.FieldNama:       it.Nama,
		inventory.FieldJenis:      it.Jenis,
		inventory.FieldKategori:   it.Kategori,
		inventory.FieldPart:       it.Part,
		inventory.FieldJumlah:     json.Number(it.Jumlah.String()),
		inventory.FieldSatuan:     it.Satuan,
		inventory.FieldKeterangan: it.Keterangan,
	}
}

// AddItem creates a record. ID uniqueness is enforced by the remote store.
func AddItem(it inventory.Item) Mutation {
	return Mutation{Action: ActionAdd, ItemID: it.ID, Fields: recordFields(it)}
}

// UpdateItem replaces the record matching it.ID with every field of it.
func UpdateItem(it inventory.Item) Mutation {
	return Mutation{Action: ActionUpdate, ItemID: it.ID, Fields: recordFields(it)}
}

// DeleteItem removes the record with the given ID. Nama is sent for the
// remote store's activity log.
func DeleteItem(id, nama string) Mutation {
	return Mutation{
		Action: ActionDelete,
		ItemID: id,
		Fields: map[string]interface{}{
			inventory.FieldID:   id,
			inventory.FieldNama: nama,
		},
	}
}

// ImportCSV forwards csv verbatim for the remote store to parse.
func ImportCSV(fileName, csv string) Mutation {
	return Mutation{
		Action: ActionImportCSV,
		Fields: map[string]interface{}{
			"csv":  csv,
			"Note": "Import file " + fileName,
		},
	}
}
