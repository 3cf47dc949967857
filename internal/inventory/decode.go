package inventory

import "gudang/internal/jsonutil"

// Field names used by the remote store, which are the spreadsheet headers.
const (
	FieldID         = "ID"
	FieldNama       = "Nama"
	FieldJenis      = "Jenis"
	FieldKategori   = "Kategori"
	FieldPart       = "Part"
	FieldJumlah     = "Jumlah"
	FieldSatuan     = "Satuan"
	FieldKeterangan = "Keterangan"
)

// DecodeItems parses the remote list response. A body that is valid JSON
// but not an array yields an empty catalog; malformed JSON is an error.
func DecodeItems(data []byte) ([]Item, error) {
	var raw interface{}
	if err := jsonutil.UnmarshalNumbers(data, &raw, "decode items"); err != nil {
		return nil, err
	}
	rows := jsonutil.ObjectsOf(raw)
	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, ItemFromRow(row))
	}
	return items, nil
}

// ItemFromRow builds an Item from one decoded spreadsheet row.
func ItemFromRow(row map[string]interface{}) Item {
	return Item{
		ID:         jsonutil.Cell(row, FieldID),
		Nama:       jsonutil.Cell(row, FieldNama),
		Jenis:      jsonutil.Cell(row, FieldJenis),
		Kategori:   jsonutil.Cell(row, FieldKategori),
		Part:       jsonutil.Cell(row, FieldPart),
		Jumlah:     JumlahFromAny(row[FieldJumlah]),
		Satuan:     jsonutil.Cell(row, FieldSatuan),
		Keterangan: jsonutil.Cell(row, FieldKeterangan),
	}
}
