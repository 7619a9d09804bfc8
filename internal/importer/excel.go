package importer

import (
	"fmt"

	"github.com/urlaubsplaner/urlaubsplaner/internal"
	"github.com/xuri/excelize/v2"
)

// ReadTable opens an Excel workbook and turns its first sheet into a Table.
// The first row is the header; trailing empty cells simply stay absent from
// their rows.
func ReadTable(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, internal.NewValidationError(
			fmt.Sprintf("Datei konnte nicht gelesen werden: %s", path),
			internal.ErrCodeValidationFailed).WithCause(err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, internal.NewValidationError(
			"Die Arbeitsmappe enthält kein Tabellenblatt",
			internal.ErrCodeValidationFailed)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, internal.NewInternalError("read sheet rows", err)
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}

	table := &Table{Columns: rows[0]}
	for _, cells := range rows[1:] {
		row := Row{}
		for i, col := range table.Columns {
			if i < len(cells) && cells[i] != "" {
				row[col] = cells[i]
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
