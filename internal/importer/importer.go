package importer

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/urlaubsplaner/urlaubsplaner/internal"
	"github.com/urlaubsplaner/urlaubsplaner/internal/storage"
	"github.com/urlaubsplaner/urlaubsplaner/pkg/logger"
)

// Column names of the user import contract. The required three abort the
// whole import when absent; the optional ones map to null when missing.
const (
	ColID        = "ID"
	ColFirstName = "Vorname"
	ColLastName  = "Nachname"
	ColEmail     = "Login-E-Mail"
	ColPhone     = "Login-Mobilnummer"
	ColDeptNo    = "Abteilungsnummer"
	ColPosition  = "Position/Stellenbeschreibung"
	ColBirthday  = "Geburtstag"
	ColEntryDate = "Eintrittsdatum"
)

var requiredColumns = []string{ColID, ColFirstName, ColLastName}

// Summary reports one finished import run.
type Summary struct {
	BatchID  string
	Imported int
	Updated  int
}

func (s *Summary) Total() int {
	return s.Imported + s.Updated
}

// Message is the operator-facing result line.
func (s *Summary) Message() string {
	return fmt.Sprintf("%d Benutzer importiert, %d Benutzer aktualisiert", s.Imported, s.Updated)
}

// Importer maps tabular rows to user records and writes them through the
// record store. It reports through the context-carried logger.
type Importer struct {
	store *storage.Store
}

func New(store *storage.Store) *Importer {
	return &Importer{store: store}
}

// ImportUsersFromFile reads an Excel workbook and imports its first sheet.
func (im *Importer) ImportUsersFromFile(ctx context.Context, path string) (*Summary, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, internal.NewValidationError(
			fmt.Sprintf("Datei nicht gefunden: %s", path),
			internal.ErrCodeFileNotFound)
	}

	table, err := ReadTable(path)
	if err != nil {
		return nil, err
	}
	return im.ImportUsers(ctx, table)
}

// ImportUsers runs the per-row insert-or-update policy. Only structural
// problems (a missing required column) abort; a malformed row's available
// fields are imported as-is. Each row counts as imported or updated, never
// as failed.
func (im *Importer) ImportUsers(ctx context.Context, table *Table) (*Summary, error) {
	for _, col := range requiredColumns {
		if !table.HasColumn(col) {
			return nil, internal.MissingColumnError(col)
		}
	}

	summary := &Summary{BatchID: uuid.NewString()}

	for _, row := range table.Rows {
		userID := row.Get(ColID)
		rec := storage.Record{
			"user_id":    userID,
			"first_name": row.Get(ColFirstName),
			"last_name":  row.Get(ColLastName),
			"email":      valueOrNil(row, ColEmail),
			"phone":      valueOrNil(row, ColPhone),
			"department": valueOrNil(row, ColDeptNo),
			"position":   valueOrNil(row, ColPosition),
			"birthday":   dateOrNil(row, ColBirthday),
			"entry_date": dateOrNil(row, ColEntryDate),
			"role":       "user",
		}

		_, exists := im.store.GetUser(storage.UserQuery{UserID: userID})
		if exists {
			if _, err := im.store.UpdateUser(userID, rec); err != nil {
				return nil, internal.NewInternalError("update imported user", err)
			}
			summary.Updated++
		} else {
			if _, err := im.store.AddUser(rec); err != nil {
				return nil, internal.NewInternalError("add imported user", err)
			}
			summary.Imported++
		}
	}

	logger.From(ctx).Info("user import finished",
		"batch_id", summary.BatchID,
		"imported", summary.Imported,
		"updated", summary.Updated)

	return summary, nil
}

// ImportVacationRequestsFromFile is not implemented yet; the result says so
// instead of pretending.
func (im *Importer) ImportVacationRequestsFromFile(ctx context.Context, path string) (*Summary, error) {
	return nil, internal.NewValidationError(
		"Diese Funktion ist noch nicht implementiert",
		internal.ErrCodeNotImplemented)
}

func valueOrNil(row Row, column string) any {
	if !row.Has(column) {
		return nil
	}
	return row.Get(column)
}

func dateOrNil(row Row, column string) any {
	if !row.Has(column) {
		return nil
	}
	return normalizeDate(row.Get(column))
}

// Layouts seen in real import files: ISO, German dotted, and the default
// renderings of Excel date cells.
var dateLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"2006-01-02 15:04:05",
	"01-02-06",
	"1/2/06",
	"01/02/2006",
}

// normalizeDate brings a cell value into YYYY-MM-DD form. Values that match
// no known layout pass through unchanged.
func normalizeDate(value string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return value
}
