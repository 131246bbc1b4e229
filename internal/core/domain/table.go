package domain

import "mesa-board/internal/colkey"

// Reserved columns of every dynamic table. Sanitized keys never start with an
// underscore, so these cannot collide with user columns.
const (
	RowIDColumn     = "_row_id"
	CreatedAtColumn = "_created_at"
)

// TableKind tells which catalog entry owns a dynamic table.
type TableKind string

const (
	TableKindCampaign TableKind = "campaign"
	TableKindSource   TableKind = "source"
)

// TableRef is a resolved handle to a dynamic table. Table names are only
// accepted from the catalog, never straight from a request.
type TableRef struct {
	Name    string
	Kind    TableKind
	OwnerID int64
	Headers []string
}

// Column pairs a display header with the storage key its values live under.
type Column struct {
	Header string `json:"header"`
	Key    string `json:"key"`
}

// Columns maps the display headers of the table to storage keys. Two headers
// that sanitize to the same key share the same storage column.
func (t TableRef) Columns() []Column {
	cols := make([]Column, 0, len(t.Headers))
	for _, h := range t.Headers {
		cols = append(cols, Column{Header: h, Key: colkey.Sanitize(h)})
	}
	return cols
}

// Row is one stored row keyed by sanitized column key.
type Row map[string]any

// Page is a slice of a dynamic table together with the full row count of the
// table at read time.
type Page struct {
	Rows  []Row
	Total int64
}
