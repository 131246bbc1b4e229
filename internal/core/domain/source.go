package domain

import "time"

// Source is an imported data source. A source either points at a dynamic
// table created from a CSV upload, or at an external entity set identified by
// EntitySet and EntityType. Sources are read-only after creation.
type Source struct {
	ID         int64
	Name       string
	TableName  *string
	EntitySet  *string
	EntityType *string
	Headers    []string
	CreatedAt  time.Time
}

// Table returns the dynamic table handle of a CSV-origin source. The second
// return value is false for sources backed by an external entity reference.
func (s Source) Table() (TableRef, bool) {
	if s.TableName == nil || *s.TableName == "" {
		return TableRef{}, false
	}
	return TableRef{
		Name:    *s.TableName,
		Kind:    TableKindSource,
		OwnerID: s.ID,
		Headers: s.Headers,
	}, true
}
