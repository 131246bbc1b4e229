// Package colkey maps display column headers to the storage keys used inside
// dynamic tables.
//
// Sanitize must stay byte for byte identical to the sanitize_column_key SQL
// function installed by the migrations, because create_dynamic_table names
// its columns with it. Both are checked against testdata/column_keys.json.
package colkey

import "strings"

const (
	// MaxLen is the Postgres identifier length limit.
	MaxLen = 63
	// Fallback replaces headers that sanitize to nothing.
	Fallback = "col"
)

// Sanitize returns the storage key for header. It lowercases ASCII letters,
// collapses every run of other characters into one underscore, trims
// underscores at both ends and truncates the result to MaxLen bytes.
func Sanitize(header string) string {
	header = strings.TrimSpace(header)

	var b strings.Builder
	b.Grow(len(header))
	pending := false
	for i := 0; i < len(header); i++ {
		c := header[i]
		switch {
		case c >= 'A' && c <= 'Z':
			c += 'a' - 'A'
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		default:
			pending = true
			continue
		}
		if pending && b.Len() > 0 {
			b.WriteByte('_')
		}
		pending = false
		b.WriteByte(c)
	}

	key := b.String()
	if len(key) > MaxLen {
		key = strings.TrimRight(key[:MaxLen], "_")
	}
	if key == "" {
		return Fallback
	}
	return key
}
