// internal/output/json.go
package output

import (
	"encoding/json"
	"io"
)

// WriteJSON writes rows as a single indented JSON array.
func WriteJSON[T any](w io.Writer, rows []T) error {
	if rows == nil {
		rows = []T{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
