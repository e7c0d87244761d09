// internal/output/rows.go
package output

// Row is one per-sequence result from the symbol-level commands
// (complement, revcomp, validate).
type Row struct {
	ID         string `json:"id"`
	Input      string `json:"input"`
	Result     string `json:"result,omitempty"`     // input symbols in possible-bases form
	Complement string `json:"complement,omitempty"` // complement in possible-bases form
	Output     string `json:"output,omitempty"`     // derived sequence, one-letter codes
}

// StatsRow is one per-sequence result from the stats command.
type StatsRow struct {
	ID          string  `json:"id"`
	Length      int     `json:"length"`
	GCContent   float64 `json:"gc_content"`
	Palindromic bool    `json:"palindromic"`
	MaxRun      int     `json:"max_run"`
}
