// pkg/api/report_v1.go
package api

// ReportV1 is the stable JSON/YAML schema for a run's diagnostic report.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	CTFile       string `json:"ct_file" yaml:"ct_file"`
	FastaFile    string `json:"fasta_file" yaml:"fasta_file"`
	SequenceID   string `json:"sequence_id" yaml:"sequence_id"`
	Format       string `json:"format" yaml:"format"`
	Start        int    `json:"start" yaml:"start"`
	End          int    `json:"end" yaml:"end"`
	SeedLength   int    `json:"seed_length" yaml:"seed_length"`
	FullLength   int    `json:"full_length" yaml:"full_length"`
	Unpaired     int    `json:"unpaired" yaml:"unpaired"`
	PairsRaw     int    `json:"pairs_raw" yaml:"pairs_raw"`
	PairsKept    int    `json:"pairs_kept" yaml:"pairs_kept"`
	PairsDropped int    `json:"pairs_dropped" yaml:"pairs_dropped"`
	Duplicates   int    `json:"pairs_duplicate,omitempty" yaml:"pairs_duplicate,omitempty"`

	Rejected []RejectV1 `json:"rejected,omitempty" yaml:"rejected,omitempty"`

	SeedChecked bool   `json:"seed_checked" yaml:"seed_checked"`
	SeedMatch   bool   `json:"seed_match" yaml:"seed_match"`
	SeedFull    string `json:"seed_full,omitempty" yaml:"seed_full,omitempty"`
}

// RejectV1 is one dropped pair in seed-local coordinates.
type RejectV1 struct {
	X      int    `json:"x" yaml:"x"`
	Y      int    `json:"y" yaml:"y"`
	Pair   string `json:"pair,omitempty" yaml:"pair,omitempty"` // e.g. "AA"
	Reason string `json:"reason" yaml:"reason"`
}
