package features

import "math"

// Metadata columns carried alongside feature values. These never enter the
// feature matrix.
const (
	ColumnFilePath      = "file_path"
	ColumnFileName      = "file_name"
	ColumnFileExtension = "file_extension"
	ColumnFileSizeMB    = "file_size_mb"
	ColumnGenre         = "genre"
	ColumnMood          = "mood"
)

var metadataColumns = map[string]bool{
	ColumnFilePath:      true,
	ColumnFileName:      true,
	ColumnFileExtension: true,
	ColumnFileSizeMB:    true,
	ColumnGenre:         true,
	ColumnMood:          true,
}

// TraitColumns names the feature columns used for mood classification.
// Traits are resolved by name once at load time, so the classifier never
// depends on column positions.
type TraitColumns struct {
	Energy  string `json:"energy"`
	Valence string `json:"valence"`
	Tempo   string `json:"tempo"`
}

// DefaultTraitColumns returns the canonical column names emitted by the
// feature extractor.
func DefaultTraitColumns() TraitColumns {
	return TraitColumns{
		Energy:  "energy",
		Valence: "valence",
		Tempo:   "tempo",
	}
}

// Traits holds the named feature values the mood classifier reads.
// A missing trait column yields NaN for that trait.
type Traits struct {
	Energy  float64
	Valence float64
	Tempo   float64
}

// Valid reports whether the traits needed for numeric mood classification
// are present.
func (t Traits) Valid() bool {
	return !math.IsNaN(t.Energy) && !math.IsNaN(t.Valence)
}

// Record is one song row of the feature table.
type Record struct {
	FilePath string
	FileName string
	Genre    string
	Mood     string

	// Raw feature values in Table.FeatureColumns() order.
	Features []float64

	traits Traits
}

// Traits returns the named trait values resolved at load time.
func (r *Record) Traits() Traits {
	return r.traits
}

// Table is an immutable, ordered collection of song records plus the
// standardized feature matrix derived from them. Row i of the matrix always
// corresponds to record i; neither is ever re-sorted.
type Table struct {
	path        string
	featureCols []string
	records     []Record
	vectors     [][]float64
}

// Len returns the number of song records.
func (t *Table) Len() int {
	return len(t.records)
}

// Record returns the record at row i.
func (t *Table) Record(i int) *Record {
	return &t.records[i]
}

// Records returns all records in row order.
func (t *Table) Records() []Record {
	return t.records
}

// FeatureColumns returns the names of the numeric feature columns, in
// header order.
func (t *Table) FeatureColumns() []string {
	return t.featureCols
}

// Vectors returns the column-standardized feature matrix. The matrix is
// computed once at load with the table's own statistics and shared by every
// similarity query; callers must treat it as read-only.
func (t *Table) Vectors() [][]float64 {
	return t.vectors
}

// Path returns the file the table was loaded from.
func (t *Table) Path() string {
	return t.path
}
