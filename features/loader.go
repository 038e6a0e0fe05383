package features

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/nkapur/auralist/logging"
)

// Load reads a delimited feature table from path. It fails with
// *NotFoundError when the file does not exist, *EmptyDataError when it has no
// song rows, and *SchemaError when the file_path column is absent. All other
// read problems surface as wrapped errors.
func Load(path string, logger logging.Logger) (*Table, error) {
	return LoadWithTraits(path, DefaultTraitColumns(), logger)
}

// LoadWithTraits is Load with explicit trait column names, for feature files
// whose extractor used a different naming scheme.
func LoadWithTraits(path string, traitCols TraitColumns, logger logging.Logger) (*Table, error) {
	logger = logging.Or(logger).WithFields(logging.Fields{
		"component": "feature_loader",
		"path":      path,
	})

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("open features file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &EmptyDataError{Path: path}
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[name] = i
	}
	if _, ok := colIndex[ColumnFilePath]; !ok {
		return nil, &SchemaError{Path: path, Column: ColumnFilePath}
	}

	var rows [][]string
	line := 1
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("read line %d: %w", line+1, err)
		}
		line++
		rows = append(rows, record)
	}

	if len(rows) == 0 {
		return nil, &EmptyDataError{Path: path}
	}

	featureCols := detectFeatureColumns(header, colIndex, rows)

	table := &Table{
		path:        path,
		featureCols: featureCols,
		records:     make([]Record, 0, len(rows)),
	}

	for _, row := range rows {
		rec := Record{
			FilePath: cell(row, colIndex, ColumnFilePath),
			FileName: cell(row, colIndex, ColumnFileName),
			Genre:    cell(row, colIndex, ColumnGenre),
			Mood:     cell(row, colIndex, ColumnMood),
			Features: make([]float64, len(featureCols)),
		}
		for j, name := range featureCols {
			rec.Features[j] = parseCell(cell(row, colIndex, name))
		}
		rec.traits = Traits{
			Energy:  traitValue(row, colIndex, featureCols, traitCols.Energy),
			Valence: traitValue(row, colIndex, featureCols, traitCols.Valence),
			Tempo:   traitValue(row, colIndex, featureCols, traitCols.Tempo),
		}
		table.records = append(table.records, rec)
	}

	table.vectors = standardize(table)

	logger.Info("Loaded song features", logging.Fields{
		"songs":           table.Len(),
		"feature_columns": len(featureCols),
	})

	return table, nil
}

// detectFeatureColumns picks the numeric columns: everything outside the
// metadata set whose non-empty cells all parse as floats.
func detectFeatureColumns(header []string, colIndex map[string]int, rows [][]string) []string {
	var featureCols []string
	for _, name := range header {
		if metadataColumns[name] {
			continue
		}
		idx := colIndex[name]
		numeric := true
		for _, row := range rows {
			if idx >= len(row) || row[idx] == "" {
				continue
			}
			if _, err := strconv.ParseFloat(row[idx], 64); err != nil {
				numeric = false
				break
			}
		}
		if numeric {
			featureCols = append(featureCols, name)
		}
	}
	return featureCols
}

func cell(row []string, colIndex map[string]int, name string) string {
	idx, ok := colIndex[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func parseCell(raw string) float64 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

func traitValue(row []string, colIndex map[string]int, featureCols []string, name string) float64 {
	if name == "" {
		return math.NaN()
	}
	found := false
	for _, col := range featureCols {
		if col == name {
			found = true
			break
		}
	}
	if !found {
		return math.NaN()
	}
	return parseCell(cell(row, colIndex, name))
}
