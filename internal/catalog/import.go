package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ImportConfig describes where each field lives in a spreadsheet word list.
type ImportConfig struct {
	Path           string
	SheetName      string // Defaults to the first sheet.
	StartRow       int    // 1-based. Rows before it are skipped.
	RussianColumn  string
	FrenchColumn   string
	PhoneticColumn string
	CategoryColumn string // Optional. Empty means every row uses Category.
	ExampleColumn  string // Optional.
	Category       Category
}

// DefaultImportConfig returns the column layout A..E with a header row.
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		StartRow:       2,
		RussianColumn:  "A",
		FrenchColumn:   "B",
		PhoneticColumn: "C",
		CategoryColumn: "D",
		ExampleColumn:  "E",
		Category:       CategoryNoun,
	}
}

// ImportResult summarizes a spreadsheet import.
type ImportResult struct {
	Words   []Word
	Skipped int
	Errors  []string
}

// ImportFile reads an .xlsx or .csv word list. Rows that cannot be mapped to
// a word are reported in the result and skipped.
func ImportFile(cfg ImportConfig) (*ImportResult, error) {
	rows, err := readRows(cfg)
	if err != nil {
		return nil, err
	}

	cols, err := resolveColumns(cfg)
	if err != nil {
		return nil, err
	}

	res := &ImportResult{}
	counters := make(map[Category]int)
	for i, row := range rows {
		line := i + 1
		if line < cfg.StartRow {
			continue
		}
		if isBlank(row) {
			res.Skipped++
			continue
		}

		w, err := rowToWord(row, cols, cfg.Category)
		if err != nil {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: %v", line, err))
			continue
		}
		counters[w.Category]++
		w.ID = fmt.Sprintf("%s%02d", idPrefix(w.Category), counters[w.Category])
		res.Words = append(res.Words, w)
	}

	return res, nil
}

func readRows(cfg ImportConfig) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(cfg.Path), ".csv") {
		return readCSV(cfg.Path)
	}

	f, err := excelize.OpenFile(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := cfg.SheetName
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

// columnIndex holds zero-based column positions; -1 means absent.
type columnIndex struct {
	russian, french, phonetic, category, example int
}

func resolveColumns(cfg ImportConfig) (columnIndex, error) {
	var idx columnIndex
	fields := []struct {
		name     string
		dst      *int
		required bool
	}{
		{cfg.RussianColumn, &idx.russian, true},
		{cfg.FrenchColumn, &idx.french, true},
		{cfg.PhoneticColumn, &idx.phonetic, false},
		{cfg.CategoryColumn, &idx.category, false},
		{cfg.ExampleColumn, &idx.example, false},
	}
	for _, f := range fields {
		if f.name == "" {
			if f.required {
				return idx, fmt.Errorf("russian and french columns are required")
			}
			*f.dst = -1
			continue
		}
		n, err := excelize.ColumnNameToNumber(f.name)
		if err != nil {
			return idx, fmt.Errorf("column %q: %w", f.name, err)
		}
		*f.dst = n - 1
	}
	return idx, nil
}

func rowToWord(row []string, cols columnIndex, fallback Category) (Word, error) {
	w := Word{
		Russian:  cell(row, cols.russian),
		French:   cell(row, cols.french),
		Phonetic: cell(row, cols.phonetic),
		Example:  cell(row, cols.example),
		Category: fallback,
	}
	if w.Russian == "" || w.French == "" {
		return Word{}, fmt.Errorf("missing russian or french text")
	}
	if raw := cell(row, cols.category); raw != "" {
		cat, err := ParseCategory(raw)
		if err != nil {
			return Word{}, err
		}
		if cat != CategoryAll {
			w.Category = cat
		}
	}
	if !w.Category.Valid() {
		return Word{}, fmt.Errorf("invalid category %q", w.Category)
	}
	return w, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func idPrefix(c Category) string {
	switch c {
	case CategoryVerb:
		return "v"
	case CategoryNumber:
		return "num"
	default:
		return "n"
	}
}
