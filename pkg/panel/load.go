package panel

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dnaMatch/pkg/matcher"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

// Load reads a panel by file extension: .xlsx, .csv, or .tsv/.txt.
func Load(path string) ([]matcher.Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return LoadXlsx(path, "")
	case ".csv":
		return LoadDelimited(path, ',')
	case ".tsv", ".txt":
		return LoadDelimited(path, '\t')
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// LoadSheet is Load with an explicit sheet for workbooks.
func LoadSheet(path, sheet string) ([]matcher.Record, error) {
	if sheet != "" && strings.ToLower(filepath.Ext(path)) == ".xlsx" {
		return LoadXlsx(path, sheet)
	}
	return Load(path)
}

// LoadXlsx reads sheet of an xlsx workbook; empty sheet means the first one.
func LoadXlsx(path, sheet string) ([]matcher.Record, error) {
	xlsx, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open panel %s: %w", path, err)
	}
	defer xlsx.Close()

	records, err := readSheet(xlsx, sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Info("Load panel", "path", path, "sheet", sheet, "records", len(records))
	return records, nil
}

// ReadXlsx is LoadXlsx for an uploaded workbook.
func ReadXlsx(r io.Reader, sheet string) ([]matcher.Record, error) {
	xlsx, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open panel: %w", err)
	}
	defer xlsx.Close()

	return readSheet(xlsx, sheet)
}

func readSheet(xlsx *excelize.File, sheet string) ([]matcher.Record, error) {
	if sheet == "" {
		sheets := xlsx.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrMissingColumn
		}
		sheet = sheets[0]
	}
	rows, err := xlsx.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", sheet, err)
	}
	return GetRows2Records(rows)
}

// GetRows2Records maps rows with a header line to records.
func GetRows2Records(rows [][]string) ([]matcher.Record, error) {
	if len(rows) == 0 {
		return nil, ErrMissingColumn
	}
	var nameIdx, seqIdx = -1, -1
	for i, title := range rows[0] {
		switch {
		case title == NameColumn && nameIdx < 0:
			nameIdx = i
		case title == SequenceColumn && seqIdx < 0:
			seqIdx = i
		}
	}
	if nameIdx < 0 || seqIdx < 0 {
		return nil, fmt.Errorf("header %v: %w", rows[0], ErrMissingColumn)
	}

	var records = make([]matcher.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, matcher.Record{
			Name:     cell(row, nameIdx),
			Sequence: strings.TrimSpace(cell(row, seqIdx)),
		})
	}
	return records, nil
}

// cell pads short rows: GetRows trims trailing empty cells
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// LoadDelimited reads a CSV or TSV panel with a Name/Sequence header.
func LoadDelimited(path string, comma rune) ([]matcher.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open panel %s: %w", path, err)
	}
	defer file.Close()

	records, err := ReadDelimited(file, comma)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Info("Load panel", "path", path, "records", len(records))
	return records, nil
}

// ReadDelimited is LoadDelimited for an open reader.
func ReadDelimited(in io.Reader, comma rune) ([]matcher.Record, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = comma
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if _, err := GetRows2Records(rows); err != nil {
		return nil, err
	}
	rows[0] = dedupHeader(rows[0])

	var records []*matcher.Record
	if err := gocsv.UnmarshalCSV(&rowsReader{rows: rows}, &records); err != nil {
		return nil, err
	}
	var out = make([]matcher.Record, 0, len(records))
	for _, record := range records {
		record.Sequence = strings.TrimSpace(record.Sequence)
		out = append(out, *record)
	}
	return out, nil
}

var utf8BOM = []byte("\ufeff")

// dedupHeader renames repeated titles to "title.1", "title.2", ... so the
// first column of each name is the one gocsv binds.
func dedupHeader(header []string) []string {
	var (
		seen   = make(map[string]int)
		titles = make([]string, len(header))
	)
	for i, title := range header {
		if n, ok := seen[title]; ok {
			titles[i] = fmt.Sprintf("%s.%d", title, n)
		} else {
			titles[i] = title
		}
		seen[title]++
	}
	return titles
}

// rowsReader feeds already parsed rows to gocsv.
type rowsReader struct {
	rows [][]string
	next int
}

func (r *rowsReader) Read() ([]string, error) {
	if r.next >= len(r.rows) {
		return nil, io.EOF
	}
	r.next++
	return r.rows[r.next-1], nil
}

func (r *rowsReader) ReadAll() ([][]string, error) {
	rows := r.rows[r.next:]
	r.next = len(r.rows)
	return rows, nil
}
