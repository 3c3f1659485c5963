package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/ritacosta/belle/internal/encoding"
	"github.com/ritacosta/belle/internal/expense"
)

// Parser reads CSV exports of the clinic's old expense spreadsheets and
// produces expense params. The export format is auto-detected by matching
// column headers against known profiles.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]expense.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, colMap, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching spreadsheet format found: expected ledger or quarterly columns")
	}

	return parseRows(profile, colMap, rows[headerIdx+1:])
}

// colIndex maps column names to their index in the header row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
// Spreadsheet exports often carry title or summary rows above the header,
// so every row is a candidate.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts expenses from the data rows using the matched
// profile. Rows without a parseable date (footers, subtotals, blank
// separators) are skipped rather than treated as errors.
func parseRows(p *Profile, cols colIndex, rows [][]string) ([]expense.CreateParams, error) {
	dateIdx := cols[p.DateCol]
	categoryIdx := cols[p.CategoryCol]
	amountIdx := cols[p.AmountCol]

	notesIdx := -1
	if p.NotesCol != "" {
		if i, ok := cols[p.NotesCol]; ok {
			notesIdx = i
		}
	}

	var params []expense.CreateParams

	for _, row := range rows {
		date, ok := parseDate(row, dateIdx, p.DateFormats)
		if !ok {
			continue
		}

		category := cellValue(row, categoryIdx)
		if category == "" {
			category = "Uncategorised"
		}

		amount, err := parseAmount(cellValue(row, amountIdx))
		if err != nil || amount.IsZero() {
			continue
		}

		params = append(params, expense.CreateParams{
			Date:     date,
			Category: category,
			Amount:   amount.Abs(),
			Notes:    cellValue(row, notesIdx),
		})
	}

	return params, nil
}

func parseDate(row []string, idx int, formats []string) (time.Time, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return time.Time{}, false
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
