package importer

import (
	"fmt"
	"io"

	"github.com/ritacosta/belle/internal/expense"
	"github.com/ritacosta/belle/internal/importer/sheet"
)

// Source identifies where an expense-history file came from.
type Source string

// SourceSheet is a CSV export of the clinic's old bookkeeping spreadsheet.
const SourceSheet Source = "sheet"

type Parser interface {
	Parse(r io.Reader) ([]expense.CreateParams, error)
}

// Service maps sources to their parsers. Only the spreadsheet export
// exists today.
type Service struct {
	parsers map[Source]Parser
}

func NewService() *Service {
	return &Service{
		parsers: map[Source]Parser{
			SourceSheet: sheet.NewParser(),
		},
	}
}

func (s *Service) Import(source Source, r io.Reader) ([]expense.CreateParams, error) {
	parser, ok := s.parsers[source]
	if !ok {
		return nil, fmt.Errorf("unknown source: %s", source)
	}

	return parser.Parse(r)
}
