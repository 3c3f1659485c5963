package sheet

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount parses a spreadsheet money cell. Handles a leading currency
// symbol and thousands separators: "£1,234.56" -> 1234.56, "(45.00)" -> -45.
func parseAmount(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)

	negative := false
	if strings.HasPrefix(clean, "(") && strings.HasSuffix(clean, ")") {
		negative = true
		clean = clean[1 : len(clean)-1]
	}

	clean = strings.TrimLeft(clean, "£€$ ")
	clean = strings.ReplaceAll(clean, ",", "")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, err
	}

	if negative {
		d = d.Neg()
	}

	return d, nil
}
