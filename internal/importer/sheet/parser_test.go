package sheet_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/ritacosta/belle/internal/expense"
	"github.com/ritacosta/belle/internal/importer/sheet"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParser_Parse(t *testing.T) {
	type testCase struct {
		name    string
		csv     string
		wantLen int
		verify  func(t *testing.T, params []expense.CreateParams)
		wantErr bool
	}

	tests := []testCase{
		{
			name: "LedgerExport",
			csv: `Date,Category,Amount,Notes
15/06/2024,Supplies,£45.50,Gloves and wipes
01/06/2024,Rent,"£1,200.00",
`,
			wantLen: 2,
			verify: func(t *testing.T, params []expense.CreateParams) {
				assert.Equal(t, date(2024, time.June, 15), params[0].Date)
				assert.Equal(t, "Supplies", params[0].Category)
				assert.Equal(t, "45.5", params[0].Amount.String())
				assert.Equal(t, "Gloves and wipes", params[0].Notes)

				assert.Equal(t, "1200", params[1].Amount.String())
			},
		},
		{
			name: "QuarterlyExport",
			csv: `Expense Type,Expense Date,Cost,Description
Insurance,2024-04-01,320.00,Annual premium Q2
Utilities,05 Apr 2024,89.90,Electricity
`,
			wantLen: 2,
			verify: func(t *testing.T, params []expense.CreateParams) {
				assert.Equal(t, "Insurance", params[0].Category)
				assert.Equal(t, date(2024, time.April, 1), params[0].Date)
				assert.Equal(t, date(2024, time.April, 5), params[1].Date)
			},
		},
		{
			name: "PreambleRowsAboveHeader",
			csv: `Clinic expenses,,
Exported 2024-07-01,,
Date,Category,Amount,Notes
15/06/2024,Supplies,45.50,
`,
			wantLen: 1,
		},
		{
			name: "FooterAndBlankRowsSkipped",
			csv: `Date,Category,Amount,Notes
15/06/2024,Supplies,45.50,
,,,
Total,,1245.50,
`,
			wantLen: 1,
		},
		{
			name: "ZeroAmountRowsSkipped",
			csv: `Date,Category,Amount,Notes
15/06/2024,Supplies,0.00,
16/06/2024,Supplies,12.00,
`,
			wantLen: 1,
			verify: func(t *testing.T, params []expense.CreateParams) {
				assert.Equal(t, "12", params[0].Amount.String())
			},
		},
		{
			name: "ParenthesizedAmountImportedAsPositive",
			csv: `Date,Category,Amount,Notes
15/06/2024,Refunds,(45.00),
`,
			wantLen: 1,
			verify: func(t *testing.T, params []expense.CreateParams) {
				assert.Equal(t, "45", params[0].Amount.String())
			},
		},
		{
			name: "MissingCategoryFallsBack",
			csv: `Date,Category,Amount,Notes
15/06/2024,,45.50,
`,
			wantLen: 1,
			verify: func(t *testing.T, params []expense.CreateParams) {
				assert.Equal(t, "Uncategorised", params[0].Category)
			},
		},
		{
			name:    "UnknownFormat",
			csv:     "Foo,Bar\n1,2\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := sheet.NewParser()
			params, err := p.Parse(strings.NewReader(tt.csv))

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.Len(t, params, tt.wantLen)

			if tt.verify != nil {
				tt.verify(t, params)
			}
		})
	}
}

func TestParser_ParseLatin1(t *testing.T) {
	csv := "Date,Category,Amount,Notes\n15/06/2024,Manutenção,30.00,Reparação da cadeira\n"

	encoded, err := charmap.Windows1252.NewEncoder().Bytes([]byte(csv))
	require.NoError(t, err)

	p := sheet.NewParser()
	params, err := p.Parse(bytes.NewReader(encoded))

	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, "Manutenção", params[0].Category)
	assert.Equal(t, "Reparação da cadeira", params[0].Notes)
}
