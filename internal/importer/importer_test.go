package importer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritacosta/belle/internal/importer"
)

func TestService_Import(t *testing.T) {
	svc := importer.NewService()

	t.Run("SheetSourceRoutesToParser", func(t *testing.T) {
		csv := "Date,Category,Amount,Notes\n15/03/2024,Rent,1200.00,March\n"

		params, err := svc.Import(importer.SourceSheet, strings.NewReader(csv))

		require.NoError(t, err)
		require.Len(t, params, 1)
		assert.Equal(t, "Rent", params[0].Category)
	})

	t.Run("UnknownSource", func(t *testing.T) {
		_, err := svc.Import(importer.Source("bank"), strings.NewReader(""))

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown source")
	})
}
