package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ritacosta/belle/internal/catalog"
	"github.com/ritacosta/belle/internal/report"
	"github.com/ritacosta/belle/internal/timeframe"
	"github.com/ritacosta/belle/internal/treatment"
)

// The category breakdown resolves names through the catalog, which
// prefers active entries when names collide, and memoizes per distinct
// name rather than querying once per treatment.
func TestService_CategoryBreakdown_ResolvesThroughCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	june := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	win := timeframe.Resolve(timeframe.PresetThisMonth, nil, nil, june)

	treatments := []*treatment.Treatment{
		{TreatmentName: "Botox", Date: june, PricePaid: decimal.NewFromInt(200), PaymentStatus: treatment.StatusPaid},
		{TreatmentName: "botox", Date: june, PricePaid: decimal.NewFromInt(180), PaymentStatus: treatment.StatusPaid},
		{TreatmentName: "Peeling", Date: june, PricePaid: decimal.NewFromInt(90), PaymentStatus: treatment.StatusPaid},
	}

	treatmentRepo := treatment.NewMockRepository(ctrl)
	treatmentRepo.EXPECT().
		ListTreatments(gomock.Any(), treatment.ListFilter{}).
		Return(treatments, nil)

	// One lookup per distinct name, case-insensitively, even though
	// "Botox" appears twice.
	catalogRepo := catalog.NewMockRepository(ctrl)
	catalogRepo.EXPECT().FindCategory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, name string) (string, error) {
			if name == "Botox" || name == "botox" {
				return "Injectables", nil
			}

			return "", nil
		}).
		Times(2)

	svc := report.NewService(
		treatment.NewService(treatmentRepo),
		nil,
		catalog.NewService(catalogRepo),
	)

	entries, err := svc.CategoryBreakdown(context.Background(), win)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Injectables", entries[0].Key)
	assert.Equal(t, "380", entries[0].Revenue.String())
	assert.Equal(t, catalog.CategoryOther, entries[1].Key)
	assert.Equal(t, "90", entries[1].Revenue.String())
}
