package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/ritacosta/belle/internal/catalog"
)

func TestService_ResolveCategory(t *testing.T) {
	type testCase struct {
		name          string
		treatmentName string
		setupMock     func(m *catalog.MockRepository)
		want          string
	}

	tests := []testCase{
		{
			name:          "KnownTreatment",
			treatmentName: "Botox",
			setupMock: func(m *catalog.MockRepository) {
				m.EXPECT().FindCategory(gomock.Any(), "Botox").Return("Injectables", nil)
			},
			want: "Injectables",
		},
		{
			name:          "UnknownTreatmentFallsBack",
			treatmentName: "Mystery Procedure",
			setupMock: func(m *catalog.MockRepository) {
				m.EXPECT().FindCategory(gomock.Any(), "Mystery Procedure").Return("", nil)
			},
			want: catalog.CategoryOther,
		},
		{
			name:          "EmptyNameFallsBackWithoutLookup",
			treatmentName: "",
			setupMock:     func(m *catalog.MockRepository) {},
			want:          catalog.CategoryOther,
		},
		{
			name:          "LookupErrorFallsBack",
			treatmentName: "Botox",
			setupMock: func(m *catalog.MockRepository) {
				m.EXPECT().FindCategory(gomock.Any(), "Botox").Return("", errors.New("db error"))
			},
			want: catalog.CategoryOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := catalog.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := catalog.NewService(repo)
			assert.Equal(t, tt.want, svc.ResolveCategory(context.Background(), tt.treatmentName))
		})
	}
}
