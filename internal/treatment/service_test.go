package treatment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ritacosta/belle/internal/treatment"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name       string
		params     treatment.CreateParams
		setupMock  func(m *treatment.MockRepository)
		wantStatus treatment.PaymentStatus
		wantErr    bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: treatment.CreateParams{
				PatientName:   "Ana Silva",
				TreatmentName: "Botox",
				Date:          time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
				PricePaid:     decimal.NewFromInt(250),
				PaymentStatus: treatment.StatusPaid,
			},
			setupMock: func(m *treatment.MockRepository) {
				m.EXPECT().
					CreateTreatment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tr *treatment.Treatment) error {
						tr.ID = uuid.New()
						tr.CreatedAt = time.Now()
						return nil
					})
			},
			wantStatus: treatment.StatusPaid,
		},
		{
			name: "EmptyStatusDefaultsToPending",
			params: treatment.CreateParams{
				PatientName: "Ana Silva",
				PricePaid:   decimal.NewFromInt(100),
			},
			setupMock: func(m *treatment.MockRepository) {
				m.EXPECT().
					CreateTreatment(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantStatus: treatment.StatusPending,
		},
		{
			name:   "RepoError",
			params: treatment.CreateParams{PatientName: "Ana Silva"},
			setupMock: func(m *treatment.MockRepository) {
				m.EXPECT().
					CreateTreatment(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := treatment.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := treatment.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantStatus, got.PaymentStatus)
		})
	}
}

func TestService_RecordPayment(t *testing.T) {
	id := uuid.New()

	existing := func() *treatment.Treatment {
		return &treatment.Treatment{
			ID:            id,
			PricePaid:     decimal.NewFromInt(100),
			AmountPaid:    decimal.NewFromInt(30),
			PaymentStatus: treatment.StatusPartiallyPaid,
		}
	}

	type testCase struct {
		name           string
		amount         decimal.Decimal
		setupMock      func(m *treatment.MockRepository)
		wantStatus     treatment.PaymentStatus
		wantAmountPaid string
		wantErr        bool
	}

	tests := []testCase{
		{
			name:   "PartialPaymentStaysPartial",
			amount: decimal.NewFromInt(20),
			setupMock: func(m *treatment.MockRepository) {
				m.EXPECT().GetTreatment(gomock.Any(), id).Return(existing(), nil)
				m.EXPECT().UpdateTreatment(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus:     treatment.StatusPartiallyPaid,
			wantAmountPaid: "50",
		},
		{
			name:   "PaymentReachingPriceSettles",
			amount: decimal.NewFromInt(70),
			setupMock: func(m *treatment.MockRepository) {
				m.EXPECT().GetTreatment(gomock.Any(), id).Return(existing(), nil)
				m.EXPECT().UpdateTreatment(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus:     treatment.StatusPaid,
			wantAmountPaid: "100",
		},
		{
			name:   "OverpaymentCappedAtPrice",
			amount: decimal.NewFromInt(500),
			setupMock: func(m *treatment.MockRepository) {
				m.EXPECT().GetTreatment(gomock.Any(), id).Return(existing(), nil)
				m.EXPECT().UpdateTreatment(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus:     treatment.StatusPaid,
			wantAmountPaid: "100",
		},
		{
			name:      "NegativeAmountRejected",
			amount:    decimal.NewFromInt(-10),
			setupMock: func(m *treatment.MockRepository) {},
			wantErr:   true,
		},
		{
			name:   "NotFound",
			amount: decimal.NewFromInt(10),
			setupMock: func(m *treatment.MockRepository) {
				m.EXPECT().GetTreatment(gomock.Any(), id).Return(nil, treatment.ErrNotFound)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := treatment.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := treatment.NewService(repo)
			got, err := svc.RecordPayment(context.Background(), id, tt.amount)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantStatus, got.PaymentStatus)
			assert.Equal(t, tt.wantAmountPaid, got.AmountPaid.String())
		})
	}
}
