package treatment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ritacosta/belle/internal/treatment"
)

type treatmentResponse struct {
	ID            uuid.UUID               `json:"id"`
	PatientName   string                  `json:"patient_name"`
	TreatmentName string                  `json:"treatment_name"`
	Date          time.Time               `json:"date"`
	PricePaid     decimal.Decimal         `json:"price_paid"`
	AmountPaid    decimal.Decimal         `json:"amount_paid"`
	PaymentStatus treatment.PaymentStatus `json:"payment_status"`
	ProductCost   decimal.Decimal         `json:"product_cost"`
	Outstanding   decimal.Decimal         `json:"outstanding"`
	Notes         string                  `json:"notes,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     *time.Time              `json:"updated_at,omitempty"`
}

func toResponse(t *treatment.Treatment) treatmentResponse {
	return treatmentResponse{
		ID:            t.ID,
		PatientName:   t.PatientName,
		TreatmentName: t.TreatmentName,
		Date:          t.Date,
		PricePaid:     t.PricePaid,
		AmountPaid:    t.AmountPaid,
		PaymentStatus: t.PaymentStatus,
		ProductCost:   t.ProductCost,
		Outstanding:   t.Outstanding(),
		Notes:         t.Notes,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func toResponseList(treatments []*treatment.Treatment) []treatmentResponse {
	resp := make([]treatmentResponse, len(treatments))
	for i, t := range treatments {
		resp[i] = toResponse(t)
	}

	return resp
}
