package treatment

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ritacosta/belle/internal/treatment"
)

type Handler struct {
	svc *treatment.Service
}

func NewHandler(svc *treatment.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
	r.Patch("/{id}/payment", h.recordPayment)
	r.Patch("/{id}", h.update)
}

type createTreatmentRequest struct {
	PatientName   string                  `json:"patient_name"`
	TreatmentName string                  `json:"treatment_name"`
	Date          time.Time               `json:"date"`
	PricePaid     decimal.Decimal         `json:"price_paid"`
	AmountPaid    decimal.Decimal         `json:"amount_paid"`
	PaymentStatus treatment.PaymentStatus `json:"payment_status"`
	ProductCost   decimal.Decimal         `json:"product_cost"`
	Notes         string                  `json:"notes"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTreatmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.Create(r.Context(), treatment.CreateParams{
		PatientName:   req.PatientName,
		TreatmentName: req.TreatmentName,
		Date:          req.Date,
		PricePaid:     req.PricePaid,
		AmountPaid:    req.AmountPaid,
		PaymentStatus: req.PaymentStatus,
		ProductCost:   req.ProductCost,
		Notes:         req.Notes,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := treatment.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(treatment.PaymentStatus(s))
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = new(t)
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = new(t)
		}
	}

	treatments, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(treatments)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, treatment.ErrNotFound) {
			http.Error(w, "treatment not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type updateTreatmentRequest struct {
	PatientName   *string          `json:"patient_name,omitempty"`
	TreatmentName *string          `json:"treatment_name,omitempty"`
	Date          *time.Time       `json:"date,omitempty"`
	PricePaid     *decimal.Decimal `json:"price_paid,omitempty"`
	ProductCost   *decimal.Decimal `json:"product_cost,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateTreatmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, treatment.ErrNotFound) {
			http.Error(w, "treatment not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.PatientName != nil {
		t.PatientName = *req.PatientName
	}

	if req.TreatmentName != nil {
		t.TreatmentName = *req.TreatmentName
	}

	if req.Date != nil {
		t.Date = *req.Date
	}

	if req.PricePaid != nil {
		t.PricePaid = *req.PricePaid
	}

	if req.ProductCost != nil {
		t.ProductCost = *req.ProductCost
	}

	if req.Notes != nil {
		t.Notes = *req.Notes
	}

	if err := h.svc.Update(r.Context(), t); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type recordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *Handler) recordPayment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req recordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.RecordPayment(r.Context(), id, req.Amount)
	if err != nil {
		if errors.Is(err, treatment.ErrNotFound) {
			http.Error(w, "treatment not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
