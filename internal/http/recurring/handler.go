package recurring

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ritacosta/belle/internal/recurring"
)

// Clock lets tests pin "now" for the materialize endpoint.
type Clock func() time.Time

type Handler struct {
	svc *recurring.Service
	now Clock
}

func NewHandler(svc *recurring.Service, now Clock) *Handler {
	if now == nil {
		now = time.Now
	}

	return &Handler{svc: svc, now: now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Patch("/{id}/active", h.setActive)
	r.Delete("/{id}", h.delete)
	r.Post("/materialize", h.materialize)
}

type createRecurringRequest struct {
	Category  string              `json:"category"`
	Amount    decimal.Decimal     `json:"amount"`
	Notes     string              `json:"notes"`
	Frequency recurring.Frequency `json:"frequency"`
}

type recurringResponse struct {
	ID              uuid.UUID           `json:"id"`
	Category        string              `json:"category"`
	Amount          decimal.Decimal     `json:"amount"`
	Notes           string              `json:"notes,omitempty"`
	Frequency       recurring.Frequency `json:"frequency"`
	Active          bool                `json:"active"`
	LastGeneratedAt *time.Time          `json:"last_generated_at,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       *time.Time          `json:"updated_at,omitempty"`
}

func toResponse(r *recurring.RecurringExpense) recurringResponse {
	return recurringResponse{
		ID:              r.ID,
		Category:        r.Category,
		Amount:          r.Amount,
		Notes:           r.Notes,
		Frequency:       r.Frequency,
		Active:          r.Active,
		LastGeneratedAt: r.LastGeneratedAt,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRecurringRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	def, err := h.svc.Create(r.Context(), recurring.CreateParams{
		Category:  req.Category,
		Amount:    req.Amount,
		Notes:     req.Notes,
		Frequency: req.Frequency,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(def)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	definitions, err := h.svc.List(r.Context(), activeOnly)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]recurringResponse, len(definitions))
	for i, def := range definitions {
		resp[i] = toResponse(def)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	def, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, recurring.ErrNotFound) {
			http.Error(w, "recurring expense not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(def)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateRecurringRequest struct {
	Category  *string              `json:"category,omitempty"`
	Amount    *decimal.Decimal     `json:"amount,omitempty"`
	Notes     *string              `json:"notes,omitempty"`
	Frequency *recurring.Frequency `json:"frequency,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateRecurringRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	def, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, recurring.ErrNotFound) {
			http.Error(w, "recurring expense not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Category != nil {
		def.Category = *req.Category
	}

	if req.Amount != nil {
		def.Amount = *req.Amount
	}

	if req.Notes != nil {
		def.Notes = *req.Notes
	}

	if req.Frequency != nil {
		def.Frequency = *req.Frequency
	}

	if err := h.svc.Update(r.Context(), def); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(def)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

func (h *Handler) setActive(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req setActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	def, err := h.svc.SetActive(r.Context(), id, req.Active)
	if err != nil {
		if errors.Is(err, recurring.ErrNotFound) {
			http.Error(w, "recurring expense not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(def)); err != nil {
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

type materializeResponse struct {
	Generated []uuid.UUID `json:"generated"`
	Errors    []string    `json:"errors,omitempty"`
}

// materialize runs the recurring engine once. The SPA calls this on
// dashboard load; a cron hitting the same endpoint works just as well.
func (h *Handler) materialize(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.MaterializeDue(r.Context(), h.now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := materializeResponse{
		Generated: make([]uuid.UUID, len(result.Generated)),
	}

	for i, e := range result.Generated {
		resp.Generated[i] = e.ID
	}

	for _, defErr := range result.Errors {
		resp.Errors = append(resp.Errors, defErr.Error())
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
