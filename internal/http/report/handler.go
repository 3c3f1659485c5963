package report

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/ritacosta/belle/internal/report"
	"github.com/ritacosta/belle/internal/timeframe"
)

// Clock lets tests pin "now" for preset resolution.
type Clock func() time.Time

type Handler struct {
	svc *report.Service
	now Clock
}

func NewHandler(svc *report.Service, now Clock) *Handler {
	if now == nil {
		now = time.Now
	}

	return &Handler{svc: svc, now: now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/summary", h.summary)
	r.Get("/monthly", h.monthly)
	r.Get("/cashflow", h.cashflow)
	r.Get("/categories", h.categories)
	r.Get("/treatments", h.treatments)
}

// window resolves the reporting window from query parameters:
// ?window=<preset>&start_date=&end_date=. Missing or unknown presets
// resolve to this-month, matching the dashboard's default view.
func (h *Handler) window(r *http.Request) timeframe.Window {
	preset := timeframe.Preset(r.URL.Query().Get("window"))

	var customStart, customEnd *time.Time

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			customStart = new(t)
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			customEnd = new(t)
		}
	}

	return timeframe.Resolve(preset, customStart, customEnd, h.now())
}

type totalsResponse struct {
	Revenue     decimal.Decimal `json:"revenue"`
	Costs       decimal.Decimal `json:"costs"`
	Profit      decimal.Decimal `json:"profit"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

type summaryResponse struct {
	Totals   totalsResponse `json:"totals"`
	Previous totalsResponse `json:"previous"`
}

func toTotalsResponse(t report.Totals) totalsResponse {
	return totalsResponse{
		Revenue:     t.Revenue,
		Costs:       t.Costs,
		Profit:      t.Profit,
		Outstanding: t.Outstanding,
	}
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context(), h.window(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(summaryResponse{
		Totals:   toTotalsResponse(summary.Totals),
		Previous: toTotalsResponse(summary.Previous),
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type monthlyPointResponse struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
	Costs   decimal.Decimal `json:"costs"`
	Profit  decimal.Decimal `json:"profit"`
}

func (h *Handler) monthly(w http.ResponseWriter, r *http.Request) {
	points, err := h.svc.MonthlySeries(r.Context(), h.window(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]monthlyPointResponse, len(points))
	for i, p := range points {
		resp[i] = monthlyPointResponse{
			Month:   p.Label,
			Revenue: p.Revenue,
			Costs:   p.Costs,
			Profit:  p.Profit,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type cashFlowPointResponse struct {
	Month   string          `json:"month"`
	CashIn  decimal.Decimal `json:"cash_in"`
	CashOut decimal.Decimal `json:"cash_out"`
}

func (h *Handler) cashflow(w http.ResponseWriter, r *http.Request) {
	points, err := h.svc.CashFlowSeries(r.Context(), h.window(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]cashFlowPointResponse, len(points))
	for i, p := range points {
		resp[i] = cashFlowPointResponse{
			Month:   p.Label,
			CashIn:  p.CashIn,
			CashOut: p.CashOut,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type breakdownEntryResponse struct {
	Key     string          `json:"key"`
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
	Count   int             `json:"count"`
}

func toBreakdownResponse(entries []report.BreakdownEntry) []breakdownEntryResponse {
	resp := make([]breakdownEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = breakdownEntryResponse{
			Key:     e.Key,
			Revenue: e.Revenue,
			Profit:  e.Profit,
			Count:   e.Count,
		}
	}

	return resp
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.CategoryBreakdown(r.Context(), h.window(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toBreakdownResponse(entries)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) treatments(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.TreatmentBreakdown(r.Context(), h.window(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toBreakdownResponse(entries)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
