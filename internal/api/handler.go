// Package api exposes NUBAN validation and bank lookups over HTTP.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Veraticus/nuban/internal/common"
	"github.com/Veraticus/nuban/internal/model"
	"github.com/Veraticus/nuban/internal/nuban"
	"github.com/Veraticus/nuban/internal/registry"
)

// Handler is the thin HTTP layer over the checksum engine and a bank list.
type Handler struct {
	registry registry.Registry
	metrics  *Metrics
	logger   *slog.Logger
}

// NewHandler creates a handler answering from reg.
func NewHandler(reg registry.Registry, metrics *Metrics) *Handler {
	return &Handler{
		registry: reg,
		metrics:  metrics,
		logger:   slog.Default().With("component", "api"),
	}
}

// NewRouter wires all public endpoints. gatherer serves /metrics.
func NewRouter(h *Handler, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/banks", h.handleListBanks)
	r.Get("/banks/{code}", h.handleGetBank)
	r.Get("/accounts/{number}/banks", h.handlePredict)
	r.Get("/accounts/{number}/validate", h.handleValidate)
	r.Get("/check-digit", h.handleCheckDigit)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return r
}

// NewServer builds an HTTP server with sane defaults for this project.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

type banksResponse struct {
	Banks []model.Bank `json:"banks"`
	Count int          `json:"count"`
}

type validateResponse struct {
	AccountNumber string      `json:"account_number"`
	BankCode      string      `json:"bank_code"`
	Bank          *model.Bank `json:"bank,omitempty"`
	Valid         bool        `json:"valid"`
}

type predictResponse struct {
	AccountNumber string       `json:"account_number"`
	Banks         []model.Bank `json:"banks"`
}

type checkDigitResponse struct {
	BankCode      string `json:"bank_code"`
	Serial        string `json:"serial"`
	AccountNumber string `json:"account_number"`
	CheckDigit    int    `json:"check_digit"`
}

func (h *Handler) handleListBanks(w http.ResponseWriter, r *http.Request) {
	banks := h.registry.Banks()
	if q := r.URL.Query().Get("q"); q != "" {
		banks = h.registry.FindByName(q)
	}
	writeJSON(w, http.StatusOK, banksResponse{Banks: banks, Count: len(banks)})
}

func (h *Handler) handleGetBank(w http.ResponseWriter, r *http.Request) {
	bank, ok := h.registry.FindByCode(chi.URLParam(r, "code"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "message": "no bank with that code"})
		return
	}
	writeJSON(w, http.StatusOK, bank)
}

func (h *Handler) handlePredict(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	banks, err := nuban.PredictBanks(number, h.registry.Banks())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.metrics.Predictions.Inc()
	writeJSON(w, http.StatusOK, predictResponse{AccountNumber: number, Banks: banks})
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	code := r.URL.Query().Get("bank_code")

	valid, err := nuban.Validate(number, code)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.metrics.ObserveValidation(valid)

	resp := validateResponse{AccountNumber: number, BankCode: code, Valid: valid}
	if bank, ok := h.registry.FindByCode(code); ok {
		resp.Bank = &bank
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCheckDigit(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("bank_code")
	serial := r.URL.Query().Get("serial")

	account, err := nuban.GenerateAccountNumber(code, serial)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, checkDigitResponse{
		BankCode:      code,
		Serial:        serial,
		AccountNumber: account,
		CheckDigit:    int(account[nuban.SerialLength] - '0'),
	})
}

// writeError translates checksum input errors to 400 and anything else to 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if kind := common.InputErrorKind(err); kind != "" {
		h.metrics.ObserveInputError(kind)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": kind, "message": err.Error()})
		return
	}

	h.logger.Error("Request failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("Failed to encode response", "error", err)
	}
}
