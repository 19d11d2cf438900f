package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/trift/moneycheck/internal/integrations/payment"
	"github.com/trift/moneycheck/internal/middleware"
	"github.com/trift/moneycheck/internal/models"
	"github.com/trift/moneycheck/internal/repository"
	"github.com/trift/moneycheck/internal/service"
	"github.com/trift/moneycheck/internal/utils"
	"github.com/trift/moneycheck/internal/wizard"
)

// Disclaimer accompanies every diagnosis response.
const Disclaimer = "This diagnosis is for self-assessment only and is not financial or investment advice."

const maxWebhookBody = 1 << 16

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON falls back to a 500 when v cannot be encoded.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		h.log.WithError(err).Error("Failed to encode response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Something went wrong, please try again"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		h.log.WithError(err).Debug("Failed to write response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}

// inputError maps boundary validation failures to a status and user message
func inputError(err error) (int, string) {
	switch {
	case errors.Is(err, wizard.ErrUnknownStep):
		return http.StatusNotFound, "Unknown step"
	case errors.Is(err, utils.ErrAmountRequired):
		return http.StatusBadRequest, "Please enter an amount"
	case errors.Is(err, utils.ErrAmountNotNumeric):
		return http.StatusBadRequest, "Please enter a number"
	case errors.Is(err, utils.ErrAmountNegative):
		return http.StatusBadRequest, "Please enter a value of 0 or more"
	case errors.Is(err, utils.ErrAmountTooLarge):
		return http.StatusBadRequest, "Please enter a smaller amount"
	case errors.Is(err, repository.ErrSessionNotFound):
		return http.StatusUnauthorized, "Session expired"
	}
	return http.StatusInternalServerError, "Something went wrong, please try again"
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListSteps returns every questionnaire step with stored values
func (h *Handler) ListSteps(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.Steps(middleware.SessionID(r.Context())))
}

// GetStep returns one questionnaire step
func (h *Handler) GetStep(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.GetStep(middleware.SessionID(r.Context()), mux.Vars(r)["step"])
	if err != nil {
		status, msg := inputError(err)
		h.writeError(w, status, msg)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

type saveStepRequest struct {
	Value string `json:"value"`
}

// SaveStep stores the value for one step and returns the next step
func (h *Handler) SaveStep(w http.ResponseWriter, r *http.Request) {
	var req saveStepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	next, err := h.svc.SaveStep(middleware.SessionID(r.Context()), mux.Vars(r)["step"], req.Value)
	if err != nil {
		status, msg := inputError(err)
		if status == http.StatusInternalServerError {
			h.log.WithError(err).Error("Failed to save step")
		}
		h.writeError(w, status, msg)
		return
	}
	h.writeJSON(w, http.StatusOK, next)
}

// GetData returns the stored record
func (h *Handler) GetData(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.GetData(middleware.SessionID(r.Context())))
}

// ReplaceData stores a whole record
func (h *Handler) ReplaceData(w http.ResponseWriter, r *http.Request) {
	var data models.InputRecord
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id := middleware.SessionID(r.Context())
	if err := h.svc.ReplaceData(id, data); err != nil {
		status, msg := inputError(err)
		h.writeError(w, status, msg)
		return
	}
	h.writeJSON(w, http.StatusOK, h.svc.GetData(id))
}

// ClearData resets the session
func (h *Handler) ClearData(w http.ResponseWriter, r *http.Request) {
	h.svc.ClearData(middleware.SessionID(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}

type freeResultResponse struct {
	service.FreeResult
	Disclaimer string `json:"disclaimer"`
}

// FreeResult returns score, rank, breakdown and time to freedom
func (h *Handler) FreeResult(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, freeResultResponse{
		FreeResult: h.svc.FreeResult(middleware.SessionID(r.Context())),
		Disclaimer: Disclaimer,
	})
}

type previewResultResponse struct {
	service.PreviewResult
	Disclaimer string `json:"disclaimer"`
}

// PreviewResult returns the pre-purchase teaser
func (h *Handler) PreviewResult(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, previewResultResponse{
		PreviewResult: h.svc.PreviewResult(middleware.SessionID(r.Context())),
		Disclaimer:    Disclaimer,
	})
}

type premiumResultResponse struct {
	service.PremiumResult
	Disclaimer string `json:"disclaimer"`
}

// PremiumResult returns the detailed result once purchased
func (h *Handler) PremiumResult(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.PremiumResult(middleware.SessionID(r.Context()))
	if errors.Is(err, service.ErrPremiumRequired) {
		h.writeError(w, http.StatusPaymentRequired, "Premium access required")
		return
	}
	if err != nil {
		h.log.WithError(err).Error("Failed to build premium result")
		h.writeError(w, http.StatusInternalServerError, "Something went wrong, please try again")
		return
	}
	h.writeJSON(w, http.StatusOK, premiumResultResponse{PremiumResult: result, Disclaimer: Disclaimer})
}

// Checkout opens a payment checkout
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	url, err := h.svc.StartCheckout(r.Context(), middleware.SessionID(r.Context()))
	if errors.Is(err, service.ErrPaymentsDisabled) {
		h.writeError(w, http.StatusServiceUnavailable, "Payments are not available")
		return
	}
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to create checkout session")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

// PaymentSuccess confirms a completed checkout and grants premium access
func (h *Handler) PaymentSuccess(w http.ResponseWriter, r *http.Request) {
	checkoutID := r.URL.Query().Get("session_id")
	if checkoutID == "" {
		h.writeError(w, http.StatusBadRequest, "Missing session_id")
		return
	}

	err := h.svc.ConfirmPurchase(r.Context(), middleware.SessionID(r.Context()), checkoutID)
	switch {
	case err == nil:
		h.writeJSON(w, http.StatusOK, map[string]bool{"premiumAccess": true})
	case errors.Is(err, service.ErrPaymentsDisabled):
		h.writeError(w, http.StatusServiceUnavailable, "Payments are not available")
	case errors.Is(err, payment.ErrNotPaid), errors.Is(err, payment.ErrSessionMismatch):
		h.writeError(w, http.StatusPaymentRequired, "Payment not completed")
	default:
		h.writeError(w, http.StatusBadGateway, "Could not confirm payment, please try again")
	}
}

// StripeWebhook receives provider events
func (h *Handler) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.svc.HandleWebhook(body, r.Header.Get("Stripe-Signature"))
	switch {
	case err == nil:
		h.writeJSON(w, http.StatusOK, map[string]bool{"received": true})
	case errors.Is(err, payment.ErrMissingSignature):
		h.writeError(w, http.StatusBadRequest, "No signature provided")
	case errors.Is(err, payment.ErrInvalidSignature):
		h.writeError(w, http.StatusBadRequest, "Invalid signature")
	case errors.Is(err, service.ErrPaymentsDisabled):
		h.writeError(w, http.StatusInternalServerError, "Webhook secret not configured")
	default:
		h.writeError(w, http.StatusBadRequest, "Invalid event")
	}
}
