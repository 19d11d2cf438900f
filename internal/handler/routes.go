package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/trift/moneycheck/internal/middleware"
	"github.com/trift/moneycheck/internal/service"
)

// NewRouter wires every route. Session routes get a session cookie; the webhook does not.
func NewRouter(h *Handler, svc *service.Service, logger *logrus.Logger, sessionTTL time.Duration, baseURL string) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Logging(logger))

	// Public routes
	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/api/stripe/webhook", h.StripeWebhook).Methods(http.MethodPost)

	// Session routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Session(svc, sessionTTL, strings.HasPrefix(baseURL, "https://")))
	api.HandleFunc("/steps", h.ListSteps).Methods(http.MethodGet)
	api.HandleFunc("/steps/{step}", h.GetStep).Methods(http.MethodGet)
	api.HandleFunc("/steps/{step}", h.SaveStep).Methods(http.MethodPut)
	api.HandleFunc("/data", h.GetData).Methods(http.MethodGet)
	api.HandleFunc("/data", h.ReplaceData).Methods(http.MethodPut)
	api.HandleFunc("/data", h.ClearData).Methods(http.MethodDelete)
	api.HandleFunc("/result/free", h.FreeResult).Methods(http.MethodGet)
	api.HandleFunc("/result/preview", h.PreviewResult).Methods(http.MethodGet)
	api.HandleFunc("/result/premium", h.PremiumResult).Methods(http.MethodGet)
	api.HandleFunc("/payment/checkout", h.Checkout).Methods(http.MethodPost)
	api.HandleFunc("/payment/success", h.PaymentSuccess).Methods(http.MethodGet)

	return r
}
