package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trift/moneycheck/internal/config"
	"github.com/trift/moneycheck/internal/integrations/payment"
	"github.com/trift/moneycheck/internal/repository"
	"github.com/trift/moneycheck/internal/service"
)

// fakePayments accepts any checkout whose ID is "cs_paid".
type fakePayments struct{}

func (fakePayments) CreateCheckout(_ context.Context, sessionID string) (string, error) {
	return "https://checkout.example/" + sessionID, nil
}

func (fakePayments) VerifyPaid(_ context.Context, checkoutID, _ string) (*payment.Purchase, error) {
	if checkoutID != "cs_paid" {
		return nil, payment.ErrNotPaid
	}
	return &payment.Purchase{CheckoutID: checkoutID}, nil
}

func (fakePayments) ParseWebhook(payload []byte, signature string) (*payment.WebhookEvent, error) {
	switch signature {
	case "":
		return nil, payment.ErrMissingSignature
	case "good":
		return &payment.WebhookEvent{ID: "evt_1", Type: "charge.succeeded"}, nil
	}
	return nil, payment.ErrInvalidSignature
}

type testClient struct {
	t   *testing.T
	srv *httptest.Server
	c   *http.Client
}

func newTestClient(t *testing.T, opts ...service.Option) *testClient {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	cfg := &config.Config{
		SessionSecret: "test-secret",
		SessionTTL:    time.Hour,
		SweepInterval: time.Minute,
		PremiumPrice:  500,
		BaseURL:       "http://localhost",
	}
	svc, err := service.NewService(repository.NewRepository(), log, cfg, opts...)
	require.NoError(t, err)

	srv := httptest.NewServer(NewRouter(NewHandler(svc, log), svc, log, cfg.SessionTTL, cfg.BaseURL))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &testClient{t: t, srv: srv, c: &http.Client{Jar: jar}}
}

func (tc *testClient) do(method, path, body string) (int, map[string]interface{}) {
	tc.t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, tc.srv.URL+path, r)
	require.NoError(tc.t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := tc.c.Do(req)
	require.NoError(tc.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(tc.t, err)
	out := map[string]interface{}{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(tc.t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func TestHealth(t *testing.T) {
	tc := newTestClient(t)
	status, body := tc.do(http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

func TestWizardFlow(t *testing.T) {
	tc := newTestClient(t)

	inputs := []struct{ slug, value string }{
		{"labor-income", "400,000"},
		{"passive-income", "0"},
		{"fixed-cost", "100000"},
		{"waste", "40,000"},
		{"self-investment", "60000"},
		{"asset", "5,000,000"},
		{"debt", "500000"},
	}
	for i, in := range inputs {
		status, body := tc.do(http.MethodPut, "/api/steps/"+in.slug, `{"value":"`+in.value+`"}`)
		require.Equal(t, http.StatusOK, status, in.slug)
		if i+1 < len(inputs) {
			assert.Equal(t, inputs[i+1].slug, body["step"])
		} else {
			assert.Equal(t, "result", body["step"])
		}
	}

	status, body := tc.do(http.MethodGet, "/api/steps/waste", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 40000.0, body["value"])

	status, body = tc.do(http.MethodGet, "/api/data", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 5000000.0, body["asset"])

	status, body = tc.do(http.MethodGet, "/api/result/free", "")
	require.Equal(t, http.StatusOK, status)
	diag := body["diagnosis"].(map[string]interface{})
	assert.Equal(t, 92.0, diag["score"])
	assert.Equal(t, "S", diag["rank"])
	ttf := body["timeToFreedom"].(map[string]interface{})
	assert.Equal(t, 2.0, ttf["fasterRoute"])
	assert.Equal(t, Disclaimer, body["disclaimer"])
}

func TestSaveStep_Validation(t *testing.T) {
	tc := newTestClient(t)

	tests := []struct {
		path, body string
		status     int
		msg        string
	}{
		{"/api/steps/waste", `{"value":""}`, http.StatusBadRequest, "Please enter an amount"},
		{"/api/steps/waste", `{"value":"abc"}`, http.StatusBadRequest, "Please enter a number"},
		{"/api/steps/waste", `{"value":"-5"}`, http.StatusBadRequest, "Please enter a value of 0 or more"},
		{"/api/steps/waste", `not json`, http.StatusBadRequest, "Invalid request body"},
		{"/api/steps/salary", `{"value":"1"}`, http.StatusNotFound, "Unknown step"},
		{"/api/steps/labor-income", `{"value":"1e400"}`, http.StatusBadRequest, "Please enter a smaller amount"},
	}
	for _, tt := range tests {
		status, body := tc.do(http.MethodPut, tt.path, tt.body)
		assert.Equal(t, tt.status, status, tt.body)
		assert.Equal(t, tt.msg, body["error"], tt.body)
	}

	status, body := tc.do(http.MethodGet, "/api/result/free", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "diagnosis")
}

func TestReplaceData_RejectsOverflowingTotals(t *testing.T) {
	tc := newTestClient(t)

	status, body := tc.do(http.MethodPut, "/api/data", `{"laborIncome":1e308,"passiveIncome":1e308}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Please enter a smaller amount", body["error"])

	status, body = tc.do(http.MethodGet, "/api/data", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0.0, body["laborIncome"])
}

func TestWriteJSON_EncodeFailure(t *testing.T) {
	var logs bytes.Buffer
	log := logrus.New()
	log.SetOutput(&logs)
	h := NewHandler(nil, log)

	rec := httptest.NewRecorder()
	h.writeJSON(rec, http.StatusOK, map[string]float64{"ratio": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Something went wrong, please try again"}`, rec.Body.String())
	assert.Contains(t, logs.String(), "Failed to encode response")
}

func TestReplaceAndClearData(t *testing.T) {
	tc := newTestClient(t)

	status, _ := tc.do(http.MethodPut, "/api/data", `{"laborIncome":300000,"debt":-1}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body := tc.do(http.MethodPut, "/api/data", `{"laborIncome":300000,"asset":100}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 300000.0, body["laborIncome"])

	status, _ = tc.do(http.MethodDelete, "/api/data", "")
	assert.Equal(t, http.StatusNoContent, status)

	_, body = tc.do(http.MethodGet, "/api/data", "")
	assert.Equal(t, 0.0, body["laborIncome"])
}

func TestPremiumGate(t *testing.T) {
	tc := newTestClient(t, service.WithPayments(fakePayments{}))

	status, body := tc.do(http.MethodGet, "/api/result/premium", "")
	assert.Equal(t, http.StatusPaymentRequired, status)
	assert.Equal(t, "Premium access required", body["error"])

	status, body = tc.do(http.MethodPost, "/api/payment/checkout", "")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, strings.HasPrefix(body["url"].(string), "https://checkout.example/"))

	status, _ = tc.do(http.MethodGet, "/api/payment/success", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = tc.do(http.MethodGet, "/api/payment/success?session_id=cs_unpaid", "")
	assert.Equal(t, http.StatusPaymentRequired, status)

	status, body = tc.do(http.MethodGet, "/api/payment/success?session_id=cs_paid", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["premiumAccess"])

	status, body = tc.do(http.MethodGet, "/api/result/premium", "")
	require.Equal(t, http.StatusOK, status)
	advice := body["advice"].(map[string]interface{})
	assert.Contains(t, advice, "easy")
	assert.Contains(t, advice, "medium")
	assert.Contains(t, advice, "hard")
	analysis := body["analysis"].(map[string]interface{})
	assert.Contains(t, analysis, "savingsRate")
	assert.Contains(t, analysis, "wasteRate")

	_, body = tc.do(http.MethodGet, "/api/result/preview", "")
	assert.Equal(t, true, body["purchased"])
	assert.Equal(t, 500.0, body["premiumPrice"])
}

func TestPremiumIsPerSession(t *testing.T) {
	tc := newTestClient(t, service.WithPayments(fakePayments{}))
	status, _ := tc.do(http.MethodGet, "/api/payment/success?session_id=cs_paid", "")
	require.Equal(t, http.StatusOK, status)

	other := &testClient{t: t, srv: tc.srv, c: &http.Client{}}
	status, _ = other.do(http.MethodGet, "/api/result/premium", "")
	assert.Equal(t, http.StatusPaymentRequired, status)
}

func TestCheckout_Disabled(t *testing.T) {
	tc := newTestClient(t)

	status, _ := tc.do(http.MethodPost, "/api/payment/checkout", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestStripeWebhook(t *testing.T) {
	tc := newTestClient(t, service.WithPayments(fakePayments{}))

	post := func(signature string) (int, map[string]interface{}) {
		req, err := http.NewRequest(http.MethodPost, tc.srv.URL+"/api/stripe/webhook", strings.NewReader(`{}`))
		require.NoError(t, err)
		if signature != "" {
			req.Header.Set("Stripe-Signature", signature)
		}
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		out := map[string]interface{}{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Empty(t, resp.Cookies())
		return resp.StatusCode, out
	}

	status, body := post("")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "No signature provided", body["error"])

	status, body = post("bad")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid signature", body["error"])

	status, body = post("good")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["received"])
}
