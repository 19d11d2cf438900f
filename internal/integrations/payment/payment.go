package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/trift/moneycheck/internal/config"
)

const EventCheckoutCompleted = "checkout.session.completed"

var (
	ErrNotPaid          = errors.New("checkout session is not paid")
	ErrSessionMismatch  = errors.New("checkout session belongs to another session")
	ErrMissingSignature = errors.New("no signature provided")
	ErrInvalidSignature = errors.New("invalid signature")
)

// Purchase describes a paid checkout session
type Purchase struct {
	CheckoutID    string
	CustomerEmail string
	AmountTotal   int64
	Currency      string
}

// WebhookEvent is a verified provider event
type WebhookEvent struct {
	ID       string
	Type     string
	Purchase *Purchase // set for checkout.session.completed
}

// Client handles integration with Stripe Checkout
type Client struct {
	api           *client.API
	priceID       string
	baseURL       string
	webhookSecret string
	log           *logrus.Logger
}

// NewClient initializes a Stripe client. Failed calls are never retried.
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(0),
	})
	return newClient(backend, cfg, log)
}

func newClient(backend stripe.Backend, cfg *config.Config, log *logrus.Logger) *Client {
	api := &client.API{}
	api.Init(cfg.StripeSecretKey, &stripe.Backends{API: backend})
	return &Client{
		api:           api,
		priceID:       cfg.StripePriceID,
		baseURL:       cfg.BaseURL,
		webhookSecret: cfg.StripeWebhookSecret,
		log:           log,
	}
}

// CreateCheckout opens a one-time payment checkout bound to sessionID and returns its URL
func (c *Client) CreateCheckout(ctx context.Context, sessionID string) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(c.priceID),
				Quantity: stripe.Int64(1),
			},
		},
		ClientReferenceID: stripe.String(sessionID),
		SuccessURL:        stripe.String(c.baseURL + "/payment/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:         stripe.String(c.baseURL + "/result/preview"),
	}
	params.Context = ctx

	s, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	c.log.WithField("checkout_id", s.ID).Info("Checkout session created")
	return s.URL, nil
}

// VerifyPaid confirms that checkoutID is paid and was opened by sessionID
func (c *Client) VerifyPaid(ctx context.Context, checkoutID, sessionID string) (*Purchase, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := c.api.CheckoutSessions.Get(checkoutID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve checkout session: %w", err)
	}
	if s.ClientReferenceID != sessionID {
		return nil, ErrSessionMismatch
	}
	if s.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		return nil, fmt.Errorf("%w: status %s", ErrNotPaid, s.PaymentStatus)
	}

	return toPurchase(s), nil
}

// ParseWebhook verifies the Stripe-Signature header and decodes the event
func (c *Client) ParseWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	if signature == "" {
		return nil, ErrMissingSignature
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, c.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	out := &WebhookEvent{ID: event.ID, Type: string(event.Type)}
	if out.Type == EventCheckoutCompleted {
		var s stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
			return nil, fmt.Errorf("failed to decode checkout session: %w", err)
		}
		out.Purchase = toPurchase(&s)
	}
	return out, nil
}

func toPurchase(s *stripe.CheckoutSession) *Purchase {
	p := &Purchase{
		CheckoutID:  s.ID,
		AmountTotal: s.AmountTotal,
		Currency:    string(s.Currency),
	}
	if s.CustomerDetails != nil {
		p.CustomerEmail = s.CustomerDetails.Email
	}
	return p
}
