package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/trift/moneycheck/internal/integrations/payment"
)

// StartCheckout opens a payment checkout for the session and returns its URL
func (s *Service) StartCheckout(ctx context.Context, sessionID string) (string, error) {
	if s.payments == nil {
		return "", ErrPaymentsDisabled
	}

	url, err := s.payments.CreateCheckout(ctx, sessionID)
	if err != nil {
		s.log.WithError(err).WithField("session_id", sessionID).Error("Checkout error")
		return "", err
	}
	return url, nil
}

// ConfirmPurchase grants premium access once the provider reports checkoutID as paid
func (s *Service) ConfirmPurchase(ctx context.Context, sessionID, checkoutID string) error {
	if s.payments == nil {
		return ErrPaymentsDisabled
	}
	if s.repo.HasPremiumAccess(sessionID) {
		return nil
	}

	purchase, err := s.payments.VerifyPaid(ctx, checkoutID, sessionID)
	if err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"session_id":  sessionID,
			"checkout_id": checkoutID,
		}).Warn("Purchase not confirmed")
		return err
	}

	if err := s.repo.SavePremiumAccess(sessionID); err != nil {
		return fmt.Errorf("failed to grant premium access: %w", err)
	}
	s.log.WithFields(logrus.Fields{
		"session_id":  sessionID,
		"checkout_id": purchase.CheckoutID,
	}).Info("Premium access granted")
	return nil
}

// HandleWebhook verifies and processes a provider event. Session state is never touched here.
func (s *Service) HandleWebhook(payload []byte, signature string) error {
	if s.payments == nil {
		return ErrPaymentsDisabled
	}

	event, err := s.payments.ParseWebhook(payload, signature)
	if err != nil {
		s.log.WithError(err).Warn("Webhook signature verification failed")
		return err
	}

	switch event.Type {
	case payment.EventCheckoutCompleted:
		if event.Purchase == nil {
			s.log.WithField("event_id", event.ID).Warn("Completed checkout without session payload")
			return nil
		}
		s.log.WithField("checkout_id", event.Purchase.CheckoutID).Info("Payment successful")
		s.sendReceipt(event.Purchase)
	default:
		s.log.WithField("event_type", event.Type).Info("Unhandled event type")
	}
	return nil
}

func (s *Service) sendReceipt(p *payment.Purchase) {
	if s.mailer == nil || p.CustomerEmail == "" {
		return
	}
	if err := s.mailer.SendPurchaseReceipt(p.CustomerEmail, p.CheckoutID, p.AmountTotal, p.Currency); err != nil {
		s.log.WithError(err).WithField("checkout_id", p.CheckoutID).Error("Receipt not sent")
	}
}
