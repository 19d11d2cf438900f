package service

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/hkdf"

	"github.com/trift/moneycheck/internal/config"
	"github.com/trift/moneycheck/internal/integrations/payment"
	"github.com/trift/moneycheck/internal/models"
	"github.com/trift/moneycheck/internal/repository"
	"github.com/trift/moneycheck/internal/utils"
	"github.com/trift/moneycheck/internal/wizard"
)

const tokenKeyInfo = "moneycheck session token v1"

var (
	ErrInvalidToken     = errors.New("invalid session token")
	ErrPremiumRequired  = errors.New("premium access required")
	ErrPaymentsDisabled = errors.New("payments are not configured")
)

// PaymentProvider opens checkouts and confirms payments
type PaymentProvider interface {
	CreateCheckout(ctx context.Context, sessionID string) (string, error)
	VerifyPaid(ctx context.Context, checkoutID, sessionID string) (*payment.Purchase, error)
	ParseWebhook(payload []byte, signature string) (*payment.WebhookEvent, error)
}

// Mailer sends purchase receipts
type Mailer interface {
	SendPurchaseReceipt(to, checkoutID string, amount int64, currency string) error
}

// Service handles business logic
type Service struct {
	repo       *repository.Repository
	log        *logrus.Logger
	config     *config.Config
	payments   PaymentProvider
	mailer     Mailer
	signingKey []byte
	now        func() time.Time
}

// Option customizes a Service
type Option func(*Service)

// WithPayments enables checkout through p
func WithPayments(p PaymentProvider) Option {
	return func(s *Service) { s.payments = p }
}

// WithMailer enables purchase receipts through m
func WithMailer(m Mailer) Option {
	return func(s *Service) { s.mailer = m }
}

// NewService initializes a new service
func NewService(repo *repository.Repository, log *logrus.Logger, cfg *config.Config, opts ...Option) (*Service, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(cfg.SessionSecret), nil, []byte(tokenKeyInfo)), key); err != nil {
		return nil, fmt.Errorf("failed to derive signing key: %w", err)
	}

	s := &Service{
		repo:       repo,
		log:        log,
		config:     cfg,
		signingKey: key,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// IssueToken signs a session token for sessionID
func (s *Service) IssueToken(sessionID string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.SessionTTL)),
	})
	tokenString, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ParseToken returns the session ID carried by a valid token
func (s *Service) ParseToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return s.signingKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// ResolveSession maps a token to a live session, starting a new one when the
// token is missing, invalid, or points at a swept session. fresh is the token
// to hand back to the client, empty when the existing token is still good.
func (s *Service) ResolveSession(tokenString string) (sessionID, fresh string, err error) {
	if tokenString != "" {
		id, err := s.ParseToken(tokenString)
		if err == nil && s.repo.Touch(id) {
			return id, "", nil
		}
		if err != nil {
			s.log.WithError(err).Debug("Discarding session token")
		}
	}

	id := s.repo.CreateSession()
	fresh, err = s.IssueToken(id)
	if err != nil {
		s.repo.DeleteSession(id)
		return "", "", err
	}
	s.log.WithField("session_id", id).Info("Session created")
	return id, fresh, nil
}

// StepView is a wizard step with the value stored for it
type StepView struct {
	Step        string          `json:"step"`
	Field       string          `json:"field"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Value       float64         `json:"value"`
	Progress    wizard.Progress `json:"progress"`
	Prev        string          `json:"prev"`
	Next        string          `json:"next"`
}

func (s *Service) stepView(step wizard.Step, data models.InputRecord) StepView {
	value, _ := data.Get(step.Field())
	return StepView{
		Step:        step.String(),
		Field:       step.Field(),
		Title:       step.Title(),
		Description: step.Description(),
		Value:       value,
		Progress:    step.Progress(),
		Prev:        step.Prev().String(),
		Next:        step.Next().String(),
	}
}

// Steps lists every input step for the session
func (s *Service) Steps(sessionID string) []StepView {
	data := s.repo.GetData(sessionID)
	out := make([]StepView, 0, wizard.TotalSteps)
	for _, step := range wizard.InputSteps() {
		out = append(out, s.stepView(step, data))
	}
	return out
}

// GetStep returns one input step for the session
func (s *Service) GetStep(sessionID, slug string) (StepView, error) {
	step, err := wizard.Parse(slug)
	if err != nil {
		return StepView{}, err
	}
	return s.stepView(step, s.repo.GetData(sessionID)), nil
}

// SaveStep validates raw input for a step, stores it, and returns the step after it
func (s *Service) SaveStep(sessionID, slug, raw string) (StepView, error) {
	step, err := wizard.Parse(slug)
	if err != nil {
		return StepView{}, err
	}

	value, err := utils.ParseAmount(raw)
	if err != nil {
		return StepView{}, err
	}
	if err := s.repo.SaveData(sessionID, step.Field(), value); err != nil {
		return StepView{}, fmt.Errorf("failed to save %s: %w", step.Field(), err)
	}

	next := step.Next()
	s.log.WithFields(logrus.Fields{"session_id": sessionID, "step": step.String()}).Debug("Step saved")
	return s.stepView(next, s.repo.GetData(sessionID)), nil
}

// GetData returns the session's stored record
func (s *Service) GetData(sessionID string) models.InputRecord {
	return s.repo.GetData(sessionID)
}

// ReplaceData validates and stores a whole record
func (s *Service) ReplaceData(sessionID string, data models.InputRecord) error {
	if err := utils.ValidateRecord(data); err != nil {
		return err
	}
	if err := s.repo.ReplaceData(sessionID, data); err != nil {
		return fmt.Errorf("failed to replace data: %w", err)
	}
	return nil
}

// ClearData resets the record and revokes premium access
func (s *Service) ClearData(sessionID string) {
	s.repo.ClearData(sessionID)
	s.repo.ClearPremiumAccess(sessionID)
	s.log.WithField("session_id", sessionID).Info("Session data cleared")
}
