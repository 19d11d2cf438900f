package email

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/trift/moneycheck/internal/config"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
	now    func() time.Time
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// SendPurchaseReceipt sends a receipt for a completed premium purchase
func (s *Sender) SendPurchaseReceipt(to, checkoutID string, amount int64, currency string) error {
	e := s.buildReceipt(to, checkoutID, amount, currency)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send receipt to %s: %v", to, err)
		return fmt.Errorf("failed to send receipt: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}

func (s *Sender) buildReceipt(to, checkoutID string, amount int64, currency string) *email.Email {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Money Check premium diagnosis receipt"

	body := "Thank you for your purchase.\n\n"
	body += fmt.Sprintf(
		"Amount: %d %s\n"+
			"Reference: %s\n"+
			"Date: %s\n",
		amount, strings.ToUpper(currency), checkoutID, s.now().Format("2006-01-02 15:04:05"),
	)
	body += "\nYour premium results are kept only while your browser session is open. " +
		"Please save a screenshot before closing it.\n"
	body += "\nThis diagnosis is not financial or investment advice.\n"
	body += "\nBest regards,\nMoney Check"
	e.Text = []byte(body)
	return e
}
