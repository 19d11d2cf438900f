package service

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// SweepSessions drops sessions idle longer than the session TTL
func (s *Service) SweepSessions() int {
	removed := s.repo.Sweep(s.config.SessionTTL)
	if removed > 0 {
		s.log.WithField("removed", removed).Info("Expired sessions swept")
	}
	return removed
}

// StartSweeper schedules SweepSessions every sweep interval. Stop the returned cron on shutdown.
func (s *Service) StartSweeper() (*cron.Cron, error) {
	c := cron.New()
	spec := fmt.Sprintf("@every %s", s.config.SweepInterval)
	if _, err := c.AddFunc(spec, func() { s.SweepSessions() }); err != nil {
		return nil, fmt.Errorf("failed to schedule session sweep: %w", err)
	}
	c.Start()
	s.log.Infof("Session sweeper running %s", spec)
	return c, nil
}
