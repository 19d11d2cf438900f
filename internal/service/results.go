package service

import (
	"github.com/trift/moneycheck/internal/diagnosis"
	"github.com/trift/moneycheck/internal/models"
)

// FreeResult is the result shown to every session
type FreeResult struct {
	Diagnosis     models.DiagnoseResult `json:"diagnosis"`
	TimeToFreedom models.TimeToFreedom  `json:"timeToFreedom"`
}

// PreviewResult teases the premium result before purchase
type PreviewResult struct {
	Score        int         `json:"score"`
	Rank         models.Rank `json:"rank"`
	PremiumPrice int64       `json:"premiumPrice"`
	Purchased    bool        `json:"purchased"`
}

// PremiumResult is the detailed result unlocked by payment
type PremiumResult struct {
	Diagnosis   models.DiagnoseResult `json:"diagnosis"`
	Analysis    models.RatioAnalysis  `json:"analysis"`
	Advice      models.GroupedAdvice  `json:"advice"`
	AdviceCount int                   `json:"adviceCount"`
}

// FreeResult diagnoses the session's current record
func (s *Service) FreeResult(sessionID string) FreeResult {
	data := s.repo.GetData(sessionID)
	return FreeResult{
		Diagnosis:     diagnosis.Diagnose(data),
		TimeToFreedom: diagnosis.CalculateTimeToFreedom(data),
	}
}

// PreviewResult returns the score and rank with the premium price
func (s *Service) PreviewResult(sessionID string) PreviewResult {
	result := diagnosis.Diagnose(s.repo.GetData(sessionID))
	return PreviewResult{
		Score:        result.Score,
		Rank:         result.Rank,
		PremiumPrice: s.config.PremiumPrice,
		Purchased:    s.repo.HasPremiumAccess(sessionID),
	}
}

// PremiumResult returns the detailed result, or ErrPremiumRequired
func (s *Service) PremiumResult(sessionID string) (PremiumResult, error) {
	if !s.repo.HasPremiumAccess(sessionID) {
		return PremiumResult{}, ErrPremiumRequired
	}

	data := s.repo.GetData(sessionID)
	result := diagnosis.Diagnose(data)
	advice := diagnosis.GenerateAdvice(data, result)
	return PremiumResult{
		Diagnosis:   result,
		Analysis:    diagnosis.AssessRatios(result.Ratios),
		Advice:      diagnosis.GroupAdviceByDifficulty(advice),
		AdviceCount: len(advice),
	}, nil
}
