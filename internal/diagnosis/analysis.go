package diagnosis

import "github.com/trift/moneycheck/internal/models"

// AssessRatios marks each ratio good when it meets its healthy threshold:
// savings >= 20%, fixed cost <= 30%, self-investment >= 10%,
// passive income >= 10%, waste <= 15%.
func AssessRatios(r models.Ratios) models.RatioAnalysis {
	return models.RatioAnalysis{
		SavingsRate:        models.RatioAssessment{Value: r.SavingsRate, Good: r.SavingsRate >= 0.20},
		FixedCostRate:      models.RatioAssessment{Value: r.FixedCostRate, Good: r.FixedCostRate <= 0.30},
		SelfInvestmentRate: models.RatioAssessment{Value: r.SelfInvestmentRate, Good: r.SelfInvestmentRate >= 0.10},
		PassiveIncomeRate:  models.RatioAssessment{Value: r.PassiveIncomeRate, Good: r.PassiveIncomeRate >= 0.10},
		WasteRate:          models.RatioAssessment{Value: r.WasteRate, Good: r.WasteRate <= 0.15},
	}
}
