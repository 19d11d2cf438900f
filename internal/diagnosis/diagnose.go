// Package diagnosis scores an InputRecord and projects the time to
// financial independence. Every function here is pure.
package diagnosis

import "github.com/trift/moneycheck/internal/models"

// CalculateRatios derives the five ratios relative to total income.
// Zero total income yields all-zero ratios instead of NaN or Inf.
func CalculateRatios(data models.InputRecord) models.Ratios {
	totalIncome := data.TotalIncome()
	if totalIncome == 0 {
		return models.Ratios{}
	}

	return models.Ratios{
		SavingsRate:        (totalIncome - data.TotalExpense()) / totalIncome,
		FixedCostRate:      data.FixedCost / totalIncome,
		WasteRate:          data.Waste / totalIncome,
		SelfInvestmentRate: data.SelfInvestment / totalIncome,
		PassiveIncomeRate:  data.PassiveIncome / totalIncome,
	}
}

// CashFlowScore scores the savings rate (max 30).
func CashFlowScore(savingsRate float64) int {
	switch {
	case savingsRate >= 0.30:
		return 30
	case savingsRate >= 0.20:
		return 26
	case savingsRate >= 0.10:
		return 18
	}
	return 10
}

// FixedCostScore scores the fixed cost rate (max 25).
func FixedCostScore(fixedCostRate float64) int {
	switch {
	case fixedCostRate <= 0.25:
		return 25
	case fixedCostRate <= 0.30:
		return 20
	case fixedCostRate <= 0.35:
		return 15
	}
	return 10
}

// AssetDebtScore scores assets against debt (max 18).
func AssetDebtScore(asset, debt float64) int {
	if debt == 0 {
		if asset > 0 {
			return 18
		}
		return 8
	}

	switch {
	case asset >= debt*5:
		return 18
	case asset >= debt*3:
		return 15
	case asset >= debt*2:
		return 12
	}
	return 8
}

// PassiveIncomeScore scores the passive income rate (max 12).
func PassiveIncomeScore(passiveIncomeRate float64) int {
	switch {
	case passiveIncomeRate >= 0.30:
		return 12
	case passiveIncomeRate >= 0.20:
		return 10
	case passiveIncomeRate >= 0.10:
		return 7
	}
	return 4
}

// SelfInvestmentScore scores the self-investment rate (max 10).
func SelfInvestmentScore(selfInvestmentRate float64) int {
	switch {
	case selfInvestmentRate >= 0.15:
		return 10
	case selfInvestmentRate >= 0.10:
		return 8
	case selfInvestmentRate >= 0.07:
		return 6
	}
	return 3
}

// WasteScore scores the waste rate (max 5).
func WasteScore(wasteRate float64) int {
	switch {
	case wasteRate <= 0.10:
		return 5
	case wasteRate <= 0.15:
		return 4
	case wasteRate <= 0.20:
		return 3
	}
	return 2
}

// CalculateBreakdown runs each category step function.
func CalculateBreakdown(data models.InputRecord, ratios models.Ratios) models.Breakdown {
	return models.Breakdown{
		CashFlow:       CashFlowScore(ratios.SavingsRate),
		FixedCost:      FixedCostScore(ratios.FixedCostRate),
		AssetDebt:      AssetDebtScore(data.Asset, data.Debt),
		PassiveIncome:  PassiveIncomeScore(ratios.PassiveIncomeRate),
		SelfInvestment: SelfInvestmentScore(ratios.SelfInvestmentRate),
		Waste:          WasteScore(ratios.WasteRate),
	}
}

// RankFor classifies a total score.
func RankFor(score int) models.Rank {
	switch {
	case score >= 95:
		return models.RankSPlus
	case score >= 85:
		return models.RankS
	case score >= 75:
		return models.RankA
	case score >= 65:
		return models.RankB
	case score >= 55:
		return models.RankC
	case score >= 45:
		return models.RankD
	case score >= 35:
		return models.RankE
	}
	return models.RankF
}

// Diagnose scores data. The score is the unclamped sum of the breakdown.
func Diagnose(data models.InputRecord) models.DiagnoseResult {
	ratios := CalculateRatios(data)
	breakdown := CalculateBreakdown(data, ratios)
	score := breakdown.Total()

	return models.DiagnoseResult{
		Score:     score,
		Rank:      RankFor(score),
		Breakdown: breakdown,
		Ratios:    ratios,
	}
}
