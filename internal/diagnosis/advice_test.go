package diagnosis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trift/moneycheck/internal/models"
)

func TestGenerateAdvice_AllRules(t *testing.T) {
	data := models.InputRecord{LaborIncome: 100000, FixedCost: 50000, Waste: 30000, Debt: 100000}
	advice := GenerateAdvice(data, Diagnose(data))

	counts := map[string]int{}
	for _, a := range advice {
		counts[a.Category]++
	}
	assert.Equal(t, map[string]int{
		CategoryFixedCost:      4,
		CategorySelfInvestment: 4,
		CategoryPassiveIncome:  2,
		CategoryWaste:          2,
	}, counts)
	assert.Equal(t, CategoryFixedCost, advice[0].Category)

	grouped := GroupAdviceByDifficulty(advice)
	assert.Len(t, grouped.Easy, 6)
	assert.Len(t, grouped.Medium, 5)
	assert.Len(t, grouped.Hard, 1)
}

func TestGenerateAdvice_LowSavings(t *testing.T) {
	data := models.InputRecord{LaborIncome: 100000, PassiveIncome: 50000, FixedCost: 30000, Waste: 15000, SelfInvestment: 95000}
	advice := GenerateAdvice(data, Diagnose(data))

	assert.Len(t, advice, 2)
	for _, a := range advice {
		assert.Equal(t, CategoryIncomeGrowth, a.Category)
	}
}

func TestGenerateAdvice_None(t *testing.T) {
	data := models.InputRecord{LaborIncome: 300000, PassiveIncome: 100000, FixedCost: 100000, Waste: 40000, SelfInvestment: 60000}
	advice := GenerateAdvice(data, Diagnose(data))

	assert.Empty(t, advice)

	grouped := GroupAdviceByDifficulty(advice)
	assert.NotNil(t, grouped.Easy)
	assert.Empty(t, grouped.Easy)
	assert.Empty(t, grouped.Medium)
	assert.Empty(t, grouped.Hard)
}

func TestGenerateAdvice_DoesNotAliasCatalog(t *testing.T) {
	data := models.InputRecord{LaborIncome: 100000, FixedCost: 50000}
	advice := GenerateAdvice(data, Diagnose(data))
	advice[0].Action = "changed"

	again := GenerateAdvice(data, Diagnose(data))
	assert.NotEqual(t, "changed", again[0].Action)
}

func TestGenerateAdvice_RuleBoundaries(t *testing.T) {
	healthy := models.Ratios{FixedCostRate: 0.2, SelfInvestmentRate: 0.1, WasteRate: 0.1, SavingsRate: 0.5}
	withPassive := models.InputRecord{LaborIncome: 100000, PassiveIncome: 1}

	tests := []struct {
		name     string
		data     models.InputRecord
		adjust   func(*models.Ratios)
		category string
		fires    bool
	}{
		{"fixed cost at 0.30", withPassive, func(r *models.Ratios) { r.FixedCostRate = 0.30 }, CategoryFixedCost, false},
		{"fixed cost above 0.30", withPassive, func(r *models.Ratios) { r.FixedCostRate = 0.3001 }, CategoryFixedCost, true},
		{"self investment at 0.05", withPassive, func(r *models.Ratios) { r.SelfInvestmentRate = 0.05 }, CategorySelfInvestment, false},
		{"self investment below 0.05", withPassive, func(r *models.Ratios) { r.SelfInvestmentRate = 0.0499 }, CategorySelfInvestment, true},
		{"waste at 0.20", withPassive, func(r *models.Ratios) { r.WasteRate = 0.20 }, CategoryWaste, false},
		{"waste above 0.20", withPassive, func(r *models.Ratios) { r.WasteRate = 0.2001 }, CategoryWaste, true},
		{"savings at 0.10", withPassive, func(r *models.Ratios) { r.SavingsRate = 0.10 }, CategoryIncomeGrowth, false},
		{"savings below 0.10", withPassive, func(r *models.Ratios) { r.SavingsRate = 0.0999 }, CategoryIncomeGrowth, true},
		{"passive income of 1", withPassive, func(*models.Ratios) {}, CategoryPassiveIncome, false},
		{"passive income of 0", models.InputRecord{LaborIncome: 100000}, func(*models.Ratios) {}, CategoryPassiveIncome, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ratios := healthy
			tt.adjust(&ratios)
			advice := GenerateAdvice(tt.data, models.DiagnoseResult{Ratios: ratios})

			categories := map[string]bool{}
			for _, a := range advice {
				categories[a.Category] = true
			}
			assert.Equal(t, tt.fires, categories[tt.category])
			if tt.fires {
				assert.Len(t, categories, 1)
			} else {
				assert.Empty(t, advice)
			}
		})
	}
}
