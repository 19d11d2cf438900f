package diagnosis

import "github.com/trift/moneycheck/internal/models"

// Advice categories.
const (
	CategoryFixedCost      = "Fixed cost reduction"
	CategorySelfInvestment = "Self-investment"
	CategoryPassiveIncome  = "Passive income"
	CategoryWaste          = "Waste"
	CategoryIncomeGrowth   = "Income growth"
)

var (
	fixedCostAdvice = []models.Advice{
		{Difficulty: models.DifficultyEasy, Category: CategoryFixedCost, Action: "Cancel one subscription you no longer use", Impact: "Saves around 1,000 per month"},
		{Difficulty: models.DifficultyEasy, Category: CategoryFixedCost, Action: "Review your mobile phone plan", Impact: "Could save 3,000 per month"},
		{Difficulty: models.DifficultyMedium, Category: CategoryFixedCost, Action: "Look for housing with rent 5,000 lower", Impact: "Cuts spending by 60,000 a year"},
		{Difficulty: models.DifficultyMedium, Category: CategoryFixedCost, Action: "Book a free insurance review", Impact: "Drops coverage you do not need"},
	}

	selfInvestmentAdvice = []models.Advice{
		{Difficulty: models.DifficultyEasy, Category: CategorySelfInvestment, Action: "Buy one book a month that helps your work", Impact: "Knowledge for about 1,500 a month"},
		{Difficulty: models.DifficultyEasy, Category: CategorySelfInvestment, Action: "Start a free online course", Impact: "New skills at no cost"},
		{Difficulty: models.DifficultyMedium, Category: CategorySelfInvestment, Action: "Take one paid online course", Impact: "Specialist skills for 3,000-5,000 a month"},
		{Difficulty: models.DifficultyMedium, Category: CategorySelfInvestment, Action: "Start studying for a certification relevant to your job", Impact: "Directly raises future income"},
	}

	passiveIncomeAdvice = []models.Advice{
		{Difficulty: models.DifficultyMedium, Category: CategoryPassiveIncome, Action: "Learn a skill you can use for a side business", Impact: "Creates income beyond your labor"},
		{Difficulty: models.DifficultyHard, Category: CategoryPassiveIncome, Action: "Build a skill you can monetize", Impact: "Adds long-term income pillars"},
	}

	wasteAdvice = []models.Advice{
		{Difficulty: models.DifficultyEasy, Category: CategoryWaste, Action: "Wait one day before any impulse purchase", Impact: "Buy only what you really need"},
		{Difficulty: models.DifficultyEasy, Category: CategoryWaste, Action: "Set a monthly entertainment budget", Impact: "Enjoy yourself without overspending"},
	}

	incomeGrowthAdvice = []models.Advice{
		{Difficulty: models.DifficultyMedium, Category: CategoryIncomeGrowth, Action: "Check whether your current skills support a side job", Impact: "20,000-30,000 more income per month"},
		{Difficulty: models.DifficultyHard, Category: CategoryIncomeGrowth, Action: "Learn skills for a job change or promotion", Impact: "Could raise annual income by 500,000-1,000,000"},
	}
)

// GenerateAdvice returns the catalog entries triggered by data and result,
// in rule order. The result may be empty.
func GenerateAdvice(data models.InputRecord, result models.DiagnoseResult) []models.Advice {
	var advice []models.Advice

	if result.Ratios.FixedCostRate > 0.30 {
		advice = append(advice, fixedCostAdvice...)
	}
	if result.Ratios.SelfInvestmentRate < 0.05 {
		advice = append(advice, selfInvestmentAdvice...)
	}
	if data.PassiveIncome == 0 {
		advice = append(advice, passiveIncomeAdvice...)
	}
	if result.Ratios.WasteRate > 0.20 {
		advice = append(advice, wasteAdvice...)
	}
	if result.Ratios.SavingsRate < 0.10 {
		advice = append(advice, incomeGrowthAdvice...)
	}

	return advice
}

// GroupAdviceByDifficulty splits advice into easy, medium and hard buckets.
// Buckets are never nil so they encode as empty JSON arrays.
func GroupAdviceByDifficulty(advice []models.Advice) models.GroupedAdvice {
	grouped := models.GroupedAdvice{
		Easy:   []models.Advice{},
		Medium: []models.Advice{},
		Hard:   []models.Advice{},
	}
	for _, a := range advice {
		switch a.Difficulty {
		case models.DifficultyEasy:
			grouped.Easy = append(grouped.Easy, a)
		case models.DifficultyMedium:
			grouped.Medium = append(grouped.Medium, a)
		case models.DifficultyHard:
			grouped.Hard = append(grouped.Hard, a)
		}
	}
	return grouped
}
