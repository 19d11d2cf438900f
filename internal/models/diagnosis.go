package models

// Rank is a coarse classification of the total score.
type Rank string

const (
	RankSPlus Rank = "S+"
	RankS     Rank = "S"
	RankA     Rank = "A"
	RankB     Rank = "B"
	RankC     Rank = "C"
	RankD     Rank = "D"
	RankE     Rank = "E"
	RankF     Rank = "F"
)

// Ratios are fractions of total income, not percentages
type Ratios struct {
	SavingsRate        float64 `json:"savingsRate"` // may be negative
	FixedCostRate      float64 `json:"fixedCostRate"`
	WasteRate          float64 `json:"wasteRate"`
	SelfInvestmentRate float64 `json:"selfInvestmentRate"`
	PassiveIncomeRate  float64 `json:"passiveIncomeRate"`
}

// Breakdown holds the six category scores
type Breakdown struct {
	CashFlow       int `json:"cashFlow"`       // max 30
	FixedCost      int `json:"fixedCost"`      // max 25
	AssetDebt      int `json:"assetDebt"`      // max 18
	PassiveIncome  int `json:"passiveIncome"`  // max 12
	SelfInvestment int `json:"selfInvestment"` // max 10
	Waste          int `json:"waste"`          // max 5
}

// Total sums all category scores.
func (b Breakdown) Total() int {
	return b.CashFlow + b.FixedCost + b.AssetDebt + b.PassiveIncome + b.SelfInvestment + b.Waste
}

// DiagnoseResult is the outcome of scoring an InputRecord
type DiagnoseResult struct {
	Score     int       `json:"score"`
	Rank      Rank      `json:"rank"`
	Breakdown Breakdown `json:"breakdown"`
	Ratios    Ratios    `json:"ratios"`
}

// RatioAssessment is one ratio with whether it meets its healthy threshold
type RatioAssessment struct {
	Value float64 `json:"value"`
	Good  bool    `json:"good"`
}

// RatioAnalysis assesses each ratio for the detailed result
type RatioAnalysis struct {
	SavingsRate        RatioAssessment `json:"savingsRate"`
	FixedCostRate      RatioAssessment `json:"fixedCostRate"`
	SelfInvestmentRate RatioAssessment `json:"selfInvestmentRate"`
	PassiveIncomeRate  RatioAssessment `json:"passiveIncomeRate"`
	WasteRate          RatioAssessment `json:"wasteRate"`
}
