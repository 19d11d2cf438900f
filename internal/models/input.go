package models

// InputRecord holds the seven amounts collected by the questionnaire.
// Income and expense fields are monthly figures; Asset and Debt are balances.
type InputRecord struct {
	LaborIncome    float64 `json:"laborIncome" validate:"gte=0,lte=1000000000000000"`
	PassiveIncome  float64 `json:"passiveIncome" validate:"gte=0,lte=1000000000000000"`
	FixedCost      float64 `json:"fixedCost" validate:"gte=0,lte=1000000000000000"`
	Waste          float64 `json:"waste" validate:"gte=0,lte=1000000000000000"`
	SelfInvestment float64 `json:"selfInvestment" validate:"gte=0,lte=1000000000000000"`
	Asset          float64 `json:"asset" validate:"gte=0,lte=1000000000000000"`
	Debt           float64 `json:"debt" validate:"gte=0,lte=1000000000000000"`
}

// Field names as stored in a session, in questionnaire order.
const (
	FieldLaborIncome    = "laborIncome"
	FieldPassiveIncome  = "passiveIncome"
	FieldFixedCost      = "fixedCost"
	FieldWaste          = "waste"
	FieldSelfInvestment = "selfInvestment"
	FieldAsset          = "asset"
	FieldDebt           = "debt"
)

// Fields lists every InputRecord field name.
var Fields = []string{
	FieldLaborIncome,
	FieldPassiveIncome,
	FieldFixedCost,
	FieldWaste,
	FieldSelfInvestment,
	FieldAsset,
	FieldDebt,
}

// TotalIncome is labor plus passive income.
func (r InputRecord) TotalIncome() float64 {
	return r.LaborIncome + r.PassiveIncome
}

// TotalExpense is fixed cost plus waste plus self-investment.
func (r InputRecord) TotalExpense() float64 {
	return r.FixedCost + r.Waste + r.SelfInvestment
}

// Get returns the value stored under a field name.
func (r InputRecord) Get(field string) (float64, bool) {
	switch field {
	case FieldLaborIncome:
		return r.LaborIncome, true
	case FieldPassiveIncome:
		return r.PassiveIncome, true
	case FieldFixedCost:
		return r.FixedCost, true
	case FieldWaste:
		return r.Waste, true
	case FieldSelfInvestment:
		return r.SelfInvestment, true
	case FieldAsset:
		return r.Asset, true
	case FieldDebt:
		return r.Debt, true
	}
	return 0, false
}

// Set writes value into the named field. It reports false for unknown names.
func (r *InputRecord) Set(field string, value float64) bool {
	switch field {
	case FieldLaborIncome:
		r.LaborIncome = value
	case FieldPassiveIncome:
		r.PassiveIncome = value
	case FieldFixedCost:
		r.FixedCost = value
	case FieldWaste:
		r.Waste = value
	case FieldSelfInvestment:
		r.SelfInvestment = value
	case FieldAsset:
		r.Asset = value
	case FieldDebt:
		r.Debt = value
	default:
		return false
	}
	return true
}
