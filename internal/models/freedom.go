package models

// PassiveIncomeRoute reports how far passive income is from covering living cost.
type PassiveIncomeRoute struct {
	Achievable            bool    `json:"achievable"`
	Years                 int     `json:"years"`
	Months                int     `json:"months"`
	CurrentPassiveIncome  float64 `json:"currentPassiveIncome"`
	RequiredPassiveIncome float64 `json:"requiredPassiveIncome"`
	Message               string  `json:"message"`
}

// AssetRoute reports how long savings take to reach the required asset balance.
type AssetRoute struct {
	Achievable    bool    `json:"achievable"`
	Years         int     `json:"years"`
	Months        int     `json:"months"`
	CurrentAsset  float64 `json:"currentAsset"`
	RequiredAsset float64 `json:"requiredAsset"`
	Message       string  `json:"message"`
}

// Route identifiers for TimeToFreedom.FasterRoute.
const (
	RoutePassiveIncome = 1
	RouteAsset         = 2
)

// TimeToFreedom compares both routes. FasterRoute is nil when no route is preferred.
type TimeToFreedom struct {
	Route1      PassiveIncomeRoute `json:"route1"`
	Route2      AssetRoute         `json:"route2"`
	FasterRoute *int               `json:"fasterRoute"`
}
