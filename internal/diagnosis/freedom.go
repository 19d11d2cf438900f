package diagnosis

import (
	"fmt"
	"math"
	"strconv"

	"github.com/trift/moneycheck/internal/models"
)

const (
	// requiredAssetYears is how many years of living cost the asset route
	// must cover, i.e. a 5% withdrawal yield.
	requiredAssetYears = 20
	monthsPerYear      = 12

	MessageAchieved         = "already achieved"
	MessageCashFlowFirst    = "cash-flow improvement needed first"
	messagePassiveIncomeGap = "need an additional %s per month in passive income"
	messageAccumulationTime = "%d years %d months"
)

// CalculateTimeToFreedom projects both routes to financial independence
// and names the faster one when both are achievable.
func CalculateTimeToFreedom(data models.InputRecord) models.TimeToFreedom {
	monthlySavings := data.TotalIncome() - data.TotalExpense()
	monthlyLivingCost := data.FixedCost + data.Waste + data.SelfInvestment

	route1 := passiveIncomeRoute(data.PassiveIncome, monthlyLivingCost)
	route2 := assetRoute(data.Asset, monthlyLivingCost, monthlySavings)

	return models.TimeToFreedom{
		Route1:      route1,
		Route2:      route2,
		FasterRoute: fasterRoute(route1, route2),
	}
}

func passiveIncomeRoute(passiveIncome, monthlyLivingCost float64) models.PassiveIncomeRoute {
	route := models.PassiveIncomeRoute{
		Achievable:            true,
		CurrentPassiveIncome:  passiveIncome,
		RequiredPassiveIncome: monthlyLivingCost,
	}

	if passiveIncome >= monthlyLivingCost {
		route.Message = MessageAchieved
		return route
	}

	gap := monthlyLivingCost - passiveIncome
	route.Message = fmt.Sprintf(messagePassiveIncomeGap, formatAmount(gap))
	return route
}

func assetRoute(asset, monthlyLivingCost, monthlySavings float64) models.AssetRoute {
	requiredAsset := monthlyLivingCost * monthsPerYear * requiredAssetYears
	route := models.AssetRoute{
		CurrentAsset:  asset,
		RequiredAsset: requiredAsset,
	}

	if asset >= requiredAsset {
		route.Achievable = true
		route.Message = MessageAchieved
		return route
	}

	if monthlySavings <= 0 {
		route.Message = MessageCashFlowFirst
		return route
	}

	gap := requiredAsset - asset
	requiredMonths := int(math.Ceil(gap / monthlySavings))
	route.Achievable = true
	route.Years = requiredMonths / monthsPerYear
	route.Months = requiredMonths % monthsPerYear
	route.Message = fmt.Sprintf(messageAccumulationTime, route.Years, route.Months)
	return route
}

// fasterRoute never returns route 1 while route 1 is still in progress;
// only route 2 durations are compared against the achieved states.
func fasterRoute(route1 models.PassiveIncomeRoute, route2 models.AssetRoute) *int {
	if !route1.Achievable || !route2.Achievable {
		return nil
	}

	var faster int
	switch {
	case route1.Message == MessageAchieved:
		faster = models.RoutePassiveIncome
	case route2.Message == MessageAchieved:
		faster = models.RouteAsset
	case route2.Years > 0 || route2.Months > 0:
		faster = models.RouteAsset
	default:
		return nil
	}
	return &faster
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
