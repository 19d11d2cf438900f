// Package wizard models the questionnaire as a linear sequence of steps.
package wizard

import (
	"errors"
	"fmt"
	"math"

	"github.com/trift/moneycheck/internal/models"
)

var ErrUnknownStep = errors.New("unknown step")

// Step is a position in the questionnaire. Start and Result bracket the input steps.
type Step int

const (
	Start Step = iota
	LaborIncome
	PassiveIncome
	FixedCost
	Waste
	SelfInvestment
	Asset
	Debt
	Result
)

// TotalSteps is the number of input steps.
const TotalSteps = int(Debt)

type stepInfo struct {
	slug        string
	field       string
	title       string
	description string
}

var steps = map[Step]stepInfo{
	Start: {slug: "start"},
	LaborIncome: {
		slug:        "labor-income",
		field:       models.FieldLaborIncome,
		title:       "Labor income",
		description: "Salary or business income you earn by working. Enter the total of all sources, before tax and insurance.",
	},
	PassiveIncome: {
		slug:        "passive-income",
		field:       models.FieldPassiveIncome,
		title:       "Passive income",
		description: "Income that arrives without your labor, such as dividends, interest or rent.",
	},
	FixedCost: {
		slug:        "fixed-cost",
		field:       models.FieldFixedCost,
		title:       "Fixed cost",
		description: "Rent, utilities, phone, insurance and subscriptions paid every month.",
	},
	Waste: {
		slug:        "waste",
		field:       models.FieldWaste,
		title:       "Waste",
		description: "Impulse purchases and spending you would not miss.",
	},
	SelfInvestment: {
		slug:        "self-investment",
		field:       models.FieldSelfInvestment,
		title:       "Self-investment",
		description: "Books, courses and certifications that grow your earning power.",
	},
	Asset: {
		slug:        "asset",
		field:       models.FieldAsset,
		title:       "Assets",
		description: "Total of savings, investments and other assets you hold today.",
	},
	Debt: {
		slug:        "debt",
		field:       models.FieldDebt,
		title:       "Debt",
		description: "Total outstanding loans, including mortgage, car and card debt.",
	},
	Result: {slug: "result"},
}

// Parse resolves an input step from its URL slug.
func Parse(slug string) (Step, error) {
	for s := LaborIncome; s <= Debt; s++ {
		if steps[s].slug == slug {
			return s, nil
		}
	}
	return Start, fmt.Errorf("%w: %s", ErrUnknownStep, slug)
}

// InputSteps returns the input steps in order.
func InputSteps() []Step {
	out := make([]Step, 0, TotalSteps)
	for s := LaborIncome; s <= Debt; s++ {
		out = append(out, s)
	}
	return out
}

func (s Step) String() string { return steps[s].slug }

// Field is the InputRecord field the step fills. Empty for Start and Result.
func (s Step) Field() string { return steps[s].field }

func (s Step) Title() string { return steps[s].title }

func (s Step) Description() string { return steps[s].description }

// IsInput reports whether the step collects a value.
func (s Step) IsInput() bool { return s >= LaborIncome && s <= Debt }

// Next moves forward one step, stopping at Result.
func (s Step) Next() Step {
	if s >= Result {
		return Result
	}
	return s + 1
}

// Prev moves back one step, stopping at Start.
func (s Step) Prev() Step {
	if s <= Start {
		return Start
	}
	return s - 1
}

// Progress describes how far through the questionnaire a step is
type Progress struct {
	Current int `json:"current"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// Progress reports the step's position among the input steps.
func (s Step) Progress() Progress {
	current := int(s)
	if current > TotalSteps {
		current = TotalSteps
	}
	return Progress{
		Current: current,
		Total:   TotalSteps,
		Percent: int(math.Round(float64(current) / float64(TotalSteps) * 100)),
	}
}
