package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/trift/moneycheck/internal/diagnosis"
	"github.com/trift/moneycheck/internal/models"
	"github.com/trift/moneycheck/internal/utils"
)

func newDiagnoseCommand() *cobra.Command {
	raw := make(map[string]*string, len(models.Fields))

	cmd := &cobra.Command{
		Use:   "diagnose",
		Short: "Score a set of monthly figures without starting the server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var data models.InputRecord
			for _, field := range models.Fields {
				v, err := utils.ParseAmount(*raw[field])
				if err != nil {
					return fmt.Errorf("--%s: %w", flagName(field), err)
				}
				data.Set(field, v)
			}
			renderReport(cmd.OutOrStdout(), data)
			return nil
		},
	}

	for _, field := range models.Fields {
		raw[field] = cmd.Flags().String(flagName(field), "0", "amount for "+field)
	}
	return cmd
}

// flagName turns laborIncome into labor-income.
func flagName(field string) string {
	out := make([]rune, 0, len(field)+2)
	for _, r := range field {
		if r >= 'A' && r <= 'Z' {
			out = append(out, '-', r+('a'-'A'))
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

func amount(v float64) string {
	return humanize.CommafWithDigits(v, 0)
}

func percent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

func renderReport(w io.Writer, data models.InputRecord) {
	result := diagnosis.Diagnose(data)
	ttf := diagnosis.CalculateTimeToFreedom(data)
	grouped := diagnosis.GroupAdviceByDifficulty(diagnosis.GenerateAdvice(data, result))

	fmt.Fprintf(w, "Score: %d/100  Rank: %s\n\n", result.Score, result.Rank)

	b := result.Breakdown
	fmt.Fprintln(w, "Breakdown")
	fmt.Fprintf(w, "  Cash flow        %2d/30\n", b.CashFlow)
	fmt.Fprintf(w, "  Fixed cost       %2d/25\n", b.FixedCost)
	fmt.Fprintf(w, "  Assets and debt  %2d/18\n", b.AssetDebt)
	fmt.Fprintf(w, "  Passive income   %2d/12\n", b.PassiveIncome)
	fmt.Fprintf(w, "  Self-investment  %2d/10\n", b.SelfInvestment)
	fmt.Fprintf(w, "  Waste            %2d/5\n\n", b.Waste)

	r := result.Ratios
	fmt.Fprintln(w, "Ratios")
	fmt.Fprintf(w, "  Savings rate          %s\n", percent(r.SavingsRate))
	fmt.Fprintf(w, "  Fixed cost rate       %s\n", percent(r.FixedCostRate))
	fmt.Fprintf(w, "  Waste rate            %s\n", percent(r.WasteRate))
	fmt.Fprintf(w, "  Self-investment rate  %s\n", percent(r.SelfInvestmentRate))
	fmt.Fprintf(w, "  Passive income rate   %s\n\n", percent(r.PassiveIncomeRate))

	fmt.Fprintln(w, "Time to financial independence")
	fmt.Fprintf(w, "  Route 1 (passive income %s of %s): %s\n",
		amount(ttf.Route1.CurrentPassiveIncome), amount(ttf.Route1.RequiredPassiveIncome), ttf.Route1.Message)
	fmt.Fprintf(w, "  Route 2 (assets %s of %s): %s\n",
		amount(ttf.Route2.CurrentAsset), amount(ttf.Route2.RequiredAsset), ttf.Route2.Message)
	if ttf.FasterRoute != nil {
		fmt.Fprintf(w, "  Faster route: %d\n", *ttf.FasterRoute)
	}

	sections := []struct {
		title  string
		advice []models.Advice
	}{
		{"Start now", grouped.Easy},
		{"With some effort", grouped.Medium},
		{"For a real change", grouped.Hard},
	}
	for _, s := range sections {
		if len(s.advice) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s\n", s.title)
		for _, a := range s.advice {
			fmt.Fprintf(w, "  [%s] %s: %s\n", a.Category, a.Action, a.Impact)
		}
	}

	fmt.Fprintln(w, "\nThis diagnosis is for self-assessment only and is not financial or investment advice.")
}
