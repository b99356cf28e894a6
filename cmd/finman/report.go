package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/app"
	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/cli"
)

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show overall totals, budget status, and goal progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				income, err := a.Transactions().TotalIncome(ctx)
				if err != nil {
					return err
				}
				expenses, err := a.Transactions().TotalExpenses(ctx)
				if err != nil {
					return err
				}

				cmd.Println(cli.TitleStyle.Render("Overview"))
				cmd.Printf("Income:   %s\n", cli.FormatAmount(income))
				cmd.Printf("Expenses: %s\n", cli.FormatAmount(expenses))
				cmd.Printf("Net:      %s\n", cli.FormatAmount(income-expenses))

				budgets, err := a.Budgets().List(ctx)
				if err != nil {
					return err
				}
				if len(budgets) > 0 {
					cmd.Println(cli.TitleStyle.Render("Budgets"))
					for _, b := range budgets {
						budget := b
						summary, sumErr := a.BudgetCalculation().Summarize(ctx, &budget)
						if sumErr != nil {
							return sumErr
						}
						cmd.Printf("%-24s %s of %s (%s)\n",
							b.Name,
							cli.FormatAmount(summary.TotalSpent),
							cli.FormatAmount(b.LimitAmount),
							cli.FormatPercentage(summary.Percentage))
					}
				}

				goals, err := a.GoalProgress().PriorityGoals(ctx)
				if err != nil {
					return err
				}
				if len(goals) > 0 {
					cmd.Println(cli.TitleStyle.Render("Priority goals"))
					for _, g := range goals {
						goal := g
						pct := a.GoalProgress().CompletionPercentage(&goal)
						cmd.Printf("%-24s %s of %s (%s)\n",
							g.Name,
							cli.FormatAmount(g.Balance),
							cli.FormatAmount(g.Target),
							cli.FormatPercentage(pct))
					}
				}
				return nil
			})
		},
	}
}
