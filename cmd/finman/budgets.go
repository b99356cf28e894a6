package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/app"
	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/cli"
	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/common"
	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/model"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage budgets",
	}
	cmd.AddCommand(budgetAddCmd())
	cmd.AddCommand(budgetListCmd())
	cmd.AddCommand(budgetStatusCmd())
	cmd.AddCommand(budgetCategoriesCmd())
	cmd.AddCommand(budgetDeleteCmd())
	return cmd
}

func budgetAddCmd() *cobra.Command {
	var (
		limit      float64
		period     string
		startDate  string
		endDate    string
		walletID   string
		categoryID string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				budget := model.NewBudget(args[0], limit, model.PeriodType(period))
				budget.StartDate = startDate
				budget.EndDate = endDate
				budget.WalletID = walletID
				budget.CategoryID = categoryID
				if err := a.Budgets().Create(ctx, budget); err != nil {
					return err
				}
				cmd.Println(cli.SuccessStyle.Render("Created budget ") + budget.ID)
				return nil
			})
		},
	}
	cmd.Flags().Float64Var(&limit, "limit", 0, "spending limit")
	cmd.Flags().StringVar(&period, "period", string(model.PeriodMonthly), "WEEKLY, MONTHLY, YEARLY, or CUSTOM")
	cmd.Flags().StringVar(&startDate, "start", "", "start date for CUSTOM budgets (yyyy-MM-dd)")
	cmd.Flags().StringVar(&endDate, "end", "", "end date for CUSTOM budgets (yyyy-MM-dd)")
	cmd.Flags().StringVar(&walletID, "wallet", "", "restrict to one wallet (empty means account-wide)")
	cmd.Flags().StringVar(&categoryID, "category", "", "restrict to one category")
	_ = cmd.MarkFlagRequired("limit")
	return cmd
}

func budgetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List budgets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				budgets, err := a.Budgets().List(ctx)
				if err != nil {
					return err
				}
				if len(budgets) == 0 {
					cmd.Println(cli.SubtleStyle.Render("No budgets yet."))
					return nil
				}

				cmd.Println(cli.TitleStyle.Render("Budgets"))
				for _, b := range budgets {
					cmd.Printf("%s  %-8s  limit %s  %s\n",
						b.ID, b.PeriodType, cli.FormatAmount(b.LimitAmount), b.Name)
				}
				return nil
			})
		},
	}
}

func budgetStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id>",
		Short: "Show spend against a budget's limit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				budget, err := a.Budgets().Get(ctx, args[0])
				if err != nil {
					return err
				}
				if budget == nil {
					return common.NewUserError(fmt.Sprintf("budget %s does not exist", args[0]), nil)
				}

				summary, err := a.BudgetCalculation().Summarize(ctx, budget)
				if err != nil {
					return err
				}

				cmd.Println(cli.TitleStyle.Render(budget.Name))
				cmd.Printf("Spent:     %s of %s (%s)\n",
					cli.FormatAmount(summary.TotalSpent),
					cli.FormatAmount(budget.LimitAmount),
					cli.FormatPercentage(summary.Percentage))
				cmd.Printf("Remaining: %s\n", cli.FormatAmount(summary.Remaining))
				return nil
			})
		},
	}
}

func budgetCategoriesCmd() *cobra.Command {
	var set []string

	cmd := &cobra.Command{
		Use:   "categories <id>",
		Short: "Show or replace a budget's category set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				if cmd.Flags().Changed("set") {
					budget, err := a.Budgets().Get(ctx, args[0])
					if err != nil {
						return err
					}
					if budget == nil {
						return common.NewUserError(fmt.Sprintf("budget %s does not exist", args[0]), nil)
					}
					if err := a.Budgets().UpdateWithCategories(ctx, budget, set); err != nil {
						return err
					}
					cmd.Println(cli.SuccessStyle.Render("Replaced category set"))
					return nil
				}

				ids, err := a.Budgets().CategoryIDs(ctx, args[0])
				if err != nil {
					return err
				}
				for _, id := range ids {
					cmd.Println(id)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringSliceVar(&set, "set", nil, "replace the associations with these category ids")
	return cmd
}

func budgetDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a budget and its category associations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Budgets().Delete(ctx, args[0]); err != nil {
					return err
				}
				cmd.Printf("Deleted budget %s\n", args[0])
				return nil
			})
		},
	}
}
