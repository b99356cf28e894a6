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

func goalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage savings goals",
	}
	cmd.AddCommand(goalAddCmd())
	cmd.AddCommand(goalListCmd())
	cmd.AddCommand(goalSaveCmd())
	cmd.AddCommand(goalDeleteCmd())
	return cmd
}

func goalAddCmd() *cobra.Command {
	var (
		target   float64
		deadline string
		priority int
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a savings goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				goal := model.NewGoal(args[0], target, priority)
				goal.Deadline = deadline
				if err := a.Goals().Create(ctx, goal); err != nil {
					return err
				}
				cmd.Println(cli.SuccessStyle.Render("Created goal ") + goal.ID)
				return nil
			})
		},
	}
	cmd.Flags().Float64Var(&target, "target", 0, "target amount")
	cmd.Flags().StringVar(&deadline, "deadline", "", "deadline (yyyy-MM-dd), optional")
	cmd.Flags().IntVar(&priority, "priority", 5, "priority (1 = most urgent)")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func goalListCmd() *cobra.Command {
	var priorityOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List goals with their completion",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				var (
					goals []model.Goal
					err   error
				)
				if priorityOnly {
					goals, err = a.GoalProgress().PriorityGoals(ctx)
				} else {
					goals, err = a.Goals().List(ctx)
				}
				if err != nil {
					return err
				}
				if len(goals) == 0 {
					cmd.Println(cli.SubtleStyle.Render("No goals yet."))
					return nil
				}

				cmd.Println(cli.TitleStyle.Render("Goals"))
				for _, g := range goals {
					goal := g
					pct := a.GoalProgress().CompletionPercentage(&goal)
					cmd.Printf("%s  p%d  %s of %s (%s)  %s\n",
						g.ID, g.Priority,
						cli.FormatAmount(g.Balance), cli.FormatAmount(g.Target),
						cli.FormatPercentage(pct), g.Name)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&priorityOnly, "priority", false, "only incomplete priority goals, most urgent first")
	return cmd
}

func goalSaveCmd() *cobra.Command {
	var amount float64

	cmd := &cobra.Command{
		Use:   "save <id>",
		Short: "Add to a goal's saved balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				goal, err := a.Goals().Get(ctx, args[0])
				if err != nil {
					return err
				}
				if goal == nil {
					return common.NewUserError(fmt.Sprintf("goal %s does not exist", args[0]), nil)
				}

				goal.Balance += amount
				if err := a.Goals().Update(ctx, goal); err != nil {
					return err
				}

				pct := a.GoalProgress().CompletionPercentage(goal)
				cmd.Printf("Saved %s, now at %s\n", cli.FormatAmount(amount), cli.FormatPercentage(pct))
				return nil
			})
		},
	}
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount to add")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func goalDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Goals().Delete(ctx, args[0]); err != nil {
					return err
				}
				cmd.Printf("Deleted goal %s\n", args[0])
				return nil
			})
		},
	}
}
