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

func categoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage transaction categories",
	}
	cmd.AddCommand(categoryAddCmd())
	cmd.AddCommand(categoryListCmd())
	cmd.AddCommand(categoryDeleteCmd())
	return cmd
}

func categoryAddCmd() *cobra.Command {
	var (
		description  string
		categoryType string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a custom category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				existing, err := a.Categories().GetByName(ctx, args[0])
				if err != nil {
					return err
				}
				if existing != nil {
					return common.NewUserError(fmt.Sprintf("category %q already exists", args[0]), nil)
				}

				category := model.NewCategory(args[0], description, model.CategoryType(categoryType))
				if err := a.Categories().Create(ctx, category); err != nil {
					return err
				}
				cmd.Println(cli.SuccessStyle.Render("Created category ") + category.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&description, "description", "", "category description")
	cmd.Flags().StringVar(&categoryType, "type", string(model.CategoryTypeExpense), "INCOME or EXPENSE")
	return cmd
}

func categoryListCmd() *cobra.Command {
	var categoryType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				var (
					categories []model.Category
					err        error
				)
				if categoryType != "" {
					categories, err = a.Categories().ListByType(ctx, model.CategoryType(categoryType))
				} else {
					categories, err = a.Categories().List(ctx)
				}
				if err != nil {
					return err
				}

				cmd.Println(cli.TitleStyle.Render("Categories"))
				for _, c := range categories {
					marker := ""
					if c.Custom {
						marker = cli.SubtleStyle.Render(" (custom)")
					}
					cmd.Printf("%s  %-8s  %s%s\n", c.ID, c.Type, c.Name, marker)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&categoryType, "type", "", "filter by type (INCOME or EXPENSE)")
	return cmd
}

func categoryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Categories().Delete(ctx, args[0]); err != nil {
					return err
				}
				cmd.Println(fmt.Sprintf("Deleted category %s", args[0]))
				return nil
			})
		},
	}
}
