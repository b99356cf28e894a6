package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/app"
	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/cli"
	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/model"
)

func transactionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Manage transactions",
	}
	cmd.AddCommand(transactionAddCmd())
	cmd.AddCommand(transactionListCmd())
	cmd.AddCommand(transactionDeleteCmd())
	return cmd
}

func transactionAddCmd() *cobra.Command {
	var (
		amount     float64
		income     bool
		walletID   string
		categoryID string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Record a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				txn := model.NewTransaction(args[0], amount, income, walletID, categoryID)
				if err := a.Transactions().Create(ctx, txn); err != nil {
					return err
				}
				cmd.Println(cli.SuccessStyle.Render("Recorded transaction ") + txn.ID)
				return nil
			})
		},
	}
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount (always positive)")
	cmd.Flags().BoolVar(&income, "income", false, "record as income instead of expense")
	cmd.Flags().StringVar(&walletID, "wallet", "", "wallet id")
	cmd.Flags().StringVar(&categoryID, "category", "", "category id")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("wallet")
	return cmd
}

func transactionListCmd() *cobra.Command {
	var (
		searchID    string
		walletID    string
		categoryID  string
		minAmount   float64
		maxAmount   float64
		dateFrom    string
		dateTo      string
		onlyIncome  bool
		onlyExpense bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions matching the given filters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				builder := model.NewCriteria()
				if searchID != "" {
					builder.WithTransactionID(searchID)
				}
				if walletID != "" {
					builder.WithWallet(walletID)
				}
				if categoryID != "" {
					builder.WithCategory(categoryID)
				}
				if cmd.Flags().Changed("min") {
					builder.WithMinAmount(minAmount)
				}
				if cmd.Flags().Changed("max") {
					builder.WithMaxAmount(maxAmount)
				}
				if dateFrom != "" {
					builder.WithDateFrom(dateFrom)
				}
				if dateTo != "" {
					builder.WithDateTo(dateTo)
				}
				if onlyIncome {
					builder.WithIncome(model.FlagIncome)
				}
				if onlyExpense {
					builder.WithIncome(model.FlagExpense)
				}

				txns, err := a.Transactions().List(ctx, builder.Build())
				if err != nil {
					return err
				}
				if len(txns) == 0 {
					cmd.Println(cli.SubtleStyle.Render("No matching transactions."))
					return nil
				}

				cmd.Println(cli.TitleStyle.Render("Transactions"))
				for _, txn := range txns {
					direction := "-"
					if txn.IsIncome() {
						direction = "+"
					}
					cmd.Printf("%s  %s  %s%s  %s\n",
						txn.ID, txn.CreateTime, direction, cli.FormatAmount(txn.Amount), txn.Name)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&searchID, "id", "", "exact transaction id")
	cmd.Flags().StringVar(&walletID, "wallet", "", "filter by wallet id")
	cmd.Flags().StringVar(&categoryID, "category", "", "filter by category id")
	cmd.Flags().Float64Var(&minAmount, "min", 0, "minimum amount (inclusive)")
	cmd.Flags().Float64Var(&maxAmount, "max", 0, "maximum amount (inclusive)")
	cmd.Flags().StringVar(&dateFrom, "from", "", "earliest create time (inclusive, yyyy-MM-dd or yyyy-MM-dd HH:mm:ss)")
	cmd.Flags().StringVar(&dateTo, "to", "", "latest create time (inclusive)")
	cmd.Flags().BoolVar(&onlyIncome, "income", false, "only income")
	cmd.Flags().BoolVar(&onlyExpense, "expense", false, "only expenses")
	cmd.MarkFlagsMutuallyExclusive("income", "expense")
	return cmd
}

func transactionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Transactions().Delete(ctx, args[0]); err != nil {
					return err
				}
				cmd.Printf("Deleted transaction %s\n", args[0])
				return nil
			})
		},
	}
}
