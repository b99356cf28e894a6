package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/app"
	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/cli"
	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/model"
)

func walletCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Manage wallets",
	}
	cmd.AddCommand(walletAddCmd())
	cmd.AddCommand(walletListCmd())
	cmd.AddCommand(walletBalanceCmd())
	cmd.AddCommand(walletDeleteCmd())
	return cmd
}

func walletAddCmd() *cobra.Command {
	var (
		balance float64
		color   string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				wallet := model.NewWallet(args[0], balance, color)
				if err := a.Wallets().Create(ctx, wallet); err != nil {
					return err
				}
				cmd.Println(cli.SuccessStyle.Render("Created wallet ") + wallet.ID)
				return nil
			})
		},
	}
	cmd.Flags().Float64Var(&balance, "balance", 0, "starting balance")
	cmd.Flags().StringVar(&color, "color", "", "display color tag")
	return cmd
}

func walletListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List wallets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				wallets, err := a.Wallets().List(ctx)
				if err != nil {
					return err
				}
				if len(wallets) == 0 {
					cmd.Println(cli.SubtleStyle.Render("No wallets yet."))
					return nil
				}

				cmd.Println(cli.TitleStyle.Render("Wallets"))
				for _, w := range wallets {
					cmd.Printf("%s  %s  %s\n", w.ID, w.Name, cli.FormatAmount(w.Balance))
				}
				return nil
			})
		},
	}
}

func walletBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <id>",
		Short: "Show a wallet's net balance (starting balance plus income minus expenses)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				net, err := a.Wallets().NetBalance(ctx, args[0])
				if err != nil {
					return err
				}
				cmd.Printf("Net balance: %s\n", cli.FormatAmount(net))
				return nil
			})
		},
	}
}

func walletDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a wallet (its transactions are kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Wallets().Delete(ctx, args[0]); err != nil {
					return err
				}
				cmd.Println(fmt.Sprintf("Deleted wallet %s", args[0]))
				return nil
			})
		},
	}
}
