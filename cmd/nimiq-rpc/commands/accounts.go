package commands

import (
	"github.com/spf13/cobra"

	"github.com/nimiq-community/go-nimiq-rpc/config"
	"github.com/nimiq-community/go-nimiq-rpc/libs/log"
	"github.com/nimiq-community/go-nimiq-rpc/types"
)

// MakeAccountsCommand returns the command that lists the node's accounts.
func MakeAccountsCommand(conf *config.Config, logger log.Logger) *cobra.Command {
	var create bool

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List the accounts held by the node's wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(conf, logger)
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(cmd.Context(), conf)
			defer cancel()

			if create {
				wallet, err := c.CreateAccount(ctx)
				if err != nil {
					return err
				}
				logger.Info("created account", "address", wallet.Address)
				return printResult(cmd.OutOrStdout(), conf.Output, wallet)
			}

			accounts, err := c.Accounts(ctx)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), conf.Output, accounts)
		},
	}
	cmd.Flags().BoolVar(&create, "create", false, "create a new account in the node's wallet")
	return cmd
}

// MakeAccountCommand returns the command that shows a single account.
func MakeAccountCommand(conf *config.Config, logger log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "account <address>",
		Short: "Show the details of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := types.ParseAddress(args[0])
			if err != nil {
				return err
			}
			c, err := newClient(conf, logger)
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(cmd.Context(), conf)
			defer cancel()

			account, err := c.GetAccount(ctx, addr.String())
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), conf.Output, account)
		},
	}
}

// Balance is the output of the balance command.
type Balance struct {
	Address string     `json:"address"`
	Luna    types.Luna `json:"luna"`
	NIM     string     `json:"nim"`
}

// MakeBalanceCommand returns the command that shows an account's balance.
func MakeBalanceCommand(conf *config.Config, logger log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "balance <address>",
		Short: "Show the balance of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := types.ParseAddress(args[0])
			if err != nil {
				return err
			}
			c, err := newClient(conf, logger)
			if err != nil {
				return err
			}
			ctx, cancel := requestContext(cmd.Context(), conf)
			defer cancel()

			balance, err := c.GetBalance(ctx, addr.String())
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), conf.Output, Balance{
				Address: addr.String(),
				Luna:    balance,
				NIM:     balance.FormatNIM(),
			})
		},
	}
}
