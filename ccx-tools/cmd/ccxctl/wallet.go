package main

import (
	"ccx-rpc/ccx-base/cmd"
	"ccx-rpc/ccx-client/ccx"
)

func newWalletCmd(a *app) *cmd.Command {
	wallet := cmd.New("wallet", "query and operate the wallet", "", nil)
	wallet.AddCommand(
		cmd.New("status", "show the walletd sync status", "ccxctl wallet status", func(c *cmd.Command) error {
			result, err := a.client.Status(c.Context())
			if err != nil {
				return err
			}
			return printJSON(c.Out(), result)
		}),
		cmd.New("balance [address]", "show the wallet balance, or the balance of a walletd address",
			"ccxctl wallet balance\nccxctl wallet balance ccx7...", func(c *cmd.Command) error {
				if len(c.Args()) == 0 {
					result, err := a.client.Balance(c.Context())
					if err != nil {
						return err
					}
					return printAmounts(c.Out(), result,
						[]string{"available", "locked"},
						[]string{"available_balance", "locked_amount"})
				}

				result, err := a.client.GetBalance(c.Context(), c.Args()[0])
				if err != nil {
					return err
				}
				return printAmounts(c.Out(), result,
					[]string{"available", "locked"},
					[]string{"availableBalance", "lockedAmount"})
			}),
		cmd.New("addresses", "list the walletd addresses", "ccxctl wallet addresses", func(c *cmd.Command) error {
			result, err := a.client.GetAddresses(c.Context())
			if err != nil {
				return err
			}
			return printJSON(c.Out(), result)
		}),
		cmd.New("height", "show the wallet sync height", "ccxctl wallet height", func(c *cmd.Command) error {
			result, err := a.client.Height(c.Context())
			if err != nil {
				return err
			}
			return printInt(c.Out(), result, "height")
		}),
		newSendCmd(a),
	)
	return wallet
}

func newSendCmd(a *app) *cmd.Command {
	var (
		message   string
		paymentID string
		mixIn     int64
		fee       string
		walletd   bool
	)

	send := cmd.New("send <address> <amount>", "send CCX, the amount and fee are in CCX",
		"ccxctl wallet send ccx7... 12.5 --message hello", func(c *cmd.Command) error {
			amount, err := ccx.ParseAmount(c.Args()[1])
			if err != nil {
				return err
			}

			transfers := []ccx.Transfer{{
				Address: c.Args()[0],
				Amount:  amount,
				Message: message,
			}}

			var rawFee *int64
			if fee != "" {
				v, err := ccx.ParseAmount(fee)
				if err != nil {
					return err
				}
				rawFee = ccx.Int(v)
			}

			if walletd {
				result, err := a.client.SendTransaction(c.Context(), ccx.TransactionOptions{
					Transfers: transfers,
					PaymentID: paymentID,
					MixIn:     ccx.Int(mixIn),
					Fee:       rawFee,
				})
				if err != nil {
					return err
				}
				return printJSON(c.Out(), result)
			}

			result, err := a.client.Send(c.Context(), ccx.SendOptions{
				Transfers: transfers,
				PaymentID: paymentID,
				MixIn:     ccx.Int(mixIn),
				Fee:       rawFee,
			})
			if err != nil {
				return err
			}
			return printJSON(c.Out(), result)
		}).ExactArgs(2)

	flags := send.LocalFlags()
	flags.StringVarP(&message, "message", "m", "", "message attached to the transfer")
	flags.StringVar(&paymentID, "payment-id", "", "64-digit hex payment id")
	flags.Int64Var(&mixIn, "mixin", ccx.MinMixIn, "ring size")
	flags.StringVar(&fee, "fee", "", "fee in CCX, derived from the message length when empty")
	flags.BoolVar(&walletd, "walletd", false, "send through the walletd sendTransaction method")
	return send
}
