package ccx

import (
	"context"
	"encoding/json"
)

// Legacy wallet rpc, served by concealwallet.

// Outputs returns the number of unlocked outputs.
func (c *Client) Outputs(ctx context.Context) (json.RawMessage, error) {
	return c.walletRPC(ctx, "get_outputs", nil)
}

// Height returns the wallet's sync height.
func (c *Client) Height(ctx context.Context) (json.RawMessage, error) {
	return c.walletRPC(ctx, "get_height", nil)
}

// Balance returns the available and locked balance.
func (c *Client) Balance(ctx context.Context) (json.RawMessage, error) {
	return c.walletRPC(ctx, "getbalance", nil)
}

// Messages returns the messages attached to the wallet's transactions.
func (c *Client) Messages(ctx context.Context, opts MessagesOptions) (json.RawMessage, error) {
	if err := checkOptionalNonNegative("firstTxId", opts.FirstTxID); err != nil {
		return nil, err
	}
	if err := checkOptionalNonNegative("txLimit", opts.TxLimit); err != nil {
		return nil, err
	}

	return c.walletRPC(ctx, "get_messages", &messagesParams{
		FirstTxID: opts.FirstTxID,
		TxLimit:   opts.TxLimit,
	})
}

// Payments returns the incoming payments carrying paymentID.
func (c *Client) Payments(ctx context.Context, paymentID string) (json.RawMessage, error) {
	if err := checkHex64("paymentId", paymentID); err != nil {
		return nil, err
	}
	return c.walletRPC(ctx, "get_payments", &paymentsParams{PaymentID: paymentID})
}

// Transfers returns the wallet's transfer history.
func (c *Client) Transfers(ctx context.Context) (json.RawMessage, error) {
	return c.walletRPC(ctx, "get_transfers", nil)
}

// Store saves the wallet file.
func (c *Client) Store(ctx context.Context) (json.RawMessage, error) {
	return c.walletRPC(ctx, "store", nil)
}

// Reset rescans the blockchain from the start.
func (c *Client) Reset(ctx context.Context) (json.RawMessage, error) {
	return c.walletRPC(ctx, "reset", nil)
}

// Optimize fuses small outputs together.
func (c *Client) Optimize(ctx context.Context) (json.RawMessage, error) {
	return c.walletRPC(ctx, "optimize", nil)
}

// Send creates and relays a transfer. MixIn defaults to 2, UnlockHeight to 0
// and Fee to MessageFee(opts.Transfers).
func (c *Client) Send(ctx context.Context, opts SendOptions) (json.RawMessage, error) {
	if err := checkTransfers(opts.Transfers); err != nil {
		return nil, err
	}
	if err := checkOptionalHex64("paymentId", opts.PaymentID); err != nil {
		return nil, err
	}
	mixIn, err := resolveMixIn(opts.MixIn)
	if err != nil {
		return nil, err
	}
	unlock, err := resolveUnlockHeight(opts.UnlockHeight)
	if err != nil {
		return nil, err
	}
	fee, err := resolveFee(opts.Fee, opts.Transfers, MessageFee)
	if err != nil {
		return nil, err
	}

	return c.walletRPC(ctx, "transfer", &transferParams{
		Destinations: copyTransfers(opts.Transfers),
		Mixin:        mixIn,
		Fee:          fee,
		UnlockTime:   unlock,
		PaymentID:    opts.PaymentID,
	})
}
