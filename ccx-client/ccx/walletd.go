package ccx

import (
	"context"
	"encoding/json"
)

// Wallet service rpc, served by walletd on the wallet port.

// ResetOrReplace resets the container, or replaces it with a view wallet
// when viewSecretKey is not empty.
func (c *Client) ResetOrReplace(ctx context.Context, viewSecretKey string) (json.RawMessage, error) {
	if err := checkOptionalHex64("viewSecretKey", viewSecretKey); err != nil {
		return nil, err
	}
	return c.walletRPC(ctx, "reset", &resetParams{ViewSecretKey: viewSecretKey})
}

// Status returns the sync status of the container.
func (c *Client) Status(ctx context.Context) (json.RawMessage, error) {
	return c.walletRPC(ctx, "getStatus", nil)
}

// GetBalance returns the balance of address.
func (c *Client) GetBalance(ctx context.Context, address string) (json.RawMessage, error) {
	if err := checkAddress("address", address); err != nil {
		return nil, err
	}
	return c.walletRPC(ctx, "getBalance", &addressParams{Address: address})
}

// CreateAddress adds a new address to the container.
func (c *Client) CreateAddress(ctx context.Context) (json.RawMessage, error) {
	return c.walletRPC(ctx, "createAddress", nil)
}

// DeleteAddress removes address from the container.
func (c *Client) DeleteAddress(ctx context.Context, address string) (json.RawMessage, error) {
	if err := checkAddress("address", address); err != nil {
		return nil, err
	}
	return c.walletRPC(ctx, "deleteAddress", &addressParams{Address: address})
}

// GetAddresses lists the addresses of the container.
func (c *Client) GetAddresses(ctx context.Context) (json.RawMessage, error) {
	return c.walletRPC(ctx, "getAddresses", nil)
}

// GetViewSecretKey returns the container's view secret key.
func (c *Client) GetViewSecretKey(ctx context.Context) (json.RawMessage, error) {
	return c.walletRPC(ctx, "getViewKey", nil)
}

// GetSpendKeys returns the spend key pair of address.
func (c *Client) GetSpendKeys(ctx context.Context, address string) (json.RawMessage, error) {
	if err := checkAddress("address", address); err != nil {
		return nil, err
	}
	return c.walletRPC(ctx, "getSpendKeys", &addressParams{Address: address})
}

// GetBlockHashes returns blockCount block hashes starting at firstBlockIndex.
func (c *Client) GetBlockHashes(ctx context.Context, firstBlockIndex, blockCount int64) (json.RawMessage, error) {
	if err := checkNonNegative("firstBlockIndex", firstBlockIndex); err != nil {
		return nil, err
	}
	if err := checkNonNegative("blockCount", blockCount); err != nil {
		return nil, err
	}
	return c.walletRPC(ctx, "getBlockHashes", &blockHashesParams{
		FirstBlockIndex: firstBlockIndex,
		BlockCount:      blockCount,
	})
}

// GetTransaction returns the transaction with the given hash.
func (c *Client) GetTransaction(ctx context.Context, hash string) (json.RawMessage, error) {
	if err := checkHex64("hash", hash); err != nil {
		return nil, err
	}
	return c.walletRPC(ctx, "getTransaction", &transactionHashParams{TransactionHash: hash})
}

// GetUnconfirmedTransactionHashes lists unconfirmed transactions, optionally
// only those touching addresses.
func (c *Client) GetUnconfirmedTransactionHashes(ctx context.Context, addresses []string) (json.RawMessage, error) {
	if err := checkOptionalAddresses("addresses", addresses); err != nil {
		return nil, err
	}
	return c.walletRPC(ctx, "getUnconfirmedTransactionHashes", &addressesParams{
		Addresses: copyStrings(addresses),
	})
}

// GetTransactionHashes lists transaction hashes grouped by block.
func (c *Client) GetTransactionHashes(ctx context.Context, q TransactionQuery) (json.RawMessage, error) {
	params, err := q.params()
	if err != nil {
		return nil, err
	}
	return c.walletRPC(ctx, "getTransactionHashes", params)
}

// GetTransactions lists transactions grouped by block.
func (c *Client) GetTransactions(ctx context.Context, q TransactionQuery) (json.RawMessage, error) {
	params, err := q.params()
	if err != nil {
		return nil, err
	}
	return c.walletRPC(ctx, "getTransactions", params)
}

func (q TransactionQuery) params() (*transactionQueryParams, error) {
	if err := checkNonNegative("blockCount", q.BlockCount); err != nil {
		return nil, err
	}
	if q.FirstBlockIndex == nil && q.BlockHash == "" {
		return nil, &ValidationError{Field: "firstBlockIndex", Message: "either firstBlockIndex or blockHash is required"}
	}
	if q.FirstBlockIndex != nil && q.BlockHash != "" {
		return nil, &ValidationError{Field: "firstBlockIndex", Message: "only one of firstBlockIndex or blockHash may be set"}
	}
	if err := checkOptionalNonNegative("firstBlockIndex", q.FirstBlockIndex); err != nil {
		return nil, err
	}
	if err := checkOptionalHex64("blockHash", q.BlockHash); err != nil {
		return nil, err
	}
	if err := checkOptionalHex64("paymentId", q.PaymentID); err != nil {
		return nil, err
	}
	if err := checkOptionalAddresses("addresses", q.Addresses); err != nil {
		return nil, err
	}

	params := &transactionQueryParams{
		BlockCount: q.BlockCount,
		BlockHash:  q.BlockHash,
		PaymentID:  q.PaymentID,
		Addresses:  copyStrings(q.Addresses),
	}
	if q.FirstBlockIndex != nil {
		params.FirstBlockIndex = Int(*q.FirstBlockIndex)
	}
	return params, nil
}

// SendTransaction creates and relays a transaction. Fee defaults to
// MessageFee(opts.Transfers).
func (c *Client) SendTransaction(ctx context.Context, opts TransactionOptions) (json.RawMessage, error) {
	params, err := opts.params(MessageFee)
	if err != nil {
		return nil, err
	}
	return c.walletRPC(ctx, "sendTransaction", params)
}

// CreateDelayedTransaction creates a transaction without relaying it. Fee
// defaults to DelayedFee(opts.Transfers).
func (c *Client) CreateDelayedTransaction(ctx context.Context, opts TransactionOptions) (json.RawMessage, error) {
	params, err := opts.params(DelayedFee)
	if err != nil {
		return nil, err
	}
	return c.walletRPC(ctx, "createDelayedTransaction", params)
}

// params maps the options onto the walletd names: Addresses becomes
// sourceAddresses, MixIn anonymity and UnlockHeight unlockTime.
func (opts TransactionOptions) params(defaultFee func([]Transfer) int64) (*sendTransactionParams, error) {
	if err := checkTransfers(opts.Transfers); err != nil {
		return nil, err
	}
	if err := checkOptionalAddresses("addresses", opts.Addresses); err != nil {
		return nil, err
	}
	if opts.ChangeAddress != "" {
		if err := checkAddress("changeAddress", opts.ChangeAddress); err != nil {
			return nil, err
		}
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
	fee, err := resolveFee(opts.Fee, opts.Transfers, defaultFee)
	if err != nil {
		return nil, err
	}

	return &sendTransactionParams{
		Transfers:       copyTransfers(opts.Transfers),
		SourceAddresses: copyStrings(opts.Addresses),
		ChangeAddress:   opts.ChangeAddress,
		PaymentID:       opts.PaymentID,
		Extra:           opts.Extra,
		Anonymity:       mixIn,
		UnlockTime:      unlock,
		Fee:             fee,
	}, nil
}

// GetDelayedTransactionHashes lists the delayed transactions.
func (c *Client) GetDelayedTransactionHashes(ctx context.Context) (json.RawMessage, error) {
	return c.walletRPC(ctx, "getDelayedTransactionHashes", nil)
}

// DeleteDelayedTransaction drops a delayed transaction.
func (c *Client) DeleteDelayedTransaction(ctx context.Context, hash string) (json.RawMessage, error) {
	if err := checkHex64("hash", hash); err != nil {
		return nil, err
	}
	return c.walletRPC(ctx, "deleteDelayedTransaction", &transactionHashParams{TransactionHash: hash})
}

// SendDelayedTransaction relays a delayed transaction.
func (c *Client) SendDelayedTransaction(ctx context.Context, hash string) (json.RawMessage, error) {
	if err := checkHex64("hash", hash); err != nil {
		return nil, err
	}
	return c.walletRPC(ctx, "sendDelayedTransaction", &transactionHashParams{TransactionHash: hash})
}

// GetMessagesFromExtra decodes the messages in a transaction extra field.
func (c *Client) GetMessagesFromExtra(ctx context.Context, extra string) (json.RawMessage, error) {
	if err := checkRequiredHex("extra", extra); err != nil {
		return nil, err
	}
	return c.walletRPC(ctx, "getMessagesFromExtra", &extraParams{Extra: extra})
}
