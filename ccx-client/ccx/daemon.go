package ccx

import (
	"context"
	"encoding/json"

	"ccx-rpc/ccx-base/jsonrpc"
	"ccx-rpc/ccx-base/validate"
)

// Daemon rpc, served by conceald on the daemon port.

// Count returns the number of blocks in the chain.
func (c *Client) Count(ctx context.Context) (json.RawMessage, error) {
	return c.daemonRPC(ctx, "getblockcount", nil)
}

// BlockHashByHeight returns the hash of the block at height.
func (c *Client) BlockHashByHeight(ctx context.Context, height int64) (json.RawMessage, error) {
	if err := checkNonNegative("height", height); err != nil {
		return nil, err
	}
	return c.daemonRPC(ctx, "on_getblockhash", jsonrpc.Params{height})
}

// BlockHeaderByHash returns the header of the block with the given hash.
func (c *Client) BlockHeaderByHash(ctx context.Context, hash string) (json.RawMessage, error) {
	if err := checkHex64("hash", hash); err != nil {
		return nil, err
	}
	return c.daemonRPC(ctx, "getblockheaderbyhash", &hashParams{Hash: hash})
}

// BlockHeaderByHeight returns the header of the block at height.
func (c *Client) BlockHeaderByHeight(ctx context.Context, height int64) (json.RawMessage, error) {
	if err := checkNonNegative("height", height); err != nil {
		return nil, err
	}
	return c.daemonRPC(ctx, "getblockheaderbyheight", &heightParams{Height: height})
}

// LastBlockHeader returns the header of the top block.
func (c *Client) LastBlockHeader(ctx context.Context) (json.RawMessage, error) {
	return c.daemonRPC(ctx, "getlastblockheader", nil)
}

// Block returns the block with the given hash, with its transactions.
func (c *Client) Block(ctx context.Context, hash string) (json.RawMessage, error) {
	if err := checkHex64("hash", hash); err != nil {
		return nil, err
	}
	return c.daemonRPC(ctx, "f_block_json", &hashParams{Hash: hash})
}

// Blocks returns a short list of the blocks below height.
func (c *Client) Blocks(ctx context.Context, height int64) (json.RawMessage, error) {
	if err := checkNonNegative("height", height); err != nil {
		return nil, err
	}
	return c.daemonRPC(ctx, "f_blocks_list_json", &heightParams{Height: height})
}

// Transaction returns the transaction with the given hash.
func (c *Client) Transaction(ctx context.Context, hash string) (json.RawMessage, error) {
	if err := checkHex64("hash", hash); err != nil {
		return nil, err
	}
	return c.daemonRPC(ctx, "f_transaction_json", &hashParams{Hash: hash})
}

// TransactionPool returns the transactions in the memory pool.
func (c *Client) TransactionPool(ctx context.Context) (json.RawMessage, error) {
	return c.daemonRPC(ctx, "f_on_transactions_pool_json", nil)
}

// CurrencyID returns the id of the currency served by the daemon.
func (c *Client) CurrencyID(ctx context.Context) (json.RawMessage, error) {
	return c.daemonRPC(ctx, "getcurrencyid", nil)
}

// BlockTemplate returns a block template paying to address, with
// reserveSize bytes reserved for the miner.
func (c *Client) BlockTemplate(ctx context.Context, address string, reserveSize int64) (json.RawMessage, error) {
	if err := checkAddress("address", address); err != nil {
		return nil, err
	}
	if reserveSize < 0 || reserveSize > MaxReserveSize {
		return nil, outOfRange("reserveSize", 0, MaxReserveSize)
	}
	return c.daemonRPC(ctx, "getblocktemplate", &blockTemplateParams{
		WalletAddress: address,
		ReserveSize:   reserveSize,
	})
}

// SubmitBlock submits a mined block blob.
func (c *Client) SubmitBlock(ctx context.Context, block string) (json.RawMessage, error) {
	if err := checkRequiredHex("block", block); err != nil {
		return nil, err
	}
	return c.daemonRPC(ctx, "submitblock", jsonrpc.Params{block})
}

// Daemon http handlers. They take and return bare json objects.

// Info returns the daemon status.
func (c *Client) Info(ctx context.Context) (json.RawMessage, error) {
	return c.daemonHandler(ctx, "/getinfo", nil)
}

// Index returns the daemon height.
func (c *Client) Index(ctx context.Context) (json.RawMessage, error) {
	return c.daemonHandler(ctx, "/getheight", nil)
}

// Transactions returns the transactions with the given hashes.
func (c *Client) Transactions(ctx context.Context, txs []string) (json.RawMessage, error) {
	if len(txs) == 0 || !validate.AllHex64(txs) {
		return nil, invalid("txs", reasonTxs)
	}
	return c.daemonHandler(ctx, "/gettransactions", &transactionsParams{
		TxsHashes: copyStrings(txs),
	})
}

// SendRawTransaction relays a signed transaction blob.
func (c *Client) SendRawTransaction(ctx context.Context, rawTx string) (json.RawMessage, error) {
	if err := checkRequiredHex("rawTx", rawTx); err != nil {
		return nil, err
	}
	return c.daemonHandler(ctx, "/sendrawtransaction", &rawTransactionParams{TxAsHex: rawTx})
}
