package main

import (
	"encoding/json"
	"strconv"

	"ccx-rpc/ccx-base/cmd"

	"github.com/pkg/errors"
)

func newDaemonCmd(a *app) *cmd.Command {
	daemon := cmd.New("daemon", "query the daemon", "", nil)
	daemon.AddCommand(
		cmd.New("info", "show the daemon status", "ccxctl daemon info", func(c *cmd.Command) error {
			result, err := a.client.Info(c.Context())
			if err != nil {
				return err
			}
			return printJSON(c.Out(), result)
		}),
		cmd.New("height", "show the daemon height", "ccxctl daemon height", func(c *cmd.Command) error {
			result, err := a.client.Index(c.Context())
			if err != nil {
				return err
			}
			return printInt(c.Out(), result, "height")
		}),
		cmd.New("count", "show the number of blocks", "ccxctl daemon count", func(c *cmd.Command) error {
			result, err := a.client.Count(c.Context())
			if err != nil {
				return err
			}
			return printInt(c.Out(), result, "count")
		}),
		cmd.New("last-header", "show the header of the top block", "ccxctl daemon last-header", func(c *cmd.Command) error {
			result, err := a.client.LastBlockHeader(c.Context())
			if err != nil {
				return err
			}
			return printJSON(c.Out(), result)
		}),
		cmd.New("block <hash|height>", "show a block", "ccxctl daemon block 1000", func(c *cmd.Command) error {
			hash, err := a.blockHash(c, c.Args()[0])
			if err != nil {
				return err
			}
			result, err := a.client.Block(c.Context(), hash)
			if err != nil {
				return err
			}
			return printJSON(c.Out(), result)
		}).ExactArgs(1),
		cmd.New("tx <hash>", "show a transaction", "", func(c *cmd.Command) error {
			result, err := a.client.Transaction(c.Context(), c.Args()[0])
			if err != nil {
				return err
			}
			return printJSON(c.Out(), result)
		}).ExactArgs(1),
		cmd.New("pool", "show the transaction pool", "ccxctl daemon pool", func(c *cmd.Command) error {
			result, err := a.client.TransactionPool(c.Context())
			if err != nil {
				return err
			}
			return printJSON(c.Out(), result)
		}),
	)
	return daemon
}

// blockHash resolves a block height to its hash. Anything else is taken as a
// hash.
func (a *app) blockHash(c *cmd.Command, arg string) (string, error) {
	height, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return arg, nil
	}

	result, err := a.client.BlockHashByHeight(c.Context(), height)
	if err != nil {
		return "", err
	}

	var hash string
	if err := json.Unmarshal(result, &hash); err != nil {
		return "", errors.Wrapf(err, "unexpected block hash %s", result)
	}
	return hash, nil
}
