package main

import (
	"encoding/json"
	"strings"

	"ccx-rpc/ccx-base/cmd"

	"github.com/pkg/errors"
)

func newCallCmd(a *app) *cmd.Command {
	return cmd.New("call <wallet|daemon> <method|/path> [params]",
		"call any rpc method, or a daemon handler when the name starts with /",
		"ccxctl call daemon getblockheaderbyheight '{\"height\":1}'\nccxctl call daemon /getinfo",
		func(c *cmd.Command) error {
			args := c.Args()
			if len(args) < 2 || len(args) > 3 {
				return errors.New("call takes a target, a method and optional json params")
			}

			var port int
			switch args[0] {
			case "wallet":
				port = a.cfg.WalletPort
			case "daemon":
				port = a.cfg.DaemonPort
			default:
				return errors.Errorf("unknown target %q, want wallet or daemon", args[0])
			}

			var params interface{}
			if len(args) == 3 {
				if !json.Valid([]byte(args[2])) {
					return errors.Errorf("params %q are not valid json", args[2])
				}
				params = json.RawMessage(args[2])
			}

			var (
				result json.RawMessage
				err    error
			)
			if strings.HasPrefix(args[1], "/") {
				result, err = a.rpc.CallRaw(c.Context(), port, args[1], params)
			} else {
				result, err = a.rpc.Call(c.Context(), port, args[1], params)
			}
			if err != nil {
				return err
			}
			return printJSON(c.Out(), result)
		})
}
