package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"ccx-rpc/ccx-base/cmd"
	"ccx-rpc/ccx-base/jsonrpc"
	"ccx-rpc/ccx-base/monitor"
	"ccx-rpc/ccx-base/util"
	"ccx-rpc/ccx-client/ccx"
	"ccx-rpc/ccx-config/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

const serviceName = "ccxctl"

// app holds what the subcommands share once the root command has loaded the
// config.
type app struct {
	cfgFile string
	cfg     *config.Config

	client   *ccx.Client
	rpc      *jsonrpc.Client
	reporter *monitor.StatsdReporter
	tracing  bool
}

func newRootCmd(a *app) *cmd.Command {
	root := cmd.New(serviceName, "query and operate conceal wallets and daemons over rpc", "", nil)

	defaults := config.DefaultConfig()
	flags := root.Flags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file")
	flags.String("host", defaults.Host, "node host, http:// or https://")
	flags.Int("wallet-port", defaults.WalletPort, "wallet rpc port")
	flags.Int("daemon-port", defaults.DaemonPort, "daemon rpc port")
	flags.Duration("timeout", defaults.Timeout, "request timeout")
	flags.String("log-dir", defaults.LogDir, "log directory, empty disables file logging")
	flags.Bool("debug", defaults.Debug, "log rpc requests")

	for key, flag := range map[string]string{
		"host":       "host",
		"walletPort": "wallet-port",
		"daemonPort": "daemon-port",
		"timeout":    "timeout",
		"logDir":     "log-dir",
		"debug":      "debug",
	} {
		viper.BindPFlag(key, flags.Lookup(flag))
	}

	root.PreRun(func(*cmd.Command) error {
		return a.init()
	})
	root.AddCommand(
		newDaemonCmd(a),
		newWalletCmd(a),
		newCallCmd(a),
	)
	return root
}

func (a *app) init() error {
	if a.cfgFile != "" {
		if err := config.Init(a.cfgFile); err != nil {
			return err
		}
	}
	a.cfg = config.New()

	if a.cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if a.cfg.LogDir != "" {
		err := util.InitDaysJSONRotationLogger(a.cfg.LogDir, serviceName+".log", a.cfg.LogMaxAgeDays)
		if err != nil {
			return fmt.Errorf("init logger failed, %v", err)
		}
	}

	if a.cfg.Trace {
		tracer.Start(tracer.WithServiceName(serviceName))
		a.tracing = true
	}

	opts := []ccx.Option{
		ccx.WithTimeout(a.cfg.Timeout),
		ccx.WithLogger(logrus.StandardLogger()),
	}
	rpcOpts := []jsonrpc.Option{
		jsonrpc.WithLogger(logrus.StandardLogger()),
	}
	if a.cfg.StatusAddress != "" {
		reporter, err := monitor.NewStatsdReporter(a.cfg.StatusAddress, serviceName, nil)
		if err != nil {
			return err
		}
		reporter.Start()
		a.reporter = reporter
		opts = append(opts, ccx.WithMetrics(reporter))
		rpcOpts = append(rpcOpts, jsonrpc.WithMetrics(reporter))
	}

	client, err := ccx.New(a.cfg.Host, a.cfg.WalletPort, a.cfg.DaemonPort, opts...)
	if err != nil {
		return err
	}
	a.client = client

	c := client.Config()
	a.rpc = jsonrpc.NewClient(c.Scheme, c.Host, c.Timeout, rpcOpts...)
	return nil
}

func (a *app) close() {
	if a.tracing {
		tracer.Stop()
	}
	if a.reporter != nil {
		if err := a.reporter.Close(); err != nil {
			logrus.Warnf("close statsd reporter failed, %v", err)
		}
	}
}

func run(ctx context.Context, out io.Writer, args []string) error {
	a := &app{}
	defer a.close()

	root := newRootCmd(a)
	root.SetOut(out)
	root.SetArgs(args...)
	return root.ExecuteContext(ctx)
}

func main() {
	defer util.DeferRecover(serviceName, func(error) { os.Exit(2) })()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout, os.Args[1:]); err != nil {
		logrus.Debugf("%s failed, %+v", serviceName, err)
		fmt.Fprintln(os.Stderr, "error:", err)
		cancel()
		os.Exit(1)
	}
}
