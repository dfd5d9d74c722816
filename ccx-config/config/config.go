package config

import (
	"time"

	bviper "ccx-rpc/ccx-base/viper"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config defines configurations of ccxctl.
type Config struct {
	Host       string
	WalletPort int
	DaemonPort int
	Timeout    time.Duration

	LogDir        string
	LogMaxAgeDays uint
	Debug         bool

	// StatusAddress is the statsd agent, empty disables metrics.
	StatusAddress string
	Trace         bool
}

// DefaultConfig returns the config of a local concealwallet and conceald.
func DefaultConfig() *Config {
	return &Config{
		Host:          "http://127.0.0.1",
		WalletPort:    3333,
		DaemonPort:    16000,
		Timeout:       5000 * time.Millisecond,
		LogDir:        "./log/",
		LogMaxAgeDays: 7,
	}
}

// New returns a config read from viper, falling back to DefaultConfig.
func New() *Config {
	cfg := DefaultConfig()

	cfg.Host = bviper.GetString("host", cfg.Host)
	cfg.WalletPort = bviper.GetInt("walletPort", cfg.WalletPort)
	cfg.DaemonPort = bviper.GetInt("daemonPort", cfg.DaemonPort)
	cfg.Timeout = bviper.GetDuration("timeout", cfg.Timeout)
	cfg.LogDir = bviper.GetString("logDir", cfg.LogDir)
	cfg.LogMaxAgeDays = uint(bviper.GetInt64("logMaxAgeDays", int64(cfg.LogMaxAgeDays)))
	cfg.Debug = bviper.GetBool("debug", cfg.Debug)
	cfg.StatusAddress = bviper.GetString("statusAddress", cfg.StatusAddress)
	cfg.Trace = bviper.GetBool("trace", cfg.Trace)
	return cfg
}

// Init loads cfgFile and the ext configs it names into viper.
func Init(cfgFile string) error {
	viper.SetConfigFile(cfgFile)
	err := viper.ReadInConfig()
	if err != nil {
		return errors.Wrap(err, "read config failed")
	}

	err = bviper.MergeExtIfNecessary()
	if err != nil {
		return errors.Wrap(err, "merge config failed")
	}
	return nil
}
