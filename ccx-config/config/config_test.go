package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	defer viper.Reset()
	viper.Reset()

	assert.Equal(t, DefaultConfig(), New())
}

func TestInit(t *testing.T) {
	defer viper.Reset()

	dir, err := ioutil.TempDir("", "ccx-config")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	ext := filepath.Join(dir, "secret.yml")
	require.NoError(t, ioutil.WriteFile(ext, []byte("statusAddress: 127.0.0.1:8125\n"), 0600))

	app := filepath.Join(dir, "app.yml")
	require.NoError(t, ioutil.WriteFile(app, []byte(`
host: https://node.conceal.network
walletPort: 8070
daemonPort: 16000
timeout: 1500
debug: true
extConfigs:
  - `+ext+`
`), 0600))

	require.NoError(t, Init(app))

	cfg := New()
	assert.Equal(t, "https://node.conceal.network", cfg.Host)
	assert.Equal(t, 8070, cfg.WalletPort)
	assert.Equal(t, 16000, cfg.DaemonPort)
	assert.Equal(t, 1500*time.Millisecond, cfg.Timeout)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "127.0.0.1:8125", cfg.StatusAddress)
	assert.Equal(t, "./log/", cfg.LogDir)
}

func TestInitMissingFile(t *testing.T) {
	defer viper.Reset()

	err := Init(filepath.Join(os.TempDir(), "ccx-config-missing.yml"))
	assert.Error(t, err)
}
