package viper

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

func TestGetters(t *testing.T) {
	defer viper.Reset()

	viper.Set("host", "http://node")
	viper.Set("port", 16000)
	viper.Set("timeout", 2500)
	viper.Set("interval", "2s")
	viper.Set("broken", "soon")
	viper.Set("debug", true)

	assert.Equal(t, "http://node", GetString("host", "x"))
	assert.Equal(t, "x", GetString("missing", "x"))
	assert.Equal(t, 16000, GetInt("port", 1))
	assert.EqualValues(t, 16000, GetInt64("port", 1))
	assert.EqualValues(t, 7, GetInt64("missing", 7))
	assert.Equal(t, 2500*time.Millisecond, GetDuration("timeout", time.Second))
	assert.Equal(t, 2*time.Second, GetDuration("interval", time.Second))
	assert.Equal(t, time.Duration(0), GetDuration("broken", time.Second))
	assert.Equal(t, time.Second, GetDuration("missing", time.Second))
	assert.True(t, GetBool("debug", false))
	assert.Nil(t, GetStringSlice("missing", nil))
}

func TestMergeExtIfNecessary(t *testing.T) {
	defer viper.Reset()

	dir, err := ioutil.TempDir("", "ccx-viper")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	ext := filepath.Join(dir, "ext.yml")
	require.NoError(t, ioutil.WriteFile(ext, []byte("daemonPort: 16600\n"), 0600))

	viper.SetConfigType("yaml")
	viper.Set("extConfigs", []string{ext, filepath.Join(dir, "missing.yml")})

	require.NoError(t, MergeExtIfNecessary())
	assert.Equal(t, 16600, GetInt("daemonPort", 0))
}
