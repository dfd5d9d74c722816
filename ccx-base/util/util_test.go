package util

import (
	"bufio"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogWriter(t *testing.T) {
	var lines []string
	w := NewLogWriter(func(args ...interface{}) {
		lines = append(lines, args[0].(string))
	})

	n, err := w.Write([]byte("resty: request sent"))
	require.NoError(t, err)
	assert.Equal(t, 19, n)
	assert.Equal(t, []string{"resty: request sent"}, lines)

	n, err = NewLogWriter(nil).Write([]byte("dropped"))
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestFileHelpers(t *testing.T) {
	dir, err := ioutil.TempDir("", "ccx-util")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "app.yml")
	assert.False(t, FileExist(name))

	require.NoError(t, ioutil.WriteFile(name, []byte("host: http://127.0.0.1\n"), 0600))
	assert.True(t, FileExist(name))

	var line string
	err = WithReadFile(name, func(reader *bufio.Reader) error {
		line, err = reader.ReadString('\n')
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, "host: http://127.0.0.1", strings.TrimSpace(line))

	assert.Error(t, WithReadFile(filepath.Join(dir, "missing"), func(*bufio.Reader) error { return nil }))
}

func TestInitRotationLogger(t *testing.T) {
	dir, err := ioutil.TempDir("", "ccx-log")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	hooks := logrus.StandardLogger().Hooks
	defer logrus.StandardLogger().ReplaceHooks(hooks)
	logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))

	require.NoError(t, InitDaysJSONRotationLogger(filepath.Join(dir, "log"), "ccxctl.log", 7))
	logrus.Info("rotation logger ready")

	assert.True(t, FileExist(filepath.Join(dir, "log", "ccxctl.log")))
}

func TestDeferRecover(t *testing.T) {
	var got error
	func() {
		defer DeferRecover("test", func(err error) { got = err })()
		panic("boom")
	}()

	require.Error(t, got)
	assert.Equal(t, "boom", got.Error())
}
