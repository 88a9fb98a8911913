package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitArgs(t *testing.T) {
	opts, err := InitArgs([]string{"--datadir=/tmp/junkcoin-test", "--loglevel=debug", "--testnet"})
	assert.NoError(t, err)
	assert.Equal(t, "/tmp/junkcoin-test", opts.DataDir)
	assert.Equal(t, "debug", opts.LogLevel)
	assert.True(t, opts.TestNet)
	assert.False(t, opts.RegTest)

	_, err = InitArgs([]string{"--no-such-flag"})
	assert.Error(t, err)
}

func TestOptsDefaults(t *testing.T) {
	opts, err := InitArgs(nil)
	assert.NoError(t, err)
	assert.Equal(t, "info", opts.LogLevel)
	assert.NotEmpty(t, opts.String())
}

func TestAppConfDefaults(t *testing.T) {
	assert.NotNil(t, AppConf)
	assert.NotEmpty(t, AppConf.DataDir)
	assert.NotEmpty(t, AppConf.LogLevel)
}

func TestGetDataPath(t *testing.T) {
	oldDataDir := AppConf.DataDir
	defer func() { AppConf.DataDir = oldDataDir }()

	AppConf.DataDir = filepath.Join(t.TempDir(), "datadir")
	path := GetDataPath()
	info, err := os.Stat(path)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}
