package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, ".registerface", c.DataDir)
	assert.Equal(t, "text", c.LogFormat)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeJSON(t, `{"server_endpoint_addr":"json:1","data_dir":"/tmp/json"}`)
	os.Args = []string{"cmd", "-c", path, "-a", "flag:2"}

	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "flag:2", cfg.ServerEndpointAddr)
	assert.Equal(t, "/tmp/json", cfg.DataDir)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
	assert.Equal(t, "text", cfg.LogFormat)
}
