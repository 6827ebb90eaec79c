package config

import (
	"os"
	"path/filepath"
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
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
	assert.Equal(t, int64(5<<20), c.MaxUploadBytes)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Config
		wantErr bool
	}{
		{
			name: "overrides",
			args: []string{"-a", "10.0.0.1:9090", "-i", "10", "-r", "2", "-u", "8388608"},
			want: Config{ServerEndpointAddr: "10.0.0.1:9090", OnlineCheckInterval: 10 * time.Second, RequestTimeout: 2 * time.Second, MaxUploadBytes: 8 << 20},
		},
		{
			name: "foreign flags ignored",
			args: []string{"-c", "cfg.json", "-x", "y"},
			want: Config{ServerEndpointAddr: "127.0.0.1:50051", OnlineCheckInterval: 3 * time.Second, RequestTimeout: 5 * time.Second, MaxUploadBytes: 5 << 20},
		},
		{
			name:    "bad interval",
			args:    []string{"-i", "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			err := parseFlags(&c, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestParseJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_endpoint_addr":"srv:1","online_check_interval":"7s","max_upload_bytes":1048576}`), 0o600))

	var c Config
	c.LoadDefaults()
	require.NoError(t, parseJson(&c, []string{"-c", path}))

	assert.Equal(t, "srv:1", c.ServerEndpointAddr)
	assert.Equal(t, 7*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
	assert.Equal(t, int64(1<<20), c.MaxUploadBytes)
}

func TestParseJson_Errors(t *testing.T) {
	var c Config
	c.LoadDefaults()
	assert.Error(t, parseJson(&c, []string{"-c", filepath.Join(t.TempDir(), "missing.json")}))

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
	assert.Error(t, parseJson(&c, []string{"-config", path}))
}
