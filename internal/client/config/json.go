package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/flagx"
	"github.com/dmitrijs2005/todokeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Intervals may be
// written as "3s" or as integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	MaxUploadBytes      int64          `json:"max_upload_bytes"`
}

func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval.Duration)
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.MaxUploadBytes > 0 {
		cfg.MaxUploadBytes = jc.MaxUploadBytes
	}

	return nil
}
