package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/flagx"
)

func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-i", "-r", "-u"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	checkInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	timeout := fs.Int("r", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.Int64Var(&cfg.MaxUploadBytes, "u", cfg.MaxUploadBytes, "largest photo the server accepts (in bytes)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.OnlineCheckInterval = time.Duration(*checkInterval) * time.Second
	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	return nil
}
