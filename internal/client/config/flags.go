package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/whatsut/internal/flagx"
)

// parseFlags populates Config fields from command-line flags, ignoring any
// flag it does not own.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-cb", "-i", "-d"})
	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.CallbackAddr, "cb", cfg.CallbackAddr, "address the callback endpoint listens on")
	heartbeatInterval := fs.Int("i", int(cfg.HeartbeatInterval.Seconds()), "heartbeat interval (in seconds)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "local database file")
	if err := fs.Parse(args); err != nil {
		panic(err)
	}
	cfg.HeartbeatInterval = time.Duration(*heartbeatInterval) * time.Second
}
