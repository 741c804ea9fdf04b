// Package config loads runtime configuration for the WhatsUT text client.
//
// Sources, in order of precedence (later wins): built-in defaults, an
// optional JSON file given with -c/-config, then command-line flags.
//
//	-a  string  address:port of the server gRPC endpoint
//	-cb string  local address the callback endpoint listens on
//	-i  int     heartbeat interval (seconds)
//	-d  string  local SQLite database for the notification inbox
//
// JSON example (durations accept "20s" or integer nanoseconds):
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "callback_addr": "127.0.0.1:0",
//	  "heartbeat_interval": "20s",
//	  "database_dsn": "whatsut_client.db"
//	}
package config

import "time"

// Config holds runtime settings for the client.
type Config struct {
	ServerEndpointAddr string
	// CallbackAddr is where the client serves CallbackService. Port 0 picks
	// a free port; the bound address is what gets registered.
	CallbackAddr      string
	HeartbeatInterval time.Duration
	DatabaseDSN       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.CallbackAddr = "127.0.0.1:0"
	c.HeartbeatInterval = 20 * time.Second
	c.DatabaseDSN = "whatsut_client.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
