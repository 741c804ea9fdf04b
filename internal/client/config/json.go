package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/whatsut/internal/flagx"
	"github.com/dmitrijs2005/whatsut/internal/timex"
)

// JsonConfig is the on-disk shape of the client configuration. Empty fields
// keep their current value.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	CallbackAddr       string         `json:"callback_addr"`
	HeartbeatInterval  timex.Duration `json:"heartbeat_interval"`
	DatabaseDSN        string         `json:"database_dsn"`
}

// parseJson overlays cfg with the file named by -c/-config. Read or decode
// errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.CallbackAddr != "" {
		cfg.CallbackAddr = jc.CallbackAddr
	}
	if jc.HeartbeatInterval.Duration > 0 {
		cfg.HeartbeatInterval = jc.HeartbeatInterval.Duration
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
}
