package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/whatsut/internal/flagx"
	"github.com/dmitrijs2005/whatsut/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration. Duration
// fields accept both "90s" strings and integer nanoseconds. Fields left out
// of the file keep their current value.
type JsonConfig struct {
	EndpointAddrGRPC            string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	RequireToken                *bool          `json:"require_token"`
	PresenceTTL                 timex.Duration `json:"presence_ttl"`
	CallbackTimeout             timex.Duration `json:"callback_timeout"`
	MaxFileSize                 int64          `json:"max_file_size"`
	S3RootUser                  string         `json:"s3_root_user"`
	S3RootPassword              string         `json:"s3_root_password"`
	S3Bucket                    string         `json:"s3_bucket"`
	S3Region                    string         `json:"s3_region"`
	S3BaseEndpoint              string         `json:"s3_base_endpoint"`
}

// parseJson loads configuration values from the file named by -c/-config.
// Without the flag nothing happens. An unreadable file or invalid JSON
// panics, as does every other startup configuration failure.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigPath()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	if c.AccessTokenValidityDuration.Duration > 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.RequireToken != nil {
		config.RequireToken = *c.RequireToken
	}
	if c.PresenceTTL.Duration > 0 {
		config.PresenceTTL = c.PresenceTTL.Duration
	}
	if c.CallbackTimeout.Duration > 0 {
		config.CallbackTimeout = c.CallbackTimeout.Duration
	}
	if c.MaxFileSize > 0 {
		config.MaxFileSize = c.MaxFileSize
	}
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
