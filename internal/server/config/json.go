package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/userdirectory/internal/flagx"
	"github.com/dmitrijs2005/userdirectory/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept
// either strings such as "15m" or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC            string         `json:"endpoint_addr_grpc"`
	MetricsAddr                 string         `json:"metrics_addr"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	PasswordHashCost            int            `json:"password_hash_cost"`
	UserIDMaxAttempts           int            `json:"user_id_max_attempts"`
	LogLevel                    string         `json:"log_level"`
}

// parseJson loads the file named by -c/-config (or USERDIR_CONFIG) and copies
// every non-zero value into config. No path means nothing to load. An
// unreadable or invalid file panics.
func parseJson(config *Config) {

	path := flagx.ConfigPath(os.Args[1:], EnvConfigFile)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrGRPC != "" {
		config.EndpointAddrGRPC = c.EndpointAddrGRPC
	}
	if c.MetricsAddr != "" {
		config.MetricsAddr = c.MetricsAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AccessTokenValidityDuration.Duration != 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.PasswordHashCost != 0 {
		config.PasswordHashCost = c.PasswordHashCost
	}
	if c.UserIDMaxAttempts != 0 {
		config.UserIDMaxAttempts = c.UserIDMaxAttempts
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
}
