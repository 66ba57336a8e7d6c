package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/userdirectory/internal/flagx"
	"github.com/dmitrijs2005/userdirectory/internal/timex"
)

// EnvConfigFile names the environment variable holding the JSON config path.
const EnvConfigFile = "USERDIR_CLI_CONFIG"

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with the non-zero values of the JSON file named
// by -c/-config or EnvConfigFile. It panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath(os.Args[1:], EnvConfigFile)
	if path == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
