package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables understood by parseEnv.
const (
	EnvConfigFile        = "USERDIR_CONFIG"
	EnvGRPCAddr          = "USERDIR_GRPC_ADDR"
	EnvMetricsAddr       = "USERDIR_METRICS_ADDR"
	EnvDatabaseDSN       = "USERDIR_DATABASE_DSN"
	EnvSecretKey         = "USERDIR_SECRET_KEY"
	EnvAccessTokenTTL    = "USERDIR_ACCESS_TOKEN_TTL"
	EnvPasswordHashCost  = "USERDIR_PASSWORD_HASH_COST"
	EnvUserIDMaxAttempts = "USERDIR_USER_ID_MAX_ATTEMPTS"
	EnvLogLevel          = "USERDIR_LOG_LEVEL"
)

// dotEnvFile is read by loadDotEnv. Variables already set in the process
// environment win over the file.
var dotEnvFile = ".env"

func loadDotEnv() {
	_ = godotenv.Load(dotEnvFile)
}

// parseEnv overlays config values from USERDIR_* variables. Unset or
// malformed variables leave the current value in place.
func parseEnv(config *Config) {
	setString(&config.EndpointAddrGRPC, EnvGRPCAddr)
	setString(&config.MetricsAddr, EnvMetricsAddr)
	setString(&config.DatabaseDSN, EnvDatabaseDSN)
	setString(&config.SecretKey, EnvSecretKey)
	setString(&config.LogLevel, EnvLogLevel)

	if v, ok := os.LookupEnv(EnvAccessTokenTTL); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenValidityDuration = d
		}
	}
	setInt(&config.PasswordHashCost, EnvPasswordHashCost)
	setInt(&config.UserIDMaxAttempts, EnvUserIDMaxAttempts)
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
