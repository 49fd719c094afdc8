package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key, e.g. REGISTERFACE_DATABASE_DSN.
const EnvPrefix = "REGISTERFACE"

func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(key)
}

func newEnvReader() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// parseEnv overlays REGISTERFACE_* environment variables. Only variables
// that are set take effect. Malformed numbers or durations panic.
func parseEnv(config *Config) {
	v := newEnvReader()

	str := func(key string, dst *string) {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}
	dur := func(key string, dst *time.Duration) {
		if !v.IsSet(key) {
			return
		}
		d, err := time.ParseDuration(v.GetString(key))
		if err != nil {
			panic(fmt.Errorf("env %s: %w", envName(key), err))
		}
		*dst = d
	}

	str("endpoint_addr_grpc", &config.EndpointAddrGRPC)
	str("metrics_addr", &config.MetricsAddr)
	str("database_dsn", &config.DatabaseDSN)
	str("secret_key", &config.SecretKey)
	dur("access_token_validity_duration", &config.AccessTokenValidityDuration)
	dur("refresh_token_validity_duration", &config.RefreshTokenValidityDuration)
	str("s3_root_user", &config.S3RootUser)
	str("s3_root_password", &config.S3RootPassword)
	str("s3_bucket", &config.S3Bucket)
	str("s3_region", &config.S3Region)
	str("s3_base_endpoint", &config.S3BaseEndpoint)
	dur("snapshot_url_validity", &config.SnapshotURLValidity)
	dur("lockout_cooldown", &config.LockoutCooldown)
	str("log_format", &config.LogFormat)

	if v.IsSet("match_threshold") {
		f, err := strconv.ParseFloat(v.GetString("match_threshold"), 64)
		if err != nil {
			panic(fmt.Errorf("env %s: %w", envName("match_threshold"), err))
		}
		config.MatchThreshold = f
	}
	if v.IsSet("max_failed_logins") {
		n, err := strconv.Atoi(v.GetString("max_failed_logins"))
		if err != nil {
			panic(fmt.Errorf("env %s: %w", envName("max_failed_logins"), err))
		}
		config.MaxFailedLogins = n
	}
}
