package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/registerface/internal/flagx"
	"github.com/dmitrijs2005/registerface/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration.
// Duration fields use timex.Duration, so both "1m" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	MetricsAddr                  string         `json:"metrics_addr"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	S3RootUser                   string         `json:"s3_root_user"`
	S3RootPassword               string         `json:"s3_root_password"`
	S3Bucket                     string         `json:"s3_bucket"`
	S3Region                     string         `json:"s3_region"`
	S3BaseEndpoint               string         `json:"s3_base_endpoint"`
	SnapshotURLValidity          timex.Duration `json:"snapshot_url_validity"`
	MatchThreshold               float64        `json:"match_threshold"`
	MaxFailedLogins              int            `json:"max_failed_logins"`
	LockoutCooldown              timex.Duration `json:"lockout_cooldown"`
	LogFormat                    string         `json:"log_format"`
}

func toJsonConfig(c *Config) *JsonConfig {
	return &JsonConfig{
		EndpointAddrGRPC:             c.EndpointAddrGRPC,
		MetricsAddr:                  c.MetricsAddr,
		DatabaseDSN:                  c.DatabaseDSN,
		SecretKey:                    c.SecretKey,
		AccessTokenValidityDuration:  timex.Duration{Duration: c.AccessTokenValidityDuration},
		RefreshTokenValidityDuration: timex.Duration{Duration: c.RefreshTokenValidityDuration},
		S3RootUser:                   c.S3RootUser,
		S3RootPassword:               c.S3RootPassword,
		S3Bucket:                     c.S3Bucket,
		S3Region:                     c.S3Region,
		S3BaseEndpoint:               c.S3BaseEndpoint,
		SnapshotURLValidity:          timex.Duration{Duration: c.SnapshotURLValidity},
		MatchThreshold:               c.MatchThreshold,
		MaxFailedLogins:              c.MaxFailedLogins,
		LockoutCooldown:              timex.Duration{Duration: c.LockoutCooldown},
		LogFormat:                    c.LogFormat,
	}
}

// parseJson overlays values from the JSON file named by -c/-config.
// Keys missing from the file keep their current values. An unreadable
// or malformed file panics, as the server cannot start with it.
func parseJson(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := toJsonConfig(config)
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.MetricsAddr = c.MetricsAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
	config.SnapshotURLValidity = c.SnapshotURLValidity.Duration
	config.MatchThreshold = c.MatchThreshold
	config.MaxFailedLogins = c.MaxFailedLogins
	config.LockoutCooldown = c.LockoutCooldown.Duration
	config.LogFormat = c.LogFormat
}
