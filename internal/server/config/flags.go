package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/registerface/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-m string   metrics bind address (e.g., ":9100")
//	-d string   PostgreSQL DSN
//	-s string   secret key
//	-t int      access token validity, minutes
//	-r int      refresh token validity, minutes
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-v int      snapshot URL validity, minutes
//	-k float    face match threshold, percent
//	-n int      failed face logins before lockout
//	-w int      lockout cooldown, minutes
//	-l string   log format: json, text or zap
//
// Duration flags are whole minutes.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-m", "-d", "-s", "-t", "-r", "-u", "-p", "-b", "-g", "-e", "-v", "-k", "-n", "-w", "-l",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "address and port to expose metrics")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidity := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	refreshTokenValidity := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh token validity (in minutes)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	snapshotURLValidity := fs.Int("v", int(config.SnapshotURLValidity.Minutes()), "snapshot URL validity (in minutes)")
	fs.Float64Var(&config.MatchThreshold, "k", config.MatchThreshold, "face match threshold (percent)")
	fs.IntVar(&config.MaxFailedLogins, "n", config.MaxFailedLogins, "failed face logins before lockout (0 disables)")
	lockoutCooldown := fs.Int("w", int(config.LockoutCooldown.Minutes()), "lockout cooldown (in minutes)")
	fs.StringVar(&config.LogFormat, "l", config.LogFormat, "log format: json, text or zap")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidity) * time.Minute
	config.RefreshTokenValidityDuration = time.Duration(*refreshTokenValidity) * time.Minute
	config.SnapshotURLValidity = time.Duration(*snapshotURLValidity) * time.Minute
	config.LockoutCooldown = time.Duration(*lockoutCooldown) * time.Minute
}
