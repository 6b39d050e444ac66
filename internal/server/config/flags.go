package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/learnhub/internal/flagx"
)

// parseFlags overlays command-line flags on config.
//
//	-a string   gRPC bind address
//	-d string   PostgreSQL DSN
//	-s string   JWT secret
//	-t int      access token validity, minutes
//	-r int      refresh token validity, minutes
//	-k string   profile store: postgres | s3
//	-u/-p/-b/-g/-e  S3 user, password, bucket, region, endpoint
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-r", "-k", "-u", "-p", "-b", "-g", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessValidity := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	refreshValidity := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh token validity (in minutes)")

	fs.StringVar(&config.ProfileStore, "k", config.ProfileStore, "profile store (postgres|s3)")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	switch config.ProfileStore {
	case ProfileStorePostgres, ProfileStoreS3:
	default:
		panic(fmt.Sprintf("unknown profile store %q", config.ProfileStore))
	}

	config.AccessTokenValidityDuration = time.Duration(*accessValidity) * time.Minute
	config.RefreshTokenValidityDuration = time.Duration(*refreshValidity) * time.Minute
}
