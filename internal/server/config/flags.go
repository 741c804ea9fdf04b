package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/whatsut/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-k bool     require access tokens
//	-l int      presence TTL, seconds
//	-n int      callback timeout, seconds
//	-m int      max file size, bytes
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// Duration flags are accepted as integers and converted to time.Duration.
func parseFlags(config *Config) {
	args := flagx.Spec{
		Value: []string{"-a", "-d", "-s", "-t", "-l", "-n", "-m", "-u", "-p", "-b", "-g", "-e"},
		Bool:  []string{"-k"},
	}.Filter(os.Args[1:])

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")
	fs.BoolVar(&config.RequireToken, "k", config.RequireToken, "require access token on every call")
	presenceTTL := fs.Int("l", int(config.PresenceTTL.Seconds()), "presence ttl (in seconds)")
	callbackTimeout := fs.Int("n", int(config.CallbackTimeout.Seconds()), "callback timeout (in seconds)")
	fs.Int64Var(&config.MaxFileSize, "m", config.MaxFileSize, "max file size (in bytes)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 root bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 root region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	config.PresenceTTL = time.Duration(*presenceTTL) * time.Second
	config.CallbackTimeout = time.Duration(*callbackTimeout) * time.Second
}
