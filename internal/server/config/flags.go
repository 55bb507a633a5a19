package config

import (
	"flag"
	"os"
	"time"

	"github.com/edgcastillo/saveddit/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-k string   hex-encoded credential encryption key
//	-t int      session token validity, minutes
//	-w int      bcrypt cost (work factor)
//	-i string   Reddit app client id
//	-p string   Reddit app client secret
//	-g string   Reddit user agent
//	-e int      external call timeout, seconds
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-k", "-t", "-w", "-i", "-p", "-g", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "JWT secret key")
	fs.StringVar(&config.EncryptionKeyHex, "k", config.EncryptionKeyHex, "credential encryption key (hex)")

	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token validity (in minutes)")
	fs.IntVar(&config.BcryptCost, "w", config.BcryptCost, "bcrypt cost")

	fs.StringVar(&config.RedditClientID, "i", config.RedditClientID, "Reddit app client id")
	fs.StringVar(&config.RedditClientSecret, "p", config.RedditClientSecret, "Reddit app client secret")
	fs.StringVar(&config.RedditUserAgent, "g", config.RedditUserAgent, "Reddit user agent")

	externalTimeout := fs.Int("e", int(config.ExternalCallTimeout.Seconds()), "external call timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
	config.ExternalCallTimeout = time.Duration(*externalTimeout) * time.Second
}
