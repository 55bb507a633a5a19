package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/edgcastillo/saveddit/internal/flagx"
	"github.com/edgcastillo/saveddit/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "30m" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied into the
// runtime Config struct which uses time.Duration.
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	EncryptionKeyHex      string         `json:"encryption_key_hex"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	BcryptCost            int            `json:"bcrypt_cost"`
	RedditClientID        string         `json:"reddit_client_id"`
	RedditClientSecret    string         `json:"reddit_client_secret"`
	RedditUserAgent       string         `json:"reddit_user_agent"`
	ExternalCallTimeout   timex.Duration `json:"external_call_timeout"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; when neither is set, no JSON file is loaded. Unset fields keep
// their current values. If the file cannot be read or contains invalid
// JSON, the function panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.EncryptionKeyHex != "" {
		config.EncryptionKeyHex = c.EncryptionKeyHex
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.RedditClientID != "" {
		config.RedditClientID = c.RedditClientID
	}
	if c.RedditClientSecret != "" {
		config.RedditClientSecret = c.RedditClientSecret
	}
	if c.RedditUserAgent != "" {
		config.RedditUserAgent = c.RedditUserAgent
	}
	if c.ExternalCallTimeout.Duration != 0 {
		config.ExternalCallTimeout = time.Duration(c.ExternalCallTimeout.Duration)
	}
}
