package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/bookkeeper/internal/flagx"
	"github.com/dmitrijs2005/bookkeeper/internal/timex"
)

// JsonConfig is the intermediate DTO for the JSON overlay. Durations accept
// both strings ("1h") and integer nanoseconds (timex.Duration).
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
}

// parseJson overlays values from the JSON file named by the -c/-config
// flags onto config. Absent flags mean no file is loaded; only fields
// present in the file override the current values. An unreadable or
// invalid file panics: a misconfigured server should not start.
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
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
}
