package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ourstory-app/ourstory/internal/flagx"
	"github.com/ourstory-app/ourstory/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "10s" and integer nanoseconds.
type JsonConfig struct {
	ServerURL      string         `json:"server_url"`
	CacheFile      string         `json:"cache_file"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; when neither is set, no JSON file is loaded. If the file cannot be
// read or contains invalid JSON, the function panics.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
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

	cfg.ServerURL = c.ServerURL
	cfg.CacheFile = c.CacheFile
	cfg.RequestTimeout = time.Duration(c.RequestTimeout.Duration)
}
