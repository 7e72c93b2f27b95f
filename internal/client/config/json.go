package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/bidcars/bidcars-cli/internal/flagx"
	"github.com/bidcars/bidcars-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "10s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	APIBaseURL               string         `json:"api_base_url"`
	RequestTimeout           timex.Duration `json:"request_timeout"`
	TokenFile                string         `json:"token_file"`
	CountdownRefreshInterval timex.Duration `json:"countdown_refresh_interval"`
}

// parseJson overlays Config with values loaded from a JSON file whose path
// comes from the -c or -config flags; with neither present nothing is
// loaded. Fields absent from the file keep their current values. Read or
// unmarshal errors panic (caller may recover).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later
// stages override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.TokenFile != "" {
		cfg.TokenFile = jc.TokenFile
	}
	if jc.CountdownRefreshInterval.Duration != 0 {
		cfg.CountdownRefreshInterval = time.Duration(jc.CountdownRefreshInterval.Duration)
	}
}
