package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/outreach/internal/flagx"
	"github.com/dmitrijs2005/outreach/internal/timex"
)

// JsonConfig is the on-disk shape. Pointer fields distinguish "absent" from
// zero values so a partial file only overrides what it names.
type JsonConfig struct {
	ServerBaseURL  *string         `json:"server_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	JournalPath    *string         `json:"journal_path"`
	LogLevel       *string         `json:"log_level"`
	AuthRequired   *bool           `json:"auth_required"`
}

// parseJson overlays cfg with the file named by -c/-config. It panics on
// read or decode errors.
func parseJson(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc JsonConfig) apply(cfg *Config) {
	if jc.ServerBaseURL != nil {
		cfg.ServerBaseURL = *jc.ServerBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.JournalPath != nil {
		cfg.JournalPath = *jc.JournalPath
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.AuthRequired != nil {
		cfg.AuthRequired = *jc.AuthRequired
	}
}
