package config

import "time"

// Config holds runtime settings for the admin client.
//
// Fields:
//   - ServerBaseURL: base URL of the REST API; resource paths are appended to it.
//   - RequestTimeout: per-request timeout applied by the HTTP transport.
//   - JournalPath: SQLite file that records settled store actions.
//   - LogLevel: debug, info, warn or error.
//   - AuthRequired: turns the router's auth guard on. Off until the API
//     issues tokens.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	JournalPath    string
	LogLevel       string
	AuthRequired   bool
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000/api"
	c.RequestTimeout = 15 * time.Second
	c.JournalPath = "journal.db"
	c.LogLevel = "info"
	c.AuthRequired = false
}

// LoadConfig applies defaults, then the optional JSON file, then flags.
// Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
