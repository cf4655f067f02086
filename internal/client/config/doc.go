// Package config loads runtime configuration for the admin client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the REST API
//	-t int      request timeout (seconds)
//	-j string   path of the action journal database
//	-l string   log level
//	-auth       enable the route auth guard
//
// # JSON schema
//
// Timeouts accept "15s" style strings or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://localhost:8000/api",
//	  "request_timeout": "15s",
//	  "journal_path": "journal.db",
//	  "log_level": "debug",
//	  "auth_required": false
//	}
//
// Fields missing from the JSON keep their previous values.
package config
