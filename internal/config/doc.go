// Package config loads Holocron's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/holocron/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or empty, use defaults
//
// # Default Values
//
//   - API root: https://swapi.dev/api
//   - Request timeout: 10s
//   - Language: $LC_ALL, $LC_MESSAGES or $LANG; the default label set when unset
//   - Log: info level, text format, ~/.local/state/holocron/holocron.log
//
// # TOML Format
//
//	base_url = "https://swapi.dev/api"
//	request_timeout = "10s"
//	language = "ru"
//
//	[log]
//	level = "info"
//	format = "text"
//	file = "~/.local/state/holocron/holocron.log"
//
// Every field is optional. Tilde expansion is performed for the log file.
// The page size is not configurable: it is whatever the API serves.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML parse errors and non-positive request timeouts.
// A missing file is not an error.
package config
