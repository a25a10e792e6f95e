// Package app is the composition root for Holocron.
//
// # Overview
//
// Run wires configuration, preferences, logging, the SWAPI client and the
// two state containers into the Bubble Tea UI, then blocks until the user
// quits or the context is cancelled. Reporter serves the non-interactive
// list and show commands from the same client and containers.
//
// # Startup
//
//  1. Load ~/.config/holocron/config.toml and apply flag overrides
//  2. Load ~/.config/holocron/prefs.toml (theme, language)
//  3. Open the log file; the TUI owns the terminal
//  4. Build the swapi.Client
//  5. Create state.Collection and state.Detail
//  6. Start the TUI (blocks)
//
// Label selection order is: --lang flag, saved preference, config
// language, then $LC_ALL / $LC_MESSAGES / $LANG.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Config file unreadable or invalid
//   - Invalid base URL
//   - Log file cannot be opened
//
// Fetch failures are never fatal. They land in the containers as error
// state and the views render them.
package app
