// Package paths provides centralized path handling for confc.
//
// It resolves the XDG locations confc reads and writes and normalizes
// user-supplied paths.
//
// # Environment Variables
//
//   - CONFC_CONFIG_DIR: Override the settings directory (default: $XDG_CONFIG_HOME/confc)
//   - CONFC_STATE_DIR: Override the state directory holding the log file (default: $XDG_STATE_HOME/confc)
//
// # Layout
//
//   - Config: $XDG_CONFIG_HOME/confc/config.toml
//   - State: $XDG_STATE_HOME/confc/confc.log
package paths
