// Package config handles settings for the confc command line.
//
// Settings are layered, later layers overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file found at $XDG_CONFIG_HOME/confc/config.toml
//  3. a file passed with --config
//  4. overrides supplied by command-line flags
//
// The compiler packages never read settings themselves; the CLI resolves
// them here and passes plain values down.
package config
