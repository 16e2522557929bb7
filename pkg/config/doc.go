// Package config loads dotinstall's configuration.
//
// Layers, lowest priority first:
//
//  1. embedded/defaults.toml
//  2. the user file (--config, or $XDG_CONFIG_HOME/dotinstall/config.{toml,yaml,yml})
//  3. DOTINSTALL_* environment variables, e.g. DOTINSTALL_PROJECT_NAME
//  4. command-line overrides
//
// Everything is merged with koanf and decoded into Config.
package config
