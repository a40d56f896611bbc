// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/ledpal/ledpal/constant"
	"github.com/ledpal/ledpal/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "LEDPAL_CONFIG_PATH"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// The path can be overridden with the LEDPAL_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Ledpal))
}

// Logs resolves the directory used for application diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Patterns resolves the directory containing user-defined Lua pattern scripts.
func Patterns() string {
	return ensureDir(filepath.Join(Config(), "patterns"))
}

// Store resolves the palette and group settings document.
func Store() string {
	return filepath.Join(Config(), "store.json")
}

// Queries resolves the remembered palette searches.
func Queries() string {
	return filepath.Join(Config(), "queries.json")
}

// Temp resolves a volatile directory for transient artifacts such as exported previews.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Ledpal))
}
