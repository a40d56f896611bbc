// Package config registers ledpal's settings with viper and reads them from
// ledpal.toml and LEDPAL_* environment variables.
package config

import (
	"errors"
	"strings"

	"github.com/ledpal/ledpal/constant"
	"github.com/ledpal/ledpal/filesystem"
	"github.com/ledpal/ledpal/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps a dotted key to the suffix of its environment variable.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// FileType is the on-disk format of the configuration file.
const FileType = "toml"

// unrecognized holds keys found in the config file that nothing reads.
var unrecognized []string

// Setup registers defaults and environment bindings, then reads the config
// file if there is one. A missing file is not an error.
func Setup() error {
	viper.SetFs(filesystem.API())
	viper.SetConfigName(constant.Ledpal)
	viper.SetConfigType(FileType)
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Ledpal)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	viper.SetTypeByDefaultValue(true)

	for _, k := range Keys() {
		viper.SetDefault(k, Default[k].Value)
	}
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	unrecognized = nil

	var notFound viper.ConfigFileNotFoundError
	if err := viper.ReadInConfig(); err != nil {
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	unrecognized = lo.Reject(viper.AllKeys(), func(k string, _ int) bool {
		_, ok := Default[k]
		return ok
	})

	return nil
}

// Unrecognized lists config file keys that are not registered, e.g. typos or
// settings from a newer release.
func Unrecognized() []string {
	return unrecognized
}
