// Copyright (C) 2024, TokenForge, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/tokenforge/tokenforge-cli/pkg/utils"
)

type Config struct{}

func New() *Config {
	return &Config{}
}

func (*Config) SetConfig(log zerolog.Logger, s string) {
	viper.SetConfigType("json")
	d := filepath.Dir(s)
	viper.AddConfigPath(d)
	viper.SetConfigFile(s)
	viper.AutomaticEnv() // read in environment variables that match
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Info().Str("config-file", s).Msg("Using config file")
	} else {
		log.Info().Msg("No config file found")
	}
}

func (*Config) GetConfigPath() string {
	return viper.ConfigFileUsed()
}

func (c *Config) ConfigFileExists() bool {
	return utils.FileExists(c.GetConfigPath())
}

// SetConfigValue sets the value of a configuration key.
func (*Config) SetConfigValue(key string, value interface{}) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}

func (*Config) ConfigValueIsSet(key string) bool {
	return viper.IsSet(key)
}

func (*Config) GetConfigBoolValue(key string) bool {
	return viper.GetBool(key)
}

func (*Config) GetConfigStringValue(key string) string {
	return viper.GetString(key)
}
