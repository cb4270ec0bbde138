// Copyright (C) 2024, TokenForge, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestConfigValues(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	configPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"rpc-url": "http://127.0.0.1:9650"}`), 0o644))

	conf := New()
	conf.SetConfig(zerolog.Nop(), configPath)

	require.True(t, conf.ConfigFileExists())
	require.Equal(t, configPath, conf.GetConfigPath())
	require.True(t, conf.ConfigValueIsSet("rpc-url"))
	require.Equal(t, "http://127.0.0.1:9650", conf.GetConfigStringValue("rpc-url"))
	require.False(t, conf.ConfigValueIsSet("network-label"))

	require.NoError(t, conf.SetConfigValue("network-label", "devnet"))
	require.Equal(t, "devnet", conf.GetConfigStringValue("network-label"))
}

func TestMissingConfigFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	conf := New()
	conf.SetConfig(zerolog.Nop(), filepath.Join(t.TempDir(), "config.json"))
	require.False(t, conf.ConfigFileExists())
	require.Equal(t, "", conf.GetConfigStringValue("rpc-url"))
}
