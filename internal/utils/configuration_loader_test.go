package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/modflat/internal/utils"
)

type loaderTestConfiguration struct {
	Common struct {
		LogLevel string `mapstructure:"log_level"`
	} `mapstructure:"common"`
	Tools struct {
		Flatten struct {
			List string `mapstructure:"list"`
		} `mapstructure:"flatten"`
	} `mapstructure:"tools"`
}

func TestLoadConfigurationAppliesDefaults(testInstance *testing.T) {
	loader := utils.NewConfigurationLoader("config", "yaml", "MODFLAT", []string{testInstance.TempDir()})

	defaults := map[string]any{
		"common.log_level":   "info",
		"tools.flatten.list": "",
	}

	var configuration loaderTestConfiguration
	metadata, loadError := loader.LoadConfiguration("", defaults, &configuration)
	require.NoError(testInstance, loadError)
	require.Empty(testInstance, metadata.ConfigFileUsed)
	require.Equal(testInstance, "info", configuration.Common.LogLevel)
	require.Empty(testInstance, configuration.Tools.Flatten.List)
}

func TestLoadConfigurationReadsConfigurationFile(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()
	configurationFilePath := filepath.Join(temporaryDirectory, "config.yaml")
	configurationContent := "common:\n  log_level: debug\ntools:\n  flatten:\n    list: lists/modules.txt\n"
	require.NoError(testInstance, os.WriteFile(configurationFilePath, []byte(configurationContent), 0o644))

	loader := utils.NewConfigurationLoader("config", "yaml", "MODFLAT", []string{temporaryDirectory})

	var configuration loaderTestConfiguration
	metadata, loadError := loader.LoadConfiguration(configurationFilePath, map[string]any{"common.log_level": "info"}, &configuration)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, configurationFilePath, metadata.ConfigFileUsed)
	require.Equal(testInstance, "debug", configuration.Common.LogLevel)
	require.Equal(testInstance, "lists/modules.txt", configuration.Tools.Flatten.List)
}

func TestLoadConfigurationRejectsMalformedFile(testInstance *testing.T) {
	temporaryDirectory := testInstance.TempDir()
	configurationFilePath := filepath.Join(temporaryDirectory, "config.yaml")
	require.NoError(testInstance, os.WriteFile(configurationFilePath, []byte(":::not yaml"), 0o644))

	loader := utils.NewConfigurationLoader("config", "yaml", "MODFLAT", []string{temporaryDirectory})

	var configuration loaderTestConfiguration
	_, loadError := loader.LoadConfiguration(configurationFilePath, nil, &configuration)
	require.Error(testInstance, loadError)
}
