// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package option

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cilium/strerror/pkg/encoder"
	"github.com/cilium/strerror/pkg/logger"
)

const (
	KeyConfigFile = "config"
	KeyConfigDir  = "config-dir"
	KeyDebug      = "debug"

	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"

	KeyOutput = "output"
	KeyColor  = "color"
)

const envPrefix = "strerror"

// ReadAndSetFlags copies the viper settings into Config.
func ReadAndSetFlags() error {
	var err error

	Config.Debug = viper.GetBool(KeyDebug)

	if Config.Output, err = encoder.ParseFormat(viper.GetString(KeyOutput)); err != nil {
		return fmt.Errorf("failed to parse %s value: %w", KeyOutput, err)
	}
	if Config.Color, err = encoder.ParseColorMode(viper.GetString(KeyColor)); err != nil {
		return fmt.Errorf("failed to parse %s value: %w", KeyColor, err)
	}

	if Config.LogOpts, err = logger.ParseLogOptions(viper.GetString(KeyLogLevel), viper.GetString(KeyLogFormat)); err != nil {
		return fmt.Errorf("failed to parse logging flags: %w", err)
	}
	return nil
}

// ReadConfigSettings sets up environment lookup (STRERROR_LOG_LEVEL and so
// on) and merges the configuration file and directory named by the
// --config and --config-dir flags, if set.
func ReadConfigSettings() error {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if file := viper.GetString(KeyConfigFile); file != "" {
		viper.SetConfigFile(file)
		if err := viper.MergeInConfig(); err != nil {
			return fmt.Errorf("failed to read config file '%s': %w", file, err)
		}
		logger.GetLogger().WithField(KeyConfigFile, file).Debug("Loaded config from file")
	}

	if dir := viper.GetString(KeyConfigDir); dir != "" {
		cm, err := ReadDirConfig(dir)
		if err != nil {
			return fmt.Errorf("failed to read config from directory '%s': %w", dir, err)
		}
		if err := viper.MergeConfigMap(cm); err != nil {
			return fmt.Errorf("failed to merge config from directory '%s': %w", dir, err)
		}
		logger.GetLogger().WithField(KeyConfigDir, dir).Debug("Loaded config from directory")
	}
	return nil
}

// ReadDirConfig reads a directory holding one file per option: the file
// name is the key and the trimmed file content the value. Hidden files and
// sub-directories are skipped.
func ReadDirConfig(dir string) (map[string]any, error) {
	st, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("'%s' is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	m := map[string]any{}
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		m[e.Name()] = strings.TrimSpace(string(b))
	}
	return m, nil
}

// AddFlags adds the persistent flags of the CLI.
func AddFlags(flags *pflag.FlagSet) {
	flags.String(KeyConfigFile, "", "Configuration file (yaml, json or toml)")
	flags.String(KeyConfigDir, "", "Configuration directory that contains a file for each option")
	flags.BoolP(KeyDebug, "d", false, "Enable debug messages. Equivalent to '--log-level=debug'")
	flags.String(KeyLogLevel, "info", "Set log level")
	flags.String(KeyLogFormat, "text", "Set log format")
	flags.StringP(KeyOutput, "o", string(encoder.Text), "Output format. text, json or yaml")
	flags.String(KeyColor, string(encoder.Auto), "Colorize text output. auto, always or never")
}
