package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config contains all of the configuration options available to the patchkit
// commands.
type Config struct {
	// Directory containing the server binaries to patch.
	ServerDir string `mapstructure:"server_dir"`
	// Full path to file to which logs will be written. Blank will write to stdout.
	LogFilePath string `mapstructure:"log_file_path"`
	// Minimum level of a log required to be written. Options: debug, info, warn, error
	LogLevel string `mapstructure:"log_level"`

	Backup struct {
		// Copy each target file aside before the first write to it.
		Enabled bool `mapstructure:"enabled"`
		// Filename suffix for the backup copies.
		Suffix string `mapstructure:"suffix"`
	} `mapstructure:"backup"`

	History struct {
		// Record every patch outcome in a local database.
		Enabled bool `mapstructure:"enabled"`
		// Database filename, resolved against server_dir unless absolute.
		Filename string `mapstructure:"filename"`
	} `mapstructure:"history"`
}

const envVarPrefix = "PATCHKIT"

// LoadConfig initializes Viper with the contents of the config file under
// configPath. A missing config file is not an error; every option has a
// usable default and can still be set through the environment.
func LoadConfig(configPath string) *Config {
	viper.AddConfigPath(configPath)
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("server_dir", ".")
	viper.SetDefault("log_file_path", "")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("backup.enabled", true)
	viper.SetDefault("backup.suffix", ".bak")
	viper.SetDefault("history.enabled", true)
	viper.SetDefault("history.filename", "patchkit.db")

	viper.SetEnvPrefix(envVarPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Printf("error reading config file: %v", err)
			os.Exit(1)
		}
	}

	// This allows us to set nested yaml config options through environment
	// variables. For example, backup.suffix can be set using: <envVarPrefix>_BACKUP_SUFFIX
	for _, k := range viper.AllKeys() {
		envVar := strings.ReplaceAll(strings.ToUpper(k), ".", "_")
		if err := viper.BindEnv(k, envVarPrefix+"_"+envVar); err != nil {
			fmt.Printf("error binding %s to %s", k, envVarPrefix+"_"+envVar)
			os.Exit(1)
		}
	}

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		fmt.Printf("error unmarshaling config object: %v", err)
		os.Exit(1)
	}
	return config
}

// HistoryPath returns the location of the history database, resolving
// relative filenames against the server directory.
func (c *Config) HistoryPath() string {
	if filepath.IsAbs(c.History.Filename) {
		return c.History.Filename
	}
	return filepath.Join(c.ServerDir, c.History.Filename)
}
