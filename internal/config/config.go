package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// AppName is the CLI name.
	AppName = "snipreg"
	// EnvPrefix prefixes every environment override, e.g. SNIPREG_DEBUG.
	EnvPrefix = "SNIPREG"

	homeDirName = ".snipreg"
	fileName    = "config"
	fileType    = "yaml"
	dotEnvFile  = ".env"
)

// Setting keys.
const (
	KeyGlobalFile  = "global_file"
	KeyUserFile    = "user_file"
	KeyProjectFile = "project_file"
	KeyDebug       = "debug"
	KeyListType    = "list_type"
)

// Default snippet file names.
const (
	DefaultGlobalFile  = "/etc/snipreg/snippets.yaml"
	DefaultUserFile    = "snippets.yaml"
	DefaultProjectFile = ".snippets.yaml"
)

// Settings is the typed view of the configuration.
type Settings struct {
	GlobalFile  string `mapstructure:"global_file"`
	UserFile    string `mapstructure:"user_file"`
	ProjectFile string `mapstructure:"project_file"`
	Debug       bool   `mapstructure:"debug"`
	ListType    string `mapstructure:"list_type"`
}

// EnvVar returns a fully qualified env var name, e.g. EnvVar("home") → "SNIPREG_HOME".
func EnvVar(suffix string) string {
	return EnvPrefix + "_" + strings.ToUpper(suffix)
}

// Dir returns the path to the snipreg config directory. SNIPREG_HOME
// overrides the default of ~/.snipreg.
func Dir() string {
	if v := os.Getenv(EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", homeDirName)
	}
	return filepath.Join(home, homeDirName)
}

// FilePath returns the full path to the config file (~/.snipreg/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment. A
// .env file in the working directory is applied first; variables already
// set in the environment win over it.
func Load() error {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", dotEnvFile, err)
	}

	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	viper.SetDefault(KeyGlobalFile, DefaultGlobalFile)
	viper.SetDefault(KeyUserFile, filepath.Join(Dir(), DefaultUserFile))
	viper.SetDefault(KeyProjectFile, DefaultProjectFile)
	viper.SetDefault(KeyDebug, false)
	viper.SetDefault(KeyListType, "")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
	return nil
}

// Current returns the loaded settings.
func Current() (*Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	return &s, nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys(), ", "))
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Keys returns the recognized setting keys.
func Keys() []string {
	return []string{KeyGlobalFile, KeyUserFile, KeyProjectFile, KeyDebug, KeyListType}
}

// IsKnownKey reports whether key is a recognized setting.
func IsKnownKey(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}
