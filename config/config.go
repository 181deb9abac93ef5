package config

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"os/user"
	"path"

	"gopkg.in/yaml.v2"
)

const (
	configDir  string = ".godbg"
	configFile string = "config.yml"

	// DefaultOracleOutputPath is used when a config file does not override
	// OracleOutputPath. It matches the path the original fault-localization
	// driver hard-coded.
	DefaultOracleOutputPath = "1.txt"
)

// SubstitutePathRule pairs a compile-time source path prefix (From) with
// a host path (To), the shape delve's pkg/config uses. The rules are
// parsed from the config file but not applied: source files are read at
// the paths recorded in the debug info.
type SubstitutePathRule struct {
	From string
	To   string
}

// Config defines all configuration options available to be set through the
// config file. OracleOutputPath resolves the spec's open question about
// where the debuggee's output capture file lives: rather than hard-coding
// "1.txt" everywhere, FaultLocalizer reads it from here.
type Config struct {
	Aliases          map[string][]string  `yaml:"aliases"`
	SubstitutePath   []SubstitutePathRule `yaml:"substitute-path"`
	OracleOutputPath string               `yaml:"oracle-output-path"`
}

// LoadConfig attempts to populate a Config object from the config.yml file.
// Missing or unparsable config is not fatal: it falls back to defaults, the
// same tolerance the teacher's LoadConfig shows.
func LoadConfig() *Config {
	if err := createConfigPath(); err != nil {
		fmt.Printf("Could not create config directory: %v.\n", err)
		return Default()
	}
	fullConfigFile, err := GetConfigFilePath(configFile)
	if err != nil {
		fmt.Printf("Unable to get config file path: %v.\n", err)
		return Default()
	}

	f, err := os.Open(fullConfigFile)
	if err != nil {
		createDefaultConfig(fullConfigFile)
		return Default()
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("Closing config file failed: %v.\n", err)
		}
	}()

	data, err := ioutil.ReadAll(f)
	if err != nil {
		fmt.Printf("Unable to read config data: %v.\n", err)
		return Default()
	}

	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		fmt.Printf("Unable to decode config file: %v.\n", err)
		return Default()
	}
	if c.OracleOutputPath == "" {
		c.OracleOutputPath = DefaultOracleOutputPath
	}
	return c
}

// Default returns configuration with every field at its documented default.
func Default() *Config {
	return &Config{
		Aliases:          map[string][]string{},
		OracleOutputPath: DefaultOracleOutputPath,
	}
}

func createDefaultConfig(path string) {
	f, err := os.Create(path)
	if err != nil {
		fmt.Printf("Unable to create config file: %v.\n", err)
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("Closing config file failed: %v.\n", err)
		}
	}()
	if err := writeDefaultConfig(f); err != nil {
		fmt.Printf("Unable to write default configuration: %v.\n", err)
	}
}

func writeDefaultConfig(f *os.File) error {
	var buffer bytes.Buffer
	buffer.WriteString(
		`# Configuration file for godbg.

# This is the default configuration file. Available options are provided,
# but disabled. Delete the leading hash mark to enable an item.

# Provided aliases will be added to the default aliases for a given command.
aliases:
  # command: ["alias1", "alias2"]

# Path (relative to the debuggee's working directory) that the debuggee
# writes its captured output to during fault localization.
# oracle-output-path: 1.txt
`)

	_, err := buffer.WriteTo(f)
	return err
}

// createConfigPath creates the directory structure at which all config
// files are saved.
func createConfigPath() error {
	p, err := GetConfigFilePath("")
	if err != nil {
		return err
	}
	return os.MkdirAll(p, 0700)
}

// GetConfigFilePath gets the full path to the given config file name.
func GetConfigFilePath(file string) (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", err
	}
	return path.Join(usr.HomeDir, configDir, file), nil
}
