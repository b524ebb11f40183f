package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/textsum/pkg/layout"
)

// FileName is the config file looked up in the working directory and the
// user config directory.
const FileName = ".textsum.yaml"

// Constants for default values.
const (
	DefaultTop           = 9
	DefaultWidth         = 80
	DefaultColumns       = 2
	DefaultFormat        = "auto"
	DefaultTheme         = "default"
	DefaultMaxInputBytes = 64 * 1024 * 1024 // 64MB
)

// Formats lists the accepted output formats.
var Formats = []string{"auto", "terminal", "plain", "llm", "json"}

// ErrInvalid reports a configuration value outside its allowed range.
var ErrInvalid = errors.New("invalid configuration")

// AppConfig mirrors .textsum.yaml. Zero values mean "not set"; Suffix and
// Proportion are pointers so an explicit empty suffix can be told apart
// from a missing one.
type AppConfig struct {
	Top           int                `yaml:"top"`
	Width         int                `yaml:"width"`
	Columns       int                `yaml:"columns"`
	Proportion    *layout.Proportion `yaml:"proportion"`
	Suffix        *string            `yaml:"suffix"`
	Format        string             `yaml:"format"`
	Theme         string             `yaml:"theme"`
	MaxInputBytes int64              `yaml:"max_input_bytes"`
	Debug         bool               `yaml:"debug"`
}

// LoadFile reads the config file at path, or the first one found by
// FindConfigPath when path is empty. It returns the path actually read,
// which is empty when no file was found.
func LoadFile(path string) (*AppConfig, string, error) {
	explicit := path != ""
	if !explicit {
		path = FindConfigPath()
		if path == "" {
			return &AppConfig{}, "", nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &AppConfig{}, "", nil
		}
		return nil, path, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, path, nil
}

// FindConfigPath returns the local config file if present, then the one in
// the user config directory, or "" when neither exists.
func FindConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "textsum", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
