// Package config handles the global citesheet configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Fixed remote locations used when the config file doesn't override them.
const (
	// DefaultStyleURL is the APA 7th edition style definition.
	DefaultStyleURL = "https://raw.githubusercontent.com/citation-style-language/styles/master/apa.csl"

	// DefaultLocaleURL is the English locale document, always fetched
	// regardless of custom style usage.
	DefaultLocaleURL = "https://raw.githubusercontent.com/citation-style-language/locales/master/locales-en-US.xml"
)

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "citesheet"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
	// CacheFile is the fetched-document cache database name.
	CacheFile = "documents.db"
)

// Config represents configuration stored in ~/.config/citesheet/config.yml.
// All fields are optional; zero values fall back to the defaults above.
type Config struct {
	StyleURL       string `yaml:"style_url,omitempty"`
	LocaleURL      string `yaml:"locale_url,omitempty"`
	CiteprocBinary string `yaml:"citeproc_binary,omitempty"`
	CachePath      string `yaml:"cache_path,omitempty"`
}

// Path returns the path to the global config file. Respects
// XDG_CONFIG_HOME, defaults to ~/.config/citesheet/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// DefaultCachePath returns the document cache location under the user cache
// directory, or "" when no cache dir is available.
func DefaultCachePath() string {
	cacheHome, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(cacheHome, ConfigDir, CacheFile)
}

// Load reads the global configuration file and applies defaults. A missing
// file is not an error; it yields the default configuration.
func Load() (*Config, error) {
	return loadFrom(Path())
}

func loadFrom(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		}
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.StyleURL == "" {
		c.StyleURL = DefaultStyleURL
	}
	if c.LocaleURL == "" {
		c.LocaleURL = DefaultLocaleURL
	}
	if c.CachePath == "" {
		c.CachePath = DefaultCachePath()
	}
}
