package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"shelf/internal/logging"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidLogLevel = errors.New("invalid log level")

// Settings is the content of the optional config.yaml file.
type Settings struct {
	Catalog string      `yaml:"catalog"`
	Log     LogSettings `yaml:"log"`
}

type LogSettings struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

func DefaultSettings() Settings {
	return Settings{
		Catalog: DefaultCatalogPath(),
		Log: LogSettings{
			File:  DefaultLogPath(),
			Level: "info",
		},
	}
}

// LoadSettings reads the settings file at path on top of the defaults. A
// missing file is not an error; a malformed one is.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	if err := s.normalize(); err != nil {
		return Settings{}, fmt.Errorf("invalid config file %q: %w", path, err)
	}
	return s, nil
}

// Override applies non-empty command line values on top of s.
func (s Settings) Override(catalog, logFile, logLevel string) (Settings, error) {
	if catalog != "" {
		s.Catalog = catalog
	}
	if logFile != "" {
		s.Log.File = logFile
	}
	if logLevel != "" {
		s.Log.Level = logLevel
	}

	if err := s.normalize(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s *Settings) normalize() error {
	defaults := DefaultSettings()

	if strings.TrimSpace(s.Catalog) == "" {
		s.Catalog = defaults.Catalog
	}
	catalog, err := ExpandPath(s.Catalog)
	if err != nil {
		return fmt.Errorf("catalog path: %w", err)
	}
	s.Catalog = catalog

	if strings.TrimSpace(s.Log.File) == "" {
		s.Log.File = defaults.Log.File
	}
	logFile, err := ExpandPath(s.Log.File)
	if err != nil {
		return fmt.Errorf("log file path: %w", err)
	}
	s.Log.File = logFile

	s.Log.Level = strings.ToLower(strings.TrimSpace(s.Log.Level))
	if s.Log.Level == "" {
		s.Log.Level = defaults.Log.Level
	}
	if _, err := logging.ParseLevel(s.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogLevel, err)
	}
	return nil
}
