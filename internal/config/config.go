package config

import (
	"log/slog"
	"path/filepath"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
)

const (
	// DefaultConfigFile is looked up in the base directory when no config
	// path is given.
	DefaultConfigFile = "cleanup.yml"

	// DefaultSpecFile is the swagger document location relative to the
	// base directory.
	DefaultSpecFile = "docs/swagger.yaml"

	// DefaultReportFile is the report location relative to the base directory.
	DefaultReportFile = "SWAGGER_CLEANUP_REPORT.md"
)

// Config holds the file locations of a cleanup run.
type Config struct {
	// SpecFile is the swagger document to clean. It is rewritten in place.
	SpecFile string `koanf:"specFile" yaml:"specFile"`

	// BackupDir is the directory for timestamped backups.
	// Empty value means the directory of SpecFile.
	BackupDir string `koanf:"backupDir" yaml:"backupDir"`

	// ReportFile is the markdown report destination. Overwritten on every run.
	ReportFile string `koanf:"reportFile" yaml:"reportFile"`
}

// NewDefaultConfig returns a config with all values set, rooted at baseDir.
func NewDefaultConfig(baseDir string) *Config {
	specFile := filepath.Join(baseDir, DefaultSpecFile)
	return &Config{
		SpecFile:   specFile,
		BackupDir:  filepath.Dir(specFile),
		ReportFile: filepath.Join(baseDir, DefaultReportFile),
	}
}

// EnsureValues fills missing values with defaults.
// BackupDir follows SpecFile, so overriding only the spec path keeps
// backups next to the document.
func (c *Config) EnsureValues(baseDir string) {
	defaults := NewDefaultConfig(baseDir)

	if c.SpecFile == "" {
		c.SpecFile = defaults.SpecFile
	}
	if c.BackupDir == "" {
		c.BackupDir = filepath.Dir(c.SpecFile)
	}
	if c.ReportFile == "" {
		c.ReportFile = defaults.ReportFile
	}
}

// NewConfigFromFile loads a config from a YAML file.
// A missing or invalid file is not an error: the defaults are used and the
// problem is logged, so the tool still runs in a bare repository checkout.
func NewConfigFromFile(filePath, baseDir string) *Config {
	if filePath == "" {
		filePath = filepath.Join(baseDir, DefaultConfigFile)
	}

	res := &Config{}

	k := koanf.New(".")
	if err := k.Load(file.Provider(filePath), yaml.Parser()); err != nil {
		slog.Debug("config file not loaded, using defaults", "path", filePath, "error", err)
		res.EnsureValues(baseDir)
		return res
	}

	if err := k.Unmarshal("", res); err != nil {
		slog.Error("error unmarshalling config, using defaults", "path", filePath, "error", err)
		res = &Config{}
	}
	res.EnsureValues(baseDir)

	return res
}

// NewConfigFromContent creates a config from YAML file contents.
func NewConfigFromContent(content []byte, baseDir string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
		return nil, err
	}

	res := &Config{}
	if err := k.Unmarshal("", res); err != nil {
		return nil, err
	}
	res.EnsureValues(baseDir)

	return res, nil
}
