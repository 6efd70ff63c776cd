package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/benny779/Logger/core"
	"github.com/benny779/Logger/destination"
	"github.com/benny779/Logger/registry"
)

// document is the on-disk schema shared by both formats.
type document struct {
	Enabled      *bool      `toml:"enabled" yaml:"enabled"`
	TimeFormat   string     `toml:"time_format" yaml:"time_format"`
	Concurrent   *bool      `toml:"concurrent" yaml:"concurrent"`
	History      int        `toml:"history" yaml:"history"`
	Destinations []destSpec `toml:"destinations" yaml:"destinations"`
}

// destSpec is the union of the per-type destination settings. Mail and
// event-log destinations need live collaborators (a Mailer, an EventSink)
// and cannot be declared statically; register those in code.
type destSpec struct {
	Type         string `toml:"type" yaml:"type"`
	ID           string `toml:"id" yaml:"id"`
	MinimumLevel string `toml:"minimum_level" yaml:"minimum_level"`

	// file
	Dir      string `toml:"dir" yaml:"dir"`
	FileName string `toml:"file_name" yaml:"file_name"`
	MaxLines int    `toml:"max_lines" yaml:"max_lines"`
	MaxBytes int64  `toml:"max_bytes" yaml:"max_bytes"`

	// database
	Driver   string `toml:"driver" yaml:"driver"`
	Server   string `toml:"server" yaml:"server"`
	Database string `toml:"database" yaml:"database"`
	Table    string `toml:"table" yaml:"table"`
	User     string `toml:"user" yaml:"user"`
	Password string `toml:"password" yaml:"password"`
}

// Load reads a configuration file and returns a registry wired per its
// contents. The format is chosen by extension: .toml/.tml or .yaml/.yml.
func Load(path string) (*registry.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.ConfigWrap(err, "read configuration")
	}

	var doc document
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml", ".tml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, core.ConfigWrap(err, "parse TOML configuration")
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, core.ConfigWrap(err, "parse YAML configuration")
		}
	default:
		return nil, core.Configf("unsupported configuration extension %q", ext)
	}

	return build(&doc)
}

func build(doc *document) (*registry.Registry, error) {
	r := registry.New()
	if doc.Enabled != nil {
		r.SetGlobalEnabled(*doc.Enabled)
	}
	if doc.TimeFormat != "" {
		r.SetTimeFormat(doc.TimeFormat)
	}
	if doc.Concurrent != nil {
		r.SetConcurrentDispatch(*doc.Concurrent)
	}
	if doc.History > 0 {
		if err := r.EnableHistory(doc.History); err != nil {
			return nil, err
		}
	}

	for i := range doc.Destinations {
		d, err := buildDestination(&doc.Destinations[i])
		if err != nil {
			return nil, err
		}
		r.AddOrReplace(d)
	}
	return r, nil
}

func buildDestination(spec *destSpec) (destination.Destination, error) {
	if spec.ID == "" {
		return nil, core.Configf("destination of type %q missing id", spec.Type)
	}

	var minimum core.Level
	if spec.MinimumLevel != "" {
		level, err := core.ParseLevel(spec.MinimumLevel)
		if err != nil {
			return nil, err
		}
		minimum = level
	}

	switch strings.ToLower(spec.Type) {
	case "file":
		return destination.NewFile(spec.ID, destination.FileConfig{
			Dir:          spec.Dir,
			FileName:     spec.FileName,
			MinimumLevel: minimum,
			MaxLines:     spec.MaxLines,
			MaxBytes:     spec.MaxBytes,
		})
	case "console":
		return destination.NewConsole(spec.ID, destination.ConsoleConfig{
			MinimumLevel: minimum,
		})
	case "trace":
		return destination.NewTrace(spec.ID, destination.TraceConfig{
			MinimumLevel: minimum,
		})
	case "database":
		return destination.NewDatabase(spec.ID, destination.DatabaseConfig{
			Descriptor: destination.Descriptor{
				Driver:   spec.Driver,
				Server:   spec.Server,
				Database: spec.Database,
				Table:    spec.Table,
				User:     spec.User,
				Password: spec.Password,
			},
			MinimumLevel: minimum,
		})
	default:
		return nil, core.Configf("unknown destination type %q", spec.Type)
	}
}
