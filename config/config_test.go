package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/benny779/Logger/core"
)

func writeConfig(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, "logger.toml", `
enabled = true
time_format = "2006-01-02"
concurrent = false
history = 16

[[destinations]]
type = "file"
id = "app-file"
minimum_level = "WARN"
dir = "`+dir+`"
file_name = "app"
max_lines = 100

[[destinations]]
type = "trace"
id = "diag"
`)

	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}

	d, ok := r.Get("app-file")
	if !ok {
		t.Fatal("file destination not registered")
	}
	if d.MinimumLevel() != core.WarnLevel {
		t.Errorf("minimum level = %v, want Warn", d.MinimumLevel())
	}
	if _, ok := r.Get("diag"); !ok {
		t.Error("trace destination not registered")
	}

	r.Warn("recorded")
	snap := r.HistorySnapshot()
	if len(snap) != 1 {
		t.Fatalf("history holds %d lines, want 1", len(snap))
	}
	// time_format applies to the line layout: "YYYY-MM-DD [WRN] recorded".
	if want := " [WRN] recorded"; len(snap[0]) != 10+len(want) {
		t.Errorf("line = %q, want date-only timestamp layout", snap[0])
	}
}

func TestLoadYAML(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "log.db")
	path := writeConfig(t, "logger.yaml", `
enabled: true
history: 8
destinations:
  - type: database
    id: audit
    minimum_level: ERROR
    driver: sqlite3
    database: `+dbPath+`
    table: AuditLog
`)

	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}

	d, ok := r.Get("audit")
	if !ok {
		t.Fatal("database destination not registered")
	}
	if d.MinimumLevel() != core.ErrorLevel {
		t.Errorf("minimum level = %v, want Error", d.MinimumLevel())
	}

	r.Error("persisted")
	if len(r.HistorySnapshot()) != 1 {
		t.Error("history missed the entry")
	}
}

func TestLoadGloballyDisabled(t *testing.T) {
	path := writeConfig(t, "logger.yml", `
enabled: false
history: 4
destinations: []
`)
	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}

	r.Info("suppressed")
	if len(r.HistorySnapshot()) != 0 {
		t.Error("globally disabled registry still recorded history")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		contents string
	}{
		{"unsupported extension", "logger.json", `{}`},
		{"malformed toml", "logger.toml", `enabled = [`},
		{"malformed yaml", "logger.yaml", "destinations: ["},
		{"unknown destination type", "logger.toml", `
[[destinations]]
type = "carrier-pigeon"
id = "p"
`},
		{"missing id", "logger.toml", `
[[destinations]]
type = "trace"
`},
		{"invalid minimum level", "logger.toml", `
[[destinations]]
type = "trace"
id = "diag"
minimum_level = "LOUD"
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.fileName, tt.contents)
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			var cfgErr *core.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("error %T is not a ConfigError", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want wrapped fs.ErrNotExist", err)
	}
}
