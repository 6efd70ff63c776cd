package destination

import (
	"database/sql"
	"fmt"
	"regexp"

	_ "github.com/mattn/go-sqlite3"

	"github.com/benny779/Logger/core"
)

// Descriptor addresses the tabular store a Database destination writes to.
type Descriptor struct {
	// Driver is the database/sql driver name (default: "sqlite3").
	Driver string
	// Server is the database host. Required for every driver except
	// sqlite3, where Database alone addresses the store.
	Server string
	// Database is the database name, or the file path for sqlite3.
	Database string
	// Table is the log table name (default: "Log").
	Table string
	// User and Password must be set together; leaving both empty selects
	// integrated/trusted authentication.
	User     string
	Password string
}

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func (d *Descriptor) normalize() error {
	if d.Driver == "" {
		d.Driver = "sqlite3"
	}
	if d.Table == "" {
		d.Table = "Log"
	}
	if !tableName.MatchString(d.Table) {
		return core.Configf("invalid table name %q", d.Table)
	}
	if d.Database == "" {
		return core.Configf("database descriptor missing database name")
	}
	if d.Driver != "sqlite3" && d.Server == "" {
		return core.Configf("database descriptor missing server")
	}
	if (d.User == "") != (d.Password == "") {
		return core.Configf("database descriptor must set both user and password, or neither for trusted authentication")
	}
	return nil
}

func (d *Descriptor) dsn() string {
	if d.Driver == "sqlite3" {
		return d.Database
	}
	if d.User == "" {
		return fmt.Sprintf("server=%s;database=%s;trusted_connection=yes", d.Server, d.Database)
	}
	return fmt.Sprintf("server=%s;database=%s;user id=%s;password=%s", d.Server, d.Database, d.User, d.Password)
}

// Database writes one row per entry into a fixed log table:
// App, Machine, Username, Timestamp, Level, Category, Message. The Category
// column is reserved and currently written empty.
type Database struct {
	state
	db     *sql.DB
	insert string
}

// DatabaseConfig holds configuration for the database destination.
type DatabaseConfig struct {
	Descriptor Descriptor
	// MinimumLevel is the severity filter (default: Info).
	MinimumLevel core.Level
}

// NewDatabase creates a database destination. The descriptor is validated
// and the log table created before the first write.
func NewDatabase(id string, cfg DatabaseConfig) (*Database, error) {
	d := &Database{}
	if err := d.state.init(id, cfg.MinimumLevel, core.InfoLevel); err != nil {
		return nil, err
	}

	desc := cfg.Descriptor
	if err := desc.normalize(); err != nil {
		return nil, err
	}

	db, err := sql.Open(desc.Driver, desc.dsn())
	if err != nil {
		return nil, core.ConfigWrap(err, "open database")
	}
	if desc.Driver == "sqlite3" {
		// A single connection keeps :memory: databases coherent and
		// serializes writes.
		db.SetMaxOpenConns(1)
	}

	schema := fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s (App TEXT, Machine TEXT, Username TEXT, Timestamp DATETIME, Level TEXT, Category TEXT, Message TEXT)`,
		desc.Table)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, core.ConfigWrap(err, "initialize log table")
	}

	d.db = db
	d.insert = fmt.Sprintf(
		`INSERT INTO %s (App, Machine, Username, Timestamp, Level, Category, Message) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		desc.Table)
	return d, nil
}

// Write inserts one row for the entry.
func (d *Database) Write(e *core.Entry) {
	ident := core.Identity()
	d.record(Attempt(func() error {
		_, err := d.db.Exec(d.insert,
			ident.App, ident.Host, ident.User, e.Time, e.Level.String(), "", e.Body)
		return err
	}))
}

// Close releases the database connection.
func (d *Database) Close() error {
	return d.db.Close()
}
