package database

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

type Database struct {
	DBConn *sql.DB
}

// NewDatabase opens the SQLite database at dbPath and executes the schema.
// Foreign keys are enabled so deleting a post cascades to its comments.
func NewDatabase(dbPath string) (*Database, error) {
	dbconn, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	if err := dbconn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	database := &Database{DBConn: dbconn}

	if err := database.executeSchema(); err != nil {
		return nil, fmt.Errorf("failed to execute schema: %v", err)
	}

	return database, nil
}

func (d *Database) executeSchema() error {
	_, err := d.DBConn.Exec(schema)
	return err
}

func (d *Database) Close() error {
	if d.DBConn != nil {
		return d.DBConn.Close()
	}
	return nil
}

func (d *Database) Ping() error {
	return d.DBConn.Ping()
}
