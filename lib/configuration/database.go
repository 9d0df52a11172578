package configuration

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	devenv "educationgdp/dev/env"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// Database is either a local sqlite file or a remote libsql server.
type Database struct {
	File      string `json:"file"`
	Url       string `json:"url"`
	AuthToken string `json:"auth_token"`
}

func (config Database) Remote() bool {
	return config.Url != ""
}

func (config Database) String() string {
	if config.Remote() {
		return config.Url
	}
	return config.File
}

func (config Database) OpenDB() (*sql.DB, error) {
	if config.Remote() {
		return openLibsql(config.Url, config.AuthToken)
	}
	if config.File == "" {
		return nil, fmt.Errorf("neither a database file nor url was specified")
	}
	path, err := devenv.ResolvePath(config.File)
	if err != nil {
		return nil, err
	}
	return openSqlite(path)
}

func openLibsql(dbUrl, authToken string) (*sql.DB, error) {
	link, err := url.Parse(dbUrl)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if authToken != "" {
		values := link.Query()
		values.Set("authToken", authToken)
		link.RawQuery = values.Encode()
	}
	return sql.Open("libsql", link.String())
}

func wrapOpenDB(err error) error {
	return fmt.Errorf("open db: %w", err)
}

func openSqlite(path string) (*sql.DB, error) {
	if path != ":memory:" {
		err := os.MkdirAll(filepath.Dir(path), 0777)
		if err != nil {
			return nil, wrapOpenDB(err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, wrapOpenDB(err)
	}

	// sqlite only allows a single writer, an in-memory database also only
	// exists for the connection that created it
	db.SetMaxOpenConns(1)
	if path != ":memory:" {
		_, err = db.Exec("PRAGMA journal_mode=WAL")
		if err != nil {
			db.Close()
			return nil, wrapOpenDB(err)
		}
	}

	return db, nil
}
