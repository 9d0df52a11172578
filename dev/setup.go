package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	devenv "educationgdp/dev/env"
	"educationgdp/lib/configuration"
	"educationgdp/lib/store/db"
)

func createDb(filename, schema string) error {
	path, err := devenv.ResolvePath(filepath.Join(devenv.StatePrefix, filename))
	if err != nil {
		return err
	}

	_, err = os.Stat(path)
	if err == nil {
		fmt.Println("database already created at", path)
		return nil
	}

	fmt.Println("creating database at", path)
	database, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer database.Close()
	_, err = database.Exec(schema)
	return err
}

func CreateEmptyDB() error {
	return createDb("education.db", db.Schema)
}

const localConfig = `{
  // written by "go run ./dev", points the pipeline at dev/.state
  database: {
    file: "<dev_state>/education.db",
  },
  output_dir: "<dev_state>/figures",
  dump_http: "<dev_state>/http",
}
`

// WriteLocalConfig writes an education.local.json5 overlay unless one
// already exists.
func WriteLocalConfig() error {
	name := "education.local.json5"
	_, err := os.Stat(name)
	if err == nil {
		fmt.Println("local config already exists at", name)
		return nil
	}
	fmt.Println("writing local config to", name)
	return os.WriteFile(name, []byte(localConfig), 0644)
}

func PrintConfigLocations() {
	slog.Info(
		"the pipeline reads " + configuration.DefaultName + " merged with education.local.json5, " +
			"download the GDP csv next to it or set gdp_file.",
	)
}
