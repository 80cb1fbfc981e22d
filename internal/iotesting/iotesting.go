// Package iotesting provides shared test utilities: a temporary home
// directory, an SQLite snapshot of archive tables and reference files.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"database/sql"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/enadata/consmeta/pkg/config"

	_ "modernc.org/sqlite"
)

// EraSchema creates the archive tables used by the accession query.
var EraSchema = []string{
	`CREATE TABLE project (project_id TEXT PRIMARY KEY)`,
	`CREATE TABLE study (study_id TEXT PRIMARY KEY, project_id TEXT)`,
	`CREATE TABLE experiment (experiment_id TEXT PRIMARY KEY, study_id TEXT)`,
	`CREATE TABLE experiment_sample (experiment_id TEXT, sample_id TEXT)`,
	`CREATE TABLE sample (sample_id TEXT PRIMARY KEY)`,
	`CREATE TABLE run (run_id TEXT PRIMARY KEY, experiment_id TEXT)`,
}

// EraData has two runs R1, R2 in PRJEB1, one run R3 in PRJEB2 and
// no runs in PRJEB3.
var EraData = []string{
	`INSERT INTO project VALUES ('PRJEB1'), ('PRJEB2'), ('PRJEB3')`,
	`INSERT INTO study VALUES ('ERP1', 'PRJEB1'), ('ERP2', 'PRJEB2')`,
	`INSERT INTO experiment VALUES
		('ERX1', 'ERP1'), ('ERX2', 'ERP1'), ('ERX3', 'ERP2')`,
	`INSERT INTO sample VALUES ('ERS1'), ('ERS2'), ('ERS3')`,
	`INSERT INTO experiment_sample VALUES
		('ERX1', 'ERS1'), ('ERX2', 'ERS2'), ('ERX3', 'ERS3')`,
	`INSERT INTO run VALUES
		('R1', 'ERX1'), ('R2', 'ERX2'), ('R3', 'ERX3')`,
}

// WriteSnapshot creates an SQLite file from the given statements.
// Without statements the schema and the data above are used.
func WriteSnapshot(t *testing.T, stmts ...string) string {
	t.Helper()

	if len(stmts) == 0 {
		stmts = append(append(stmts, EraSchema...), EraData...)
	}

	path := filepath.Join(t.TempDir(), "era.sqlite")
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to create snapshot: %v", err)
	}
	defer conn.Close()

	for _, v := range stmts {
		if _, err = conn.Exec(v); err != nil {
			t.Fatalf("Failed to run %q: %v", v, err)
		}
	}
	return path
}

// SetupHome points HOME to a temporary directory and clears
// environment variables that change configuration, so tests never
// touch ~/.config/consmeta of the user.
func SetupHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, v := range []string{
		config.ClientLibEnv,
		"CONSMETA_DATABASE_DRIVER",
		"CONSMETA_DATABASE_PATH",
		"CONSMETA_OUTPUT_DIR",
		"CONSMETA_LOG_DESTINATION",
	} {
		t.Setenv(v, "")
	}
	return home
}

// UseSnapshot sets the environment to read accessions from a fresh
// SQLite snapshot.
func UseSnapshot(t *testing.T) string {
	t.Helper()
	path := WriteSnapshot(t)
	t.Setenv("CONSMETA_DATABASE_DRIVER", "sqlite")
	t.Setenv("CONSMETA_DATABASE_PATH", path)
	return path
}

// WriteRefFiles writes assembly names, chromosome lists and FASTA
// files and returns matching command line flags.
func WriteRefFiles(t *testing.T, names, chroms, fastas string) []string {
	t.Helper()
	dir := t.TempDir()
	res := make([]string, 0, 6)
	for _, v := range []struct{ flag, file, content string }{
		{"-n", "names.txt", names},
		{"-c", "chromosomes.txt", chroms},
		{"-f", "fasta.txt", fastas},
	} {
		path := filepath.Join(dir, v.file)
		if err := os.WriteFile(path, []byte(v.content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", path, err)
		}
		res = append(res, v.flag, path)
	}
	return res
}

// PgTestConfig returns settings of a PostgreSQL mirror for integration
// tests from CONSMETA_TEST_PG_* variables. The test is skipped in short
// mode or when CONSMETA_TEST_PG_HOST is not set.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    cfg := iotesting.PgTestConfig(t)
//	    // ... connect with cfg
//	}
func PgTestConfig(t *testing.T) *config.DatabaseConfig {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test")
	}
	host := os.Getenv("CONSMETA_TEST_PG_HOST")
	if host == "" {
		t.Skip("CONSMETA_TEST_PG_HOST is not set")
	}

	cfg := config.New()
	opts := []config.Option{
		config.OptDatabaseDriver("postgres"),
		config.OptDatabaseHost(host),
		config.OptDatabaseUser(getenv("CONSMETA_TEST_PG_USER", "postgres")),
		config.OptDatabasePassword(getenv("CONSMETA_TEST_PG_PASSWORD", "postgres")),
		config.OptDatabaseDatabase(getenv("CONSMETA_TEST_PG_DATABASE", "consmeta_test")),
	}
	if port, err := strconv.Atoi(os.Getenv("CONSMETA_TEST_PG_PORT")); err == nil {
		opts = append(opts, config.OptDatabasePort(port))
	} else {
		opts = append(opts, config.OptDatabasePort(5432))
	}
	cfg.Update(opts)
	return &cfg.Database
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
