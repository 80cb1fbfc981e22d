// Package config provides configuration management for consmeta.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: driver, host, port, service, database, ssl_mode, path,
//     client_lib_dir, timeout_sec
//   - Submission: assembly_type, coverage, program, platform,
//     min_gap_length, molecule_type
//   - Output: dir, suffix
//   - Log: level, format, destination
//
// Runtime-only fields:
//   - Database.User, Database.Password (prompted on every run, never stored)
//   - Output.XLSX, Output.Descriptor (per-command flags)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use CONSMETA_ prefix with underscores for nesting:
//
//	CONSMETA_DATABASE_DRIVER=postgres
//	CONSMETA_DATABASE_HOST=localhost
//	CONSMETA_LOG_LEVEL=debug
//
// The Oracle client library directory is read from ORACLE_CLIENT_LIB.
package config

// Config represents the complete consmeta configuration.
type Config struct {
	// Database contains connection settings for the metadata database.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Submission contains the constant parameters written into every
	// row of the spreadsheet.
	Submission SubmissionConfig `mapstructure:"submission" yaml:"submission"`

	// Output determines where and in which formats the spreadsheet is saved.
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `mapstructure:"-" yaml:"-"`
}

// DatabaseConfig contains metadata database connection parameters.
type DatabaseConfig struct {
	// Driver selects the database backend.
	// Valid values: "oracle", "postgres", "sqlite".
	Driver string `mapstructure:"driver" yaml:"driver"`

	// Host is the database server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the database server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// Service is the Oracle service name.
	Service string `mapstructure:"service" yaml:"service"`

	// Database is the PostgreSQL database name (postgres driver only).
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode (postgres driver only).
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// Path is the SQLite snapshot file (sqlite driver only).
	Path string `mapstructure:"path" yaml:"path"`

	// ClientLibDir is the directory with Oracle client libraries.
	// Usually provided by ORACLE_CLIENT_LIB environment variable.
	ClientLibDir string `mapstructure:"client_lib_dir" yaml:"client_lib_dir"`

	// TimeoutSec limits connection and query time. Zero keeps driver
	// defaults.
	TimeoutSec int `mapstructure:"timeout_sec" yaml:"timeout_sec"`

	// User is the database account, prompted at runtime.
	User string `mapstructure:"-" yaml:"-"`

	// Password is the database password, prompted at runtime.
	Password string `mapstructure:"-" yaml:"-"`
}

// SubmissionConfig holds the parameter block replicated into every
// spreadsheet row.
type SubmissionConfig struct {
	AssemblyType string `mapstructure:"assembly_type"  yaml:"assembly_type"`
	Coverage     int    `mapstructure:"coverage"       yaml:"coverage"`
	Program      string `mapstructure:"program"        yaml:"program"`
	Platform     string `mapstructure:"platform"       yaml:"platform"`
	MinGapLength int    `mapstructure:"min_gap_length" yaml:"min_gap_length"`
	MoleculeType string `mapstructure:"molecule_type"  yaml:"molecule_type"`
}

// OutputConfig describes the output artifacts.
type OutputConfig struct {
	// Dir is the directory where artifacts are written.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// Suffix is appended to the project ID to form the spreadsheet file name.
	Suffix string `mapstructure:"suffix" yaml:"suffix"`

	// XLSX is true if an Excel copy of the spreadsheet is required.
	XLSX bool `mapstructure:"-" yaml:"-"`

	// Descriptor is true if a Frictionless data-package descriptor
	// is required.
	Descriptor bool `mapstructure:"-" yaml:"-"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Driver:   "oracle",
			Host:     "ora-vm-009.ebi.ac.uk",
			Port:     1541,
			Service:  "ERAPRO",
			Database: "era",
			SSLMode:  "disable",
		},
		Submission: SubmissionConfig{
			AssemblyType: "COVID-19 outbreak",
			Coverage:     30,
			Program:      "Minimap2",
			Platform:     "OXFORD_NANOPORE",
			MinGapLength: 1,
			MoleculeType: "genomic DNA",
		},
		Output: OutputConfig{
			Dir:    ".",
			Suffix: "_Consensus_Metadata-TEST.txt",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
