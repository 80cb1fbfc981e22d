package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatabaseDriver sets the database backend.
// Valid values: "oracle", "postgres", "sqlite".
func OptDatabaseDriver(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.Driver", s) {
			c.Database.Driver = s
		}
	}
}

// OptDatabaseHost sets the database server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the database server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseService sets the Oracle service name.
func OptDatabaseService(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Service", s) {
			c.Database.Service = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabasePath sets the SQLite snapshot location.
func OptDatabasePath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Path", s) {
			c.Database.Path = s
		}
	}
}

// OptDatabaseClientLibDir sets the Oracle client library directory.
// Existence of the directory is checked right before connecting.
func OptDatabaseClientLibDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Oracle Client Library Directory", s) {
			c.Database.ClientLibDir = s
		}
	}
}

// OptDatabaseTimeoutSec sets connection and query timeout in seconds.
func OptDatabaseTimeoutSec(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Timeout", i) {
			c.Database.TimeoutSec = i
		}
	}
}

// OptDatabaseUser sets the database account name.
// Runtime-only field - not in ToOptions().
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the database password.
// Runtime-only field - not in ToOptions().
func OptDatabasePassword(s string) Option {
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptSubmissionAssemblyType sets ASSEMBLY_TYPE column value.
func OptSubmissionAssemblyType(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Assembly Type", s) {
			c.Submission.AssemblyType = s
		}
	}
}

// OptSubmissionCoverage sets COVERAGE column value.
func OptSubmissionCoverage(i int) Option {
	return func(c *Config) {
		if isValidInt("Coverage", i) {
			c.Submission.Coverage = i
		}
	}
}

// OptSubmissionProgram sets PROGRAM column value.
func OptSubmissionProgram(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Program", s) {
			c.Submission.Program = s
		}
	}
}

// OptSubmissionPlatform sets PLATFORM column value.
func OptSubmissionPlatform(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Platform", s) {
			c.Submission.Platform = s
		}
	}
}

// OptSubmissionMinGapLength sets MINGAPLENGTH column value.
func OptSubmissionMinGapLength(i int) Option {
	return func(c *Config) {
		if isValidInt("Minimal Gap Length", i) {
			c.Submission.MinGapLength = i
		}
	}
}

// OptSubmissionMoleculeType sets MOLECULETYPE column value.
func OptSubmissionMoleculeType(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Molecule Type", s) {
			c.Submission.MoleculeType = s
		}
	}
}

// OptOutputDir sets the directory for output artifacts.
func OptOutputDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Directory", s) {
			c.Output.Dir = s
		}
	}
}

// OptOutputSuffix sets the suffix of the spreadsheet file name.
func OptOutputSuffix(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Suffix", s) {
			c.Output.Suffix = s
		}
	}
}

// OptOutputXLSX toggles the Excel copy of the spreadsheet.
// Runtime-only field - not in ToOptions().
func OptOutputXLSX(b bool) Option {
	return func(c *Config) {
		c.Output.XLSX = b
	}
}

// OptOutputDescriptor toggles the data-package descriptor.
// Runtime-only field - not in ToOptions().
func OptOutputDescriptor(b bool) Option {
	return func(c *Config) {
		c.Output.Descriptor = b
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
