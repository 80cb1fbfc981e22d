/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/enadata/consmeta/internal/iofs"
	"github.com/enadata/consmeta/internal/iologger"
	app "github.com/enadata/consmeta/pkg"
	"github.com/enadata/consmeta/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command that builds the consensus
// metadata spreadsheet. Subcommands are attached here.
func getRootCmd() *cobra.Command {
	var flags buildFlags

	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "consmeta",
		Short:   "Builds ENA batch submission metadata for consensus sequences",
		Long: `consmeta creates a metadata spreadsheet for a batch submission of
consensus sequence assemblies to the European Nucleotide Archive.

It queries the archive's metadata database for all runs of a project,
links every run with its assembly name, FASTA file and chromosome list
by run accession, adds the submission parameters and writes the result
as a tab-separated file <project>_Consensus_Metadata-TEST.txt.

Reference files contain one entry per line. The run accession is the
part of an entry before the first '_' (assembly names, chromosome
lists) or the first '.' (FASTA files).

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (CONSMETA_*, ORACLE_CLIENT_LIB)
  3. Config file (~/.config/consmeta/config.yaml)
  4. Built-in defaults

Examples:
  consmeta -p PRJEB12345 -n names.txt -c chromosomes.txt -f fasta.txt
  consmeta -p PRJEB12345 -n names.txt -c chromosomes.txt -f fasta.txt -x -d`,
		PersistentPreRunE: bootstrap,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkClientLib(cmd); err != nil {
				return err
			}
			err := runBuild(cmd, &flags)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Remove the automatic "consmeta version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.Flags().BoolP("version", "V", false, "version for consmeta")
	flags.register(rootCmd)

	rootCmd.AddCommand(getAccessionsCmd())
	rootCmd.AddCommand(getConfigCmd())

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings
	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"driver", cfg.Database.Driver,
	)

	return nil
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return getRootCmd().Execute()
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are
	// allowed. These match the fields included in config.ToOptions().
	v.SetEnvPrefix("CONSMETA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Database configuration
	v.BindEnv("database.driver", "CONSMETA_DATABASE_DRIVER")
	v.BindEnv("database.host", "CONSMETA_DATABASE_HOST")
	v.BindEnv("database.port", "CONSMETA_DATABASE_PORT")
	v.BindEnv("database.service", "CONSMETA_DATABASE_SERVICE")
	v.BindEnv("database.database", "CONSMETA_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "CONSMETA_DATABASE_SSL_MODE")
	v.BindEnv("database.path", "CONSMETA_DATABASE_PATH")
	v.BindEnv("database.timeout_sec", "CONSMETA_DATABASE_TIMEOUT_SEC")
	v.BindEnv("database.client_lib_dir", config.ClientLibEnv)

	// Submission parameters
	v.BindEnv("submission.assembly_type", "CONSMETA_SUBMISSION_ASSEMBLY_TYPE")
	v.BindEnv("submission.coverage", "CONSMETA_SUBMISSION_COVERAGE")
	v.BindEnv("submission.program", "CONSMETA_SUBMISSION_PROGRAM")
	v.BindEnv("submission.platform", "CONSMETA_SUBMISSION_PLATFORM")
	v.BindEnv("submission.min_gap_length", "CONSMETA_SUBMISSION_MIN_GAP_LENGTH")
	v.BindEnv("submission.molecule_type", "CONSMETA_SUBMISSION_MOLECULE_TYPE")

	// Output configuration
	v.BindEnv("output.dir", "CONSMETA_OUTPUT_DIR")
	v.BindEnv("output.suffix", "CONSMETA_OUTPUT_SUFFIX")

	// Log configuration
	v.BindEnv("log.level", "CONSMETA_LOG_LEVEL")
	v.BindEnv("log.format", "CONSMETA_LOG_FORMAT")
	v.BindEnv("log.destination", "CONSMETA_LOG_DESTINATION")

	v.AutomaticEnv()
}
