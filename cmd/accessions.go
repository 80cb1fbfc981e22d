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
	"context"
	"encoding/csv"

	"github.com/enadata/consmeta/internal/iodb"
	"github.com/enadata/consmeta/pkg/db"
	"github.com/enadata/consmeta/pkg/manifest"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getAccessionsCmd returns the command that prints accession triples
// of a project.
func getAccessionsCmd() *cobra.Command {
	var project string

	accCmd := &cobra.Command{
		Use:   "accessions",
		Short: "Print study, sample and run accessions of a project",
		Long: `Query the metadata database for all runs of a project and print
study, sample and run accessions as tab-separated values.

Use it to check run accessions before preparing reference files.

Examples:
  consmeta accessions -p PRJEB12345
  consmeta accessions -p PRJEB12345 > runs.tsv`,
		Aliases: []string{"acc"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkClientLib(cmd); err != nil {
				return err
			}
			err := runAccessions(cmd, project)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	accCmd.Flags().StringVarP(&project, "project", "p", "",
		"project accession, for example PRJEB12345")
	_ = accCmd.MarkFlagRequired("project")

	return accCmd
}

func runAccessions(cmd *cobra.Command, project string) error {
	if err := askCredentials(cmd); err != nil {
		return err
	}

	var accs []manifest.Accession
	err := iodb.WithOperator(context.Background(), &cfg.Database,
		func(ctx context.Context, op db.Operator) error {
			var err error
			accs, err = op.FetchAccessions(ctx, project)
			return err
		},
	)
	if err != nil {
		return err
	}

	w := csv.NewWriter(cmd.OutOrStdout())
	w.Comma = '\t'
	_ = w.Write([]string{
		manifest.ColStudy, manifest.ColSample, manifest.ColRunRef,
	})
	for _, v := range accs {
		_ = w.Write([]string{v.Study, v.Sample, v.Run})
	}
	w.Flush()
	return w.Error()
}
