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
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/enadata/consmeta/internal/iodb"
	"github.com/enadata/consmeta/internal/iooutput"
	"github.com/enadata/consmeta/internal/ioref"
	"github.com/enadata/consmeta/pkg/config"
	"github.com/enadata/consmeta/pkg/db"
	"github.com/enadata/consmeta/pkg/manifest"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
)

func runBuild(cmd *cobra.Command, flags *buildFlags) error {
	start := time.Now()
	ctx := context.Background()

	cfg.Update(flags.options(cmd))

	in, err := readInput(flags)
	if err != nil {
		return err
	}

	// credentials are asked after local files are known to be readable
	if err = askCredentials(cmd); err != nil {
		return err
	}

	var tbl *manifest.Table
	var rep manifest.Report
	err = iodb.WithOperator(ctx, &cfg.Database,
		func(ctx context.Context, op db.Operator) error {
			var err error
			tbl, rep, err = manifest.Build(ctx, op, in)
			return err
		},
	)
	if err != nil {
		return err
	}

	gn.Info("Found <em>%s</em> runs for project <em>%s</em>",
		humanize.Comma(int64(rep.Accessions)), flags.project)
	reportJoins(rep)

	arts := iooutput.NewArtifacts(cfg.OutputPath(flags.project))
	if err = writeArtifacts(arts, tbl); err != nil {
		return err
	}

	dur := time.Since(start)
	slog.Info("Spreadsheet created",
		"project", flags.project,
		"rows", tbl.Len(),
		"path", arts.TSV,
		"duration", gnfmt.TimeString(dur.Seconds()),
	)
	gn.Info("Wrote <em>%s</em> rows to <em>%s</em> in %s",
		humanize.Comma(int64(tbl.Len())), arts.TSV,
		gnfmt.TimeString(dur.Seconds()))
	return nil
}

// readInput reads the three reference lists and gathers everything the
// spreadsheet build needs.
func readInput(flags *buildFlags) (manifest.Input, error) {
	res := manifest.Input{
		ProjectID: flags.project,
		Params:    submissionParams(cfg.Submission),
	}

	for _, v := range []struct {
		path string
		dest *[]string
	}{
		{flags.names, &res.AssemblyNames},
		{flags.chromosomeLists, &res.ChromosomeLists},
		{flags.fastaFiles, &res.FastaFiles},
	} {
		lines, err := ioref.ReadLines(v.path)
		if err != nil {
			return res, err
		}
		*v.dest = lines
	}
	return res, nil
}

func submissionParams(s config.SubmissionConfig) manifest.Params {
	return manifest.Params{
		AssemblyType: s.AssemblyType,
		Coverage:     s.Coverage,
		Program:      s.Program,
		Platform:     s.Platform,
		MinGapLength: s.MinGapLength,
		MoleculeType: s.MoleculeType,
	}
}

// reportJoins warns about runs and references that found no partner.
func reportJoins(rep manifest.Report) {
	for _, v := range rep.Joins {
		if v.UnmatchedLeft > 0 {
			slog.Warn("Runs without reference",
				"column", v.Column,
				"count", v.UnmatchedLeft,
				"runs", strings.Join(v.MissingRuns, ","),
			)
			gn.Warn("<em>%s</em> runs have no <em>%s</em> entry",
				humanize.Comma(int64(v.UnmatchedLeft)), v.Column)
		}
		if v.UnmatchedRight > 0 {
			slog.Warn("References without run",
				"column", v.Column,
				"count", v.UnmatchedRight,
				"keys", strings.Join(v.UnknownKeys, ","),
			)
			gn.Warn("<em>%s</em> <em>%s</em> entries match no run",
				humanize.Comma(int64(v.UnmatchedRight)), v.Column)
		}
	}
	if rep.Rows == 0 {
		gn.Warn("No runs matched all reference lists, " +
			"the spreadsheet has a header only")
	}
}

func writeArtifacts(arts iooutput.Artifacts, tbl *manifest.Table) error {
	if err := iooutput.WriteTSV(arts.TSV, tbl); err != nil {
		return err
	}

	if cfg.Output.XLSX {
		if err := iooutput.WriteXLSX(arts.XLSX, tbl); err != nil {
			return err
		}
		gn.Info("Workbook saved to <em>%s</em>", arts.XLSX)
	}

	if cfg.Output.Descriptor {
		err := iooutput.WriteDescriptor(arts.Descriptor, arts.TSV, tbl)
		if err != nil {
			return err
		}
		gn.Info("Descriptor saved to <em>%s</em>", arts.Descriptor)
	}
	return nil
}
