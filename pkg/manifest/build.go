package manifest

import (
	"context"
	"log/slog"
)

// Build fetches accessions of the project and assembles the spreadsheet.
// Failing to fetch accessions stops the pipeline, as does a project
// without runs.
func Build(ctx context.Context, f Fetcher, in Input) (*Table, Report, error) {
	accs, err := f.FetchAccessions(ctx, in.ProjectID)
	if err != nil {
		return nil, Report{}, err
	}
	if len(accs) == 0 {
		return nil, Report{}, NoAccessionsError(in.ProjectID)
	}
	return Assemble(in, accs)
}

// Assemble joins accessions with the reference lists and the parameter
// block. The join order is assembly names, parameters, FASTA files and
// chromosome lists. Unmatched rows are dropped and reported in Report.
func Assemble(in Input, accs []Accession) (*Table, Report, error) {
	rep := Report{Accessions: len(accs)}
	recs := FromAccessions(accs)

	var stats JoinStats
	recs, stats = Join(recs, Link(in.AssemblyNames, AssemblyName), AssemblyName)
	rep.Joins = append(rep.Joins, stats)

	recs, err := AttachParams(recs, in.Params.Replicate(len(recs)))
	if err != nil {
		return nil, rep, err
	}

	for _, v := range []struct {
		lines []string
		kind  RefKind
	}{
		{in.FastaFiles, FastaFile},
		{in.ChromosomeLists, ChromosomeList},
	} {
		recs, stats = Join(recs, Link(v.lines, v.kind), v.kind)
		rep.Joins = append(rep.Joins, stats)
	}

	for _, v := range rep.Joins {
		slog.Debug("Joined reference list",
			"column", v.Column,
			"matched", v.Matched,
			"unmatched_runs", v.UnmatchedLeft,
			"unmatched_references", v.UnmatchedRight,
		)
	}

	rep.Rows = len(recs)
	return NewTable(in.ProjectID, recs), rep, nil
}
