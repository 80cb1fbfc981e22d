// Package manifest assembles the metadata spreadsheet for batch submission
// of consensus sequences. It is a pure package: accessions come from a
// Fetcher, reference lists are plain slices of lines, and the result is an
// in-memory Table. Reading files, talking to databases and writing
// artifacts happen in internal/io* packages.
package manifest

import (
	"context"
)

// Accession links a sequencing run to its sample and study.
type Accession struct {
	Study  string
	Sample string
	Run    string
}

// Fetcher provides accessions of all runs that belong to a project.
type Fetcher interface {
	FetchAccessions(ctx context.Context, projectID string) ([]Accession, error)
}

// Input contains everything the pipeline needs except accessions.
type Input struct {
	// ProjectID identifies the submission project.
	ProjectID string

	// AssemblyNames are consensus sequence names, one per run.
	AssemblyNames []string

	// ChromosomeLists are chromosome-list file names, one per run.
	ChromosomeLists []string

	// FastaFiles are FASTA file names, one per run.
	FastaFiles []string

	// Params is replicated into every row.
	Params Params
}

// Report collects diagnostics of a pipeline run.
type Report struct {
	// Accessions is the number of runs returned for the project.
	Accessions int

	// Joins keeps statistics of each reference join in the order
	// they were applied.
	Joins []JoinStats

	// Rows is the number of rows in the final table.
	Rows int
}

// HasUnmatched is true if any join dropped rows.
func (r Report) HasUnmatched() bool {
	for _, v := range r.Joins {
		if v.UnmatchedLeft > 0 || v.UnmatchedRight > 0 {
			return true
		}
	}
	return false
}
