package manifest

// Record is one row of the spreadsheet in the making. Fields are filled
// step by step as references get joined.
type Record struct {
	Accession
	AssemblyName   string
	Params         Params
	FastaFile      string
	ChromosomeList string
}

// JoinStats describes the outcome of joining records with a reference list.
type JoinStats struct {
	// Column is the spreadsheet column filled by the join.
	Column string

	// Matched is the number of rows produced by the join.
	Matched int

	// UnmatchedLeft is the number of records without a reference line.
	UnmatchedLeft int

	// UnmatchedRight is the number of reference lines without a record.
	UnmatchedRight int

	// MissingRuns are run accessions that had no reference line.
	MissingRuns []string

	// UnknownKeys are derived keys that matched no run accession.
	UnknownKeys []string
}

// Join performs an inner join of records and linked references on the run
// accession. Records keep their order, and a record matching several
// references produces a row per reference in reference order. Rows
// without a partner on the other side are dropped and counted.
func Join(
	recs []Record,
	refs []LinkedRef,
	kind RefKind,
) ([]Record, JoinStats) {
	stats := JoinStats{Column: kind.Column}

	byKey := make(map[string][]string, len(refs))
	for _, v := range refs {
		byKey[v.RunKey] = append(byKey[v.RunKey], v.Value)
	}

	runs := make(map[string]struct{}, len(recs))
	var res []Record
	for _, rec := range recs {
		runs[rec.Run] = struct{}{}
		vals, ok := byKey[rec.Run]
		if !ok {
			stats.UnmatchedLeft++
			stats.MissingRuns = append(stats.MissingRuns, rec.Run)
			continue
		}
		for _, val := range vals {
			row := rec
			row.set(kind.Column, val)
			res = append(res, row)
		}
	}

	for _, v := range refs {
		if _, ok := runs[v.RunKey]; !ok {
			stats.UnmatchedRight++
			stats.UnknownKeys = append(stats.UnknownKeys, v.RunKey)
		}
	}

	stats.Matched = len(res)
	return res, stats
}

// FromAccessions converts accessions into records ready for joins.
func FromAccessions(accs []Accession) []Record {
	res := make([]Record, len(accs))
	for i, v := range accs {
		res[i] = Record{Accession: v}
	}
	return res
}

func (r *Record) set(column, val string) {
	switch column {
	case ColAssemblyName:
		r.AssemblyName = val
	case ColFasta:
		r.FastaFile = val
	case ColChromosomeList:
		r.ChromosomeList = val
	}
}
