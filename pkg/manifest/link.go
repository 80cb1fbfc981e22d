package manifest

import "strings"

// RefKind describes one kind of operator-supplied reference list: the
// spreadsheet column it fills and the delimiter that separates the run
// accession from the rest of a line.
type RefKind struct {
	Column    string
	Delimiter string
}

var (
	// AssemblyName lines look like "ERR4080473_consensus".
	AssemblyName = RefKind{Column: ColAssemblyName, Delimiter: "_"}

	// FastaFile lines look like "ERR4080473.fasta.gz".
	FastaFile = RefKind{Column: ColFasta, Delimiter: "."}

	// ChromosomeList lines look like "ERR4080473_chromosome_list.txt.gz".
	ChromosomeList = RefKind{Column: ColChromosomeList, Delimiter: "_"}
)

// LinkedRef is a reference line together with the run accession
// derived from it.
type LinkedRef struct {
	Value  string
	RunKey string
}

// DeriveKey returns the part of the line before the first delimiter.
// The whole line is returned if there is no delimiter.
func DeriveKey(line, delim string) string {
	if delim == "" {
		return line
	}
	key, _, _ := strings.Cut(line, delim)
	return key
}

// Link derives run keys for every line, keeping the input order.
// Duplicates are kept.
func Link(lines []string, kind RefKind) []LinkedRef {
	res := make([]LinkedRef, len(lines))
	for i, v := range lines {
		res[i] = LinkedRef{Value: v, RunKey: DeriveKey(v, kind.Delimiter)}
	}
	return res
}
