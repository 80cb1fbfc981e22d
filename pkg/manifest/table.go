package manifest

// Column names of the spreadsheet, as expected by the archive's
// batch submission tool.
const (
	ColStudy          = "STUDY"
	ColSample         = "SAMPLE"
	ColAssemblyName   = "ASSEMBLYNAME"
	ColAssemblyType   = "ASSEMBLY_TYPE"
	ColCoverage       = "COVERAGE"
	ColProgram        = "PROGRAM"
	ColPlatform       = "PLATFORM"
	ColMinGapLength   = "MINGAPLENGTH"
	ColMoleculeType   = "MOLECULETYPE"
	ColRunRef         = "RUN_REF"
	ColFasta          = "FASTA"
	ColChromosomeList = "CHROMOSOME_LIST"
)

// Header returns spreadsheet columns in output order.
func Header() []string {
	return []string{
		ColStudy,
		ColSample,
		ColAssemblyName,
		ColAssemblyType,
		ColCoverage,
		ColProgram,
		ColPlatform,
		ColMinGapLength,
		ColMoleculeType,
		ColRunRef,
		ColFasta,
		ColChromosomeList,
	}
}

// Table is the final metadata spreadsheet.
type Table struct {
	ProjectID string
	Header    []string
	Rows      [][]string
}

// Fields returns values of the record in Header order.
func (r Record) Fields() []string {
	res := make([]string, 0, 12)
	res = append(res, r.Study, r.Sample, r.AssemblyName)
	res = append(res, r.Params.fields()...)
	res = append(res, r.Run, r.FastaFile, r.ChromosomeList)
	return res
}

// NewTable converts records to a table.
func NewTable(projectID string, recs []Record) *Table {
	res := &Table{
		ProjectID: projectID,
		Header:    Header(),
		Rows:      make([][]string, len(recs)),
	}
	for i, v := range recs {
		res.Rows[i] = v.Fields()
	}
	return res
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
