package manifest

import "strconv"

// Params is the block of submission parameters shared by all rows.
type Params struct {
	AssemblyType string
	Coverage     int
	Program      string
	Platform     string
	MinGapLength int
	MoleculeType string
}

// Replicate returns n copies of the parameter block.
func (p Params) Replicate(n int) []Params {
	res := make([]Params, n)
	for i := range res {
		res[i] = p
	}
	return res
}

// AttachParams concatenates records with parameter blocks by position.
// Both slices must have the same length, otherwise rows would be
// misaligned and RowCountMismatchError is returned.
func AttachParams(recs []Record, block []Params) ([]Record, error) {
	if len(recs) != len(block) {
		return nil, RowCountMismatchError(len(recs), len(block))
	}
	res := make([]Record, len(recs))
	for i := range recs {
		res[i] = recs[i]
		res[i].Params = block[i]
	}
	return res, nil
}

func (p Params) fields() []string {
	return []string{
		p.AssemblyType,
		strconv.Itoa(p.Coverage),
		p.Program,
		p.Platform,
		strconv.Itoa(p.MinGapLength),
		p.MoleculeType,
	}
}
