// Package iooutput writes the metadata spreadsheet and its companion
// artifacts to disk.
package iooutput

import (
	"path/filepath"
	"strings"
)

// Artifacts are the files produced for one project.
type Artifacts struct {
	TSV        string
	XLSX       string
	Descriptor string
}

// NewArtifacts derives companion file names from the TSV path.
// The xlsx copy and the descriptor share its stem.
func NewArtifacts(tsvPath string) Artifacts {
	stem := strings.TrimSuffix(tsvPath, filepath.Ext(tsvPath))
	return Artifacts{
		TSV:        tsvPath,
		XLSX:       stem + ".xlsx",
		Descriptor: stem + ".datapackage.json",
	}
}
