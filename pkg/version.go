// Package consmeta builds metadata spreadsheets for batch submission of
// consensus sequences to the European Nucleotide Archive.
package consmeta

var (
	// Version of the application, set by build flags.
	Version = "v0.1.0"

	// Build timestamp, set by build flags.
	Build = "n/a"
)
