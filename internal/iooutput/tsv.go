package iooutput

import (
	"encoding/csv"
	"log/slog"
	"os"

	"github.com/enadata/consmeta/pkg/manifest"
)

// WriteTSV writes the table as tab-separated values with a header row.
// A table without rows produces a header-only file.
func WriteTSV(path string, t *manifest.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return WriteTSVError(path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err = w.Write(t.Header); err != nil {
		return WriteTSVError(path, err)
	}
	if err = w.WriteAll(t.Rows); err != nil {
		return WriteTSVError(path, err)
	}

	if err = f.Close(); err != nil {
		return WriteTSVError(path, err)
	}

	slog.Info("Spreadsheet written", "path", path, "rows", t.Len())
	return nil
}
