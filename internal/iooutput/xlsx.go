package iooutput

import (
	"log/slog"
	"strconv"

	"github.com/enadata/consmeta/pkg/manifest"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet that holds the spreadsheet in xlsx files.
const SheetName = "metadata"

// numeric columns are stored as numbers in xlsx.
var numeric = map[string]bool{
	manifest.ColCoverage:     true,
	manifest.ColMinGapLength: true,
}

// WriteXLSX writes the table into a single worksheet of a new workbook.
func WriteXLSX(path string, t *manifest.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return WriteXLSXError(path, err)
	}

	header := make([]any, len(t.Header))
	for i, v := range t.Header {
		header[i] = v
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return WriteXLSXError(path, err)
	}

	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return WriteXLSXError(path, err)
		}
		vals := make([]any, len(row))
		for j, v := range row {
			vals[j] = v
			if j < len(t.Header) && numeric[t.Header[j]] {
				if n, err := strconv.Atoi(v); err == nil {
					vals[j] = n
				}
			}
		}
		if err = f.SetSheetRow(SheetName, cell, &vals); err != nil {
			return WriteXLSXError(path, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return WriteXLSXError(path, err)
	}

	slog.Info("Workbook written", "path", path, "sheet", SheetName)
	return nil
}
