// Package ioref reads reference lists: assembly names, chromosome list
// files and FASTA files, one entry per line.
package ioref

import (
	"bufio"
	"log/slog"
	"os"
	"strings"

	"github.com/enadata/consmeta/internal/iofs"
	"github.com/gnames/gnlib"
)

// ReadLines returns non-empty entries of a reference list in file order.
// Only the first tab-separated field of a line is kept, so listings
// with extra columns can be used as is. Invalid UTF-8 is repaired.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, iofs.ReadFileError(path, err)
	}
	defer f.Close()

	var res []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line, _, _ := strings.Cut(sc.Text(), "\t")
		line = strings.TrimSpace(gnlib.FixUtf8(line))
		if line == "" {
			continue
		}
		res = append(res, line)
	}
	if err = sc.Err(); err != nil {
		return nil, iofs.ReadFileError(path, err)
	}

	slog.Debug("Read reference list", "path", path, "entries", len(res))
	return res, nil
}
