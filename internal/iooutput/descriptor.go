package iooutput

import (
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/enadata/consmeta/pkg/manifest"
	"github.com/frictionlessdata/datapackage-go/datapackage"
	"github.com/frictionlessdata/datapackage-go/validator"
)

var nameRe = regexp.MustCompile(`[^-a-z0-9._]+`)

// ResourceName converts a project ID to a valid data-package name.
func ResourceName(projectID string) string {
	name := nameRe.ReplaceAllString(strings.ToLower(projectID), "-")
	return name + "-consensus-metadata"
}

// WriteDescriptor writes a Frictionless tabular data-package descriptor
// for the TSV file. The resource path is relative to the descriptor,
// so both files must live in the same directory.
func WriteDescriptor(path, tsvPath string, t *manifest.Table) error {
	name := ResourceName(t.ProjectID)

	fields := make([]any, len(t.Header))
	for i, v := range t.Header {
		typ := "string"
		if numeric[v] {
			typ = "integer"
		}
		fields[i] = map[string]any{"name": v, "type": typ}
	}

	resource := map[string]any{
		"name":      name,
		"path":      filepath.Base(tsvPath),
		"profile":   "tabular-data-resource",
		"format":    "csv",
		"mediatype": "text/tab-separated-values",
		"encoding":  "utf-8",
		"dialect": map[string]any{
			"delimiter": "\t",
			"header":    true,
		},
		"schema": map[string]any{
			"fields": fields,
		},
	}

	descriptor := map[string]any{
		"name":        name,
		"title":       t.ProjectID + " consensus sequence metadata",
		"profile":     "tabular-data-package",
		"created":     time.Now().Format(time.RFC3339),
		"keywords":    []any{"consensus", "metadata", t.ProjectID},
		"description": "Batch submission spreadsheet for consensus sequences",
		"resources":   []any{resource},
	}

	pkg, err := datapackage.New(descriptor, filepath.Dir(path),
		validator.InMemoryLoader())
	if err != nil {
		return WriteDescriptorError(path, err)
	}

	if err = pkg.SaveDescriptor(path); err != nil {
		return WriteDescriptorError(path, err)
	}

	slog.Info("Descriptor written", "path", path, "resource", name)
	return nil
}
