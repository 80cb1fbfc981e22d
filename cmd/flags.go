/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"github.com/enadata/consmeta/pkg/config"
	"github.com/spf13/cobra"
)

// buildFlags are the flags of the spreadsheet build.
type buildFlags struct {
	project         string
	names           string
	chromosomeLists string
	fastaFiles      string
	outputDir       string
	xlsx            bool
	descriptor      bool
}

func (f *buildFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.project, "project", "p", "",
		"project accession, for example PRJEB12345")
	fl.StringVarP(&f.names, "names", "n", "",
		"file with assembly names, one per line")
	fl.StringVarP(&f.chromosomeLists, "chromosome_list", "c", "",
		"file with chromosome list file names, one per line")
	fl.StringVarP(&f.fastaFiles, "fasta_files", "f", "",
		"file with FASTA file names, one per line")
	fl.StringVarP(&f.outputDir, "output-dir", "o", "",
		"directory for the spreadsheet (default from config)")
	fl.BoolVarP(&f.xlsx, "xlsx", "x", false,
		"also write an xlsx copy of the spreadsheet")
	fl.BoolVarP(&f.descriptor, "descriptor", "d", false,
		"also write a data-package descriptor")

	for _, v := range []string{
		"project", "names", "chromosome_list", "fasta_files",
	} {
		_ = cmd.MarkFlagRequired(v)
	}
}

// options converts explicitly set flags to config options.
func (f *buildFlags) options(cmd *cobra.Command) []config.Option {
	var res []config.Option
	if cmd.Flags().Changed("output-dir") {
		res = append(res, config.OptOutputDir(f.outputDir))
	}
	if cmd.Flags().Changed("xlsx") {
		res = append(res, config.OptOutputXLSX(f.xlsx))
	}
	if cmd.Flags().Changed("descriptor") {
		res = append(res, config.OptOutputDescriptor(f.descriptor))
	}
	return res
}
