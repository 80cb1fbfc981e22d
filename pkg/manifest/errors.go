package manifest

import (
	"fmt"
	"runtime"

	"github.com/enadata/consmeta/pkg/errcode"
	"github.com/gnames/gn"
)

func NoAccessionsError(projectID string) error {
	msg := `<err>No sequencing runs found for project <em>%s</em></err>
   Check the project accession.`
	vars := []any{projectID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NoAccessionsError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: project %s has no runs",
			fn.Name(), projectID),
	}
}

func RowCountMismatchError(records, params int) error {
	msg := "Cannot attach <em>%d</em> parameter rows to <em>%d</em> records"
	vars := []any{params, records}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.RowCountMismatchError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: row count mismatch (records %d, params %d)",
			fn.Name(), records, params),
	}
}
