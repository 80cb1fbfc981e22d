package iodb

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/enadata/consmeta/pkg/errcode"
	"github.com/gnames/gn"
)

func UnknownDriverError(driver string) error {
	msg := `<err>Unknown database driver <em>%s</em></err>
   Supported drivers: oracle, postgres, sqlite.`
	vars := []any{driver}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnknownDriverError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: unknown driver '%s'",
			fn.Name(), driver),
	}
}

func ConnectionError(driver, target, user string, err error) error {
	msg := `<err>Cannot connect to <em>%s</em> database <em>%s</em> as <em>%s</em></err>
   Check your credentials and network access.`
	vars := []any{driver, target, user}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: failed to connect to %s: %w",
			fn.Name(), target, err),
	}
}

func NotConnectedError() error {
	msg := "Database is not connected"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: %w",
			fn.Name(), errors.New("database not connected")),
	}
}

func QueryError(projectID string, err error) error {
	msg := "Cannot query accessions of project <em>%s</em>"
	vars := []any{projectID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBQueryError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: accession query failed: %w",
			fn.Name(), err),
	}
}

func ScanError(err error) error {
	msg := "Cannot read accessions returned by the database"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBScanError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: failed to scan row: %w",
			fn.Name(), err),
	}
}
