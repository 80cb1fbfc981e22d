package iofs

import (
	"fmt"
	"runtime"

	"github.com/enadata/consmeta/pkg/config"
	"github.com/enadata/consmeta/pkg/errcode"
	"github.com/gnames/gn"
)

func CreateDirError(dir string, err error) error {
	msg := "Cannot create %s"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create directory: %w",
			fn.Name(), err),
	}
}

func CopyFileError(file string, err error) error {
	msg := "Cannot copy config file to %s"
	vars := []any{file}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CopyFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot copy file: %w",
			fn.Name(), err),
	}
}

func ReadFileError(path string, err error) error {
	msg := "Cannot read <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn.Name(), path, err),
		Msg:  msg,
		Vars: vars,
	}
}

// ClientLibDirMsg is printed to STDERR when Oracle client libraries
// cannot be located.
var ClientLibDirMsg = fmt.Sprintf(
	"ERROR: Environment variable $%s must point at a valid directory",
	config.ClientLibEnv,
)

func ClientLibDirError(dir string, err error) error {
	msg := "<err>Environment variable <em>$%s</em> must point at a valid directory</err>"
	vars := []any{config.ClientLibEnv}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ClientLibDirError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: bad client library directory '%s': %w",
			fn.Name(), dir, err),
	}
}
