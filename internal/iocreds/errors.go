package iocreds

import (
	"fmt"
	"runtime"

	"github.com/enadata/consmeta/pkg/errcode"
	"github.com/gnames/gn"
)

func CredentialsReadError(field string, err error) error {
	msg := "Cannot read <em>%s</em>"
	vars := []any{field}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CredentialsReadError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read %s: %w",
			fn.Name(), field, err),
	}
}

func CredentialsEmptyError(field string) error {
	msg := "<err>Empty <em>%s</em></err>"
	vars := []any{field}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CredentialsEmptyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %s is empty", fn.Name(), field),
	}
}
