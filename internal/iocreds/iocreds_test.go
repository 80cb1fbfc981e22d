package iocreds_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/enadata/consmeta/internal/iocreds"
	"github.com/enadata/consmeta/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// prompter reads from a string, -1 is never a terminal.
func prompter(in string) (*iocreds.Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return &iocreds.Prompter{In: strings.NewReader(in), Out: &out, Fd: -1}, &out
}

func TestCredentials(t *testing.T) {
	tests := []struct {
		msg, in, user, pass string
	}{
		{"plain", "era_reader\nsecret\n", "era_reader", "secret"},
		{"windows newlines", "era_reader\r\nsecret\r\n", "era_reader", "secret"},
		{"no final newline", "era_reader\nsecret", "era_reader", "secret"},
		{"spaces", "  era_reader \n se cret \n", "era_reader", "se cret"},
	}

	for _, v := range tests {
		p, out := prompter(v.in)
		user, pass, err := p.Credentials()
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.user, user, v.msg)
		assert.Equal(t, v.pass, pass, v.msg)
		assert.Equal(t, "Username: Password: ", out.String(), v.msg)
	}
}

func TestCredentialsErrors(t *testing.T) {
	tests := []struct {
		msg, in string
		code    gn.ErrorCode
		field   string
	}{
		{"no input", "", errcode.CredentialsReadError, "username"},
		{"no password line", "era_reader\n", errcode.CredentialsReadError, "password"},
		{"empty username", "\nsecret\n", errcode.CredentialsEmptyError, "username"},
		{"empty password", "era_reader\n\n", errcode.CredentialsEmptyError, "password"},
	}

	for _, v := range tests {
		p, _ := prompter(v.in)
		_, _, err := p.Credentials()
		require.Error(t, err, v.msg)

		gnErr, ok := err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
		assert.Equal(t, []any{v.field}, gnErr.Vars, v.msg)
	}
}
