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
	"fmt"
	"os"

	"github.com/enadata/consmeta/internal/iocreds"
	"github.com/enadata/consmeta/internal/iofs"
	"github.com/enadata/consmeta/pkg/config"
	"github.com/spf13/cobra"
)

// checkClientLib verifies the Oracle client library directory before
// anything else happens. The failure is reported on stderr as a plain
// line.
func checkClientLib(cmd *cobra.Command) error {
	if cfg.Database.Driver != "oracle" {
		return nil
	}
	err := iofs.CheckClientLibDir(cfg.Database.ClientLibDir)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), iofs.ClientLibDirMsg)
	}
	return err
}

// askCredentials prompts for the database username and password.
// SQLite snapshots are opened without credentials.
func askCredentials(cmd *cobra.Command) error {
	if cfg.Database.Driver == "sqlite" {
		return nil
	}

	p := &iocreds.Prompter{
		In:  cmd.InOrStdin(),
		Out: cmd.ErrOrStderr(),
		Fd:  -1,
	}
	if f, ok := p.In.(*os.File); ok {
		p.Fd = int(f.Fd())
	}

	user, pass, err := p.Credentials()
	if err != nil {
		return err
	}
	cfg.Update([]config.Option{
		config.OptDatabaseUser(user),
		config.OptDatabasePassword(pass),
	})
	return nil
}
