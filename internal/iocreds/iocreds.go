// Package iocreds reads database credentials from the operator.
// Passwords are not echoed when input comes from a terminal.
package iocreds

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// Prompter asks for a username and a password.
type Prompter struct {
	// In is read when Fd is not a terminal.
	In io.Reader
	// Out receives the prompts.
	Out io.Writer
	// Fd is the file descriptor checked for a terminal.
	Fd int

	rd *bufio.Reader
}

// Credentials prompts for a username and a password. Both must be
// non-empty.
func (p *Prompter) Credentials() (string, string, error) {
	user, err := p.readLine("Username: ")
	if err != nil {
		return "", "", CredentialsReadError("username", err)
	}
	if user == "" {
		return "", "", CredentialsEmptyError("username")
	}

	pass, err := p.readPassword("Password: ")
	if err != nil {
		return "", "", CredentialsReadError("password", err)
	}
	if pass == "" {
		return "", "", CredentialsEmptyError("password")
	}

	return user, pass, nil
}

func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.Out, prompt)
	if p.rd == nil {
		p.rd = bufio.NewReader(p.In)
	}

	line, err := p.rd.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) readPassword(prompt string) (string, error) {
	if !term.IsTerminal(p.Fd) {
		return p.readLine(prompt)
	}

	fmt.Fprint(p.Out, prompt)
	bs, err := term.ReadPassword(p.Fd)
	fmt.Fprintln(p.Out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(bs)), nil
}
