package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tdo/internal/config"
	"tdo/internal/exitcode"
	"tdo/internal/service"
)

func init() {
	Register(&SignupCmd{})
}

// SignupCmd implements the signup command: account creation followed by
// the regular login flow.
type SignupCmd struct {
	name     string
	email    string
	password string
}

// SetDetails sets the signup fields (for testing).
func (c *SignupCmd) SetDetails(name, email, password string) {
	c.name = name
	c.email = email
	c.password = password
}

func (c *SignupCmd) Name() string      { return "signup" }
func (c *SignupCmd) Aliases() []string { return []string{"register"} }
func (c *SignupCmd) Synopsis() string  { return "Create an account and log in" }
func (c *SignupCmd) Usage() string {
	return "tdo signup [--name <n>] [--email <e>] [--password <p>]"
}
func (c *SignupCmd) NeedsAuth() bool { return false }

func (c *SignupCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.name, "name", "", "")
	fs.StringVar(&c.name, "n", "", "")
	fs.StringVar(&c.email, "email", "", "")
	fs.StringVar(&c.email, "e", "", "")
	fs.StringVar(&c.password, "password", "", "")
	fs.StringVar(&c.password, "p", "", "")
}

func (c *SignupCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) != 0 {
		fmt.Fprintln(errOut, "error: unexpected arguments")
		return exitcode.UserError
	}

	name := strings.TrimSpace(c.name)
	if name == "" {
		name = prompt(in, errOut, "name: ")
	}
	if name == "" {
		fmt.Fprintln(errOut, "error: name required")
		return exitcode.UserError
	}

	email := strings.TrimSpace(c.email)
	if email == "" {
		email = prompt(in, errOut, "email: ")
	}
	if email == "" {
		fmt.Fprintln(errOut, "error: email required")
		return exitcode.UserError
	}

	password := c.password
	if password == "" {
		password = prompt(in, errOut, "password: ")
	}
	if password == "" {
		fmt.Fprintln(errOut, "error: password required")
		return exitcode.UserError
	}

	// A failure here may be the follow-up login even though the account
	// was created; the message carries whichever stage failed.
	if _, err := svc.Signup(ctx, name, email, password); err != nil {
		fmt.Fprintf(errOut, "error: signup failed: %s\n", err)
		return classify(err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
