package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tdo/internal/config"
	"tdo/internal/exitcode"
	"tdo/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "tdo help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  tdo                                        List tasks
  tdo list [common flags]                    List tasks
  tdo add [common flags] [--desc <text>] <title...>
  tdo done [common flags] <n>                Toggle completion of task n
  tdo edit [common flags] [--title <t>] [--desc <d>] <n>
  tdo rm [common flags] [--yes] <n>          Delete task n
  tdo login [common flags] [--email <e>] [--password <p>]
  tdo signup [common flags] [--name <n>] [--email <e>] [--password <p>]
  tdo logout [common flags]
  tdo whoami [common flags]                  Show the current profile
  tdo help
  tdo version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

The backend address comes from BACKEND_URL (a .env file in the working
directory is honored), defaulting to http://localhost:8000.
`
