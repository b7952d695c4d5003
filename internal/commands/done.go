package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tdo/internal/config"
	"tdo/internal/exitcode"
	"tdo/internal/output"
	"tdo/internal/service"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command: it flips the completion flag of
// the referenced task.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"toggle"} }
func (c *DoneCmd) Synopsis() string  { return "Toggle a task's completion" }
func (c *DoneCmd) Usage() string     { return "tdo done <n>" }
func (c *DoneCmd) NeedsAuth() bool   { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	num, err := ParseTaskNum(args)
	if err != nil {
		if err == ErrTaskNumRequired {
			fmt.Fprintln(errOut, "error: task number required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.UserError
	}

	task, err := taskByNumber(ctx, svc, num)
	if err != nil {
		if strings.Contains(err.Error(), "out of range") {
			fmt.Fprintf(errOut, "error: task number out of range: %d\n", num)
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: could not fetch tasks: %s\n", err)
		return classify(err)
	}

	updated, err := svc.ToggleCompleted(ctx, task.ID, !task.Completed)
	if err != nil {
		// Both toggle encodings failed. Re-fetch once so the next view
		// matches the server, then report the failure.
		if _, rerr := svc.Tasks(ctx); rerr != nil {
			fmt.Fprintf(errOut, "error: could not resync tasks: %s\n", rerr)
		}
		fmt.Fprintf(errOut, "error: could not update task: %s\n", err)
		return classify(err)
	}

	if !cfg.Quiet {
		output.FormatTask(out, num, updated)
	}
	return exitcode.Success
}
