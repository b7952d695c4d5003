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
	Register(&EditCmd{})
}

// EditCmd implements the edit command: a partial update of title and/or
// description. Flags that were not passed stay off the wire.
type EditCmd struct {
	title *string
	desc  *string
}

// SetTitle sets the title flag (for testing).
func (c *EditCmd) SetTitle(title string) {
	c.title = &title
}

// SetDescription sets the description flag (for testing).
func (c *EditCmd) SetDescription(desc string) {
	c.desc = &desc
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Edit a task's title or description" }
func (c *EditCmd) Usage() string     { return "tdo edit [--title <t>] [--desc <d>] <n>" }
func (c *EditCmd) NeedsAuth() bool   { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.Func("title", "", func(s string) error {
		c.title = &s
		return nil
	})
	fs.Func("desc", "", func(s string) error {
		c.desc = &s
		return nil
	})
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	num, err := ParseTaskNum(args)
	if err != nil {
		if err == ErrTaskNumRequired {
			fmt.Fprintln(errOut, "error: task number required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.UserError
	}

	if c.title == nil && c.desc == nil {
		fmt.Fprintln(errOut, "error: nothing to update")
		return exitcode.UserError
	}
	if c.title != nil && strings.TrimSpace(*c.title) == "" {
		fmt.Fprintln(errOut, "error: title must not be blank")
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

	upd := service.TaskUpdate{Title: c.title, Description: c.desc}
	updated, err := svc.UpdateTask(ctx, task.ID, upd)
	if err != nil {
		fmt.Fprintf(errOut, "error: could not update task: %s\n", err)
		return classify(err)
	}

	if !cfg.Quiet {
		output.FormatTask(out, num, updated)
	}
	return exitcode.Success
}
