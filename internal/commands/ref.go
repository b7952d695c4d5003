package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"tdo/internal/service"
)

// ErrTaskNumRequired indicates no task number was provided.
var ErrTaskNumRequired = errors.New("task number required")

// ParseTaskNum parses the positional 1-based task number argument.
func ParseTaskNum(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskNumRequired
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("too many arguments")
	}
	num, err := strconv.Atoi(args[0])
	if err != nil || num < 1 {
		return 0, fmt.Errorf("invalid task number: %s", args[0])
	}
	return num, nil
}

// taskByNumber resolves a 1-based number against the current list,
// newest first as served by the backend.
func taskByNumber(ctx context.Context, svc service.Service, num int) (service.Task, error) {
	tasks, err := svc.Tasks(ctx)
	if err != nil {
		return service.Task{}, err
	}
	if num > len(tasks) {
		return service.Task{}, fmt.Errorf("task number out of range: %d", num)
	}
	return tasks[num-1], nil
}
