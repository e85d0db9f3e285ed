package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

// ErrUsage matches every error caused by invalid command-line input.
// The error has already been printed together with the usage text.
var ErrUsage = errors.New("invalid usage")

const usage = `
USAGE:
lfdmusic <command> <target>

Commands:
read - Opens LFD file and displays contents
write - Creates LFD file based on contents of directory
help - Displays information about this program`

type usageError struct {
	reason string
}

func newUsageError(reason string) error {
	return &usageError{reason: reason}
}

func (e *usageError) Error() string {
	return e.reason
}

func (e *usageError) Is(target error) bool {
	return target == ErrUsage
}

// targetArg accepts exactly one target of read and write.
func targetArg(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return newUsageError("Missing target argument for command!")
	case len(args) > 1:
		return newUsageError("Too many arguments passed!")
	}
	return nil
}

// helpArgs accepts one ignored argument after help.
func helpArgs(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		return newUsageError("Too many arguments passed!")
	}
	return nil
}

// runRoot is reached for everything that is not a known command.
func runRoot(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return newUsageError("No arguments passed!")
	case len(args) > 2:
		return newUsageError("Too many arguments passed!")
	default:
		return newUsageError("UNKNOWN")
	}
}
