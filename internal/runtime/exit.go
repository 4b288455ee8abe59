package runtime

import "github.com/eZanmoto/seed/internal/verror"

// Process exit codes, mirrored from the teacher's cmd/viro exit
// constants and SPEC_FULL.md §6.F.
const (
	ExitSuccess  = 0
	ExitError    = 1
	ExitSyntax   = 2
	ExitUsage    = 64
	ExitInternal = 70
)

func categoryToExitCode(cat verror.Category) int {
	return verror.ToExitCode(cat)
}

// handleError maps a returned error to a process exit code.
func handleError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if ve, ok := err.(*verror.Error); ok {
		return categoryToExitCode(ve.Category)
	}
	return ExitError
}
