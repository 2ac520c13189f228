package semverbump

import (
	"errors"
	"fmt"
)

// Sentinel errors that can be checked with errors.Is.
var (
	// ErrNoCommitMessage means no message was supplied and none could be read from git.
	ErrNoCommitMessage = errors.New("no commit message found")

	// ErrUnknownBumpType means a bump type outside major, minor and patch reached the calculator.
	ErrUnknownBumpType = errors.New("unknown bump type")

	// ErrInvalidVersion means a computed version is not valid semver.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrVersionNotIncreased means the computed version does not sort after the current one.
	ErrVersionNotIncreased = errors.New("new version is not greater than current version")

	// ErrGitOperationFailed means a git command returned an error.
	ErrGitOperationFailed = errors.New("git operation failed")

	// ErrNoVersionFound means a companion file holds no recognisable version string.
	ErrNoVersionFound = errors.New("no version found")
)

// GitError describes a failed git invocation.
type GitError struct {
	Operation string
	Args      []string
	Err       error
	Output    string
}

func (e *GitError) Error() string {
	msg := fmt.Sprintf("git %s failed", e.Operation)
	if e.Output != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Output)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *GitError) Unwrap() error {
	return e.Err
}
