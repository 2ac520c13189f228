package semverbump

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// CommandExecutor runs external commands.
type CommandExecutor interface {
	// ExecuteWithOutput runs cmd and returns its standard output.
	ExecuteWithOutput(cmd *exec.Cmd) (string, error)
}

// ExecExecutor is the CommandExecutor backed by os/exec.
type ExecExecutor struct{}

// ExecuteWithOutput implements CommandExecutor. Failures are returned as *GitError.
func (ExecExecutor) ExecuteWithOutput(cmd *exec.Cmd) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var args []string
		if len(cmd.Args) > 1 {
			args = cmd.Args[1:]
		}
		operation := ""
		if len(args) > 0 {
			operation = args[0]
		}
		return "", &GitError{
			Operation: operation,
			Args:      args,
			Err:       fmt.Errorf("%w: %v", ErrGitOperationFailed, err),
			Output:    strings.TrimSpace(stderr.String()),
		}
	}
	return stdout.String(), nil
}

// CommitSource supplies the commit message to classify when none is given.
type CommitSource interface {
	LastCommitSubject(ctx context.Context) (string, error)
}

// GitCommitSource reads the subject of HEAD from the git repository in Dir.
type GitCommitSource struct {
	Dir      string
	Executor CommandExecutor
}

// NewGitCommitSource returns a GitCommitSource for dir using os/exec.
func NewGitCommitSource(dir string) *GitCommitSource {
	return &GitCommitSource{Dir: dir, Executor: ExecExecutor{}}
}

// LastCommitSubject returns the subject line of the most recent commit on the
// current branch.
func (s *GitCommitSource) LastCommitSubject(ctx context.Context) (string, error) {
	executor := s.Executor
	if executor == nil {
		executor = ExecExecutor{}
	}

	cmd := exec.CommandContext(ctx, "git", "log", "-1", "--pretty=format:%s")
	cmd.Dir = s.Dir
	out, err := executor.ExecuteWithOutput(cmd)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// commitSubjectOrEmpty asks src for the last commit subject and returns "" on
// any failure: a missing git binary, a directory outside a repository, or a
// repository without commits. The empty result is the caller's cue to abort.
func commitSubjectOrEmpty(ctx context.Context, src CommitSource) string {
	subject, err := src.LastCommitSubject(ctx)
	if err != nil {
		slog.Debug("could not read last commit subject", "error", err)
		return ""
	}
	return subject
}
