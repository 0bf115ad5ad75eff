// Package gitrepo resolves the branch name to check from a local git
// repository, keeping the check itself a pure function over two strings.
package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Static is a fixed branch name, typically from an explicit --branch flag.
type Static string

func (s Static) BranchName(ctx context.Context) (string, error) {
	return string(s), nil
}

// Local resolves the currently checked-out branch by running
// `git symbolic-ref --short HEAD` in the repository directory.
type Local struct {
	// Dir is the repository directory. Empty means the current directory.
	Dir string
}

func (l Local) BranchName(ctx context.Context) (string, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return "", errors.New("git not found in PATH")
	}

	// Keep this bounded so a hung credential helper or filesystem doesn't
	// stall the whole check.
	cmdCtx := ctx
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		cmdCtx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}

	cmd := exec.CommandContext(cmdCtx, "git", "symbolic-ref", "--short", "HEAD")
	cmd.Dir = l.Dir
	out, err := cmd.Output()
	if err != nil {
		if cmdCtx.Err() != nil {
			return "", cmdCtx.Err()
		}
		// symbolic-ref fails on detached HEAD and outside a work tree; its
		// stderr says which, so surface it.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("git symbolic-ref failed: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("git symbolic-ref failed: %w", err)
	}

	name := strings.TrimSpace(string(out))
	if name == "" {
		return "", errors.New("git symbolic-ref returned an empty branch name")
	}
	return name, nil
}
