package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"branchcheck/internal/check"
	"branchcheck/internal/config"
	"branchcheck/internal/output"
	"branchcheck/internal/versionfile"
)

// BranchProvider supplies the branch name to check, keeping the engine
// independent of how the name is obtained (flag, local git, GitHub API).
type BranchProvider interface {
	BranchName(ctx context.Context) (string, error)
}

type Engine struct {
	console *output.ConsoleSink
	errW    io.Writer
}

func NewEngine(out, errW io.Writer) *Engine {
	if errW == nil {
		errW = os.Stderr
	}
	return &Engine{
		console: output.NewConsoleSink(out),
		errW:    errW,
	}
}

func exitCodeForRun(err error) int {
	// Exit code contract:
	// 0 = version matches, or branch is not a versioned branch
	// 1 = version mismatch (verification failure)
	// 3 = fatal error (inputs could not be resolved or artifact not written)
	if err == nil {
		return 0
	}
	var verr *check.VerificationError
	if errors.As(err, &verr) {
		return 1
	}
	return 3
}

// Run executes one branch/version check and returns the process exit code.
func (e *Engine) Run(ctx context.Context, cfg *config.Config, branch BranchProvider) int {
	_, err := e.Execute(ctx, cfg, branch)
	if err != nil {
		var verr *check.VerificationError
		if !errors.As(err, &verr) {
			fmt.Fprintf(e.errW, "Error: %v\n", err)
		}
	}
	return exitCodeForRun(err)
}

// Execute resolves the inputs, evaluates the check, and writes the result
// artifact. A mismatch returns a *check.VerificationError only after the
// artifact has been written; any other error is an infrastructure fault.
func (e *Engine) Execute(ctx context.Context, cfg *config.Config, branch BranchProvider) (check.Result, error) {
	version, err := resolveVersion(cfg)
	if err != nil {
		return check.Result{}, err
	}

	branchName, err := branch.BranchName(ctx)
	if err != nil {
		return check.Result{}, fmt.Errorf("unable to resolve branch name: %w", err)
	}

	result := check.Evaluate(version, branchName)

	// The artifact is written before the verification outcome is signaled,
	// so a failing build still records why.
	if err := output.WriteArtifact(cfg.Output.Path, result.Message); err != nil {
		return result, err
	}

	if result.Status == check.StatusSkipped {
		fmt.Fprintf(e.errW, "Warning: %s\n", result.Message)
	}
	_ = e.console.WriteResult(result)

	if result.Status == check.StatusMismatched {
		return result, &check.VerificationError{Result: result}
	}
	return result, nil
}

func resolveVersion(cfg *config.Config) (string, error) {
	if cfg.Inputs.Version != "" {
		return cfg.Inputs.Version, nil
	}
	return versionfile.Read(cfg.Inputs.VersionFile)
}
