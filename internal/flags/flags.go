package flags

// Package flags defines canonical CLI flag names shared across the CLI and
// engine. Keeping these as constants helps avoid drift between Cobra flag
// wiring and other code paths that need to reference flags.
// IMPORTANT: These are flag *names* without leading dashes.
const (
	// Inputs
	FlagProjectVersion = "project-version"
	FlagVersionFile    = "version-file"
	FlagBranch         = "branch"
	FlagRepoDir        = "repo-dir"
	FlagRemote         = "remote"

	// Output
	FlagOut = "out"

	// Runtime
	FlagSkip    = "skip"
	FlagTimeout = "timeout"
)
