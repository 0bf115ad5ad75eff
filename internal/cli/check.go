package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"branchcheck/internal/config"
	"branchcheck/internal/engine"
	"branchcheck/internal/flags"
	gh "branchcheck/internal/github"
	"branchcheck/internal/gitrepo"

	"github.com/spf13/cobra"
)

var cfg = config.New()

var skipFlag string

// skipEnvVar is the environment-variable equivalent of --skip.
const skipEnvVar = "BRANCHCHECK_SKIP"

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the branch/version consistency check",
	Long: `Run the branch/version consistency check.

The check compares the major and minor segments of the project version with
the branch name. Branch names are versioned when they match major.minor.x
(e.g. 6.3.x); anything else is skipped with a warning, since unversioned
branches like main are expected.

Inputs:
	The project version comes from --project-version, or is read from a build
	manifest via --version-file (gradle.properties style *.properties files,
	*.toml manifests such as Cargo.toml or pyproject.toml, and package.json).

	The branch name comes from --branch, from the default branch of a remote
	GitHub repository via --remote OWNER/REPO, or from the local repository
	at --repo-dir (git symbolic-ref --short HEAD).

Authentication (remote mode only):
	branchcheck uses a GitHub access token if one is available. It prefers
	GITHUB_TOKEN, but can also reuse GitHub CLI authentication if the gh CLI
	is installed and logged in. Public repositories work without a token.

Output:
	A single plain-text result artifact is written to --out on every evaluated
	outcome, including the failure path. It contains the bare version on a
	match, otherwise the skip or mismatch message.

Skipping:
	Pass --skip (or set ` + skipEnvVar + `) to bypass the check entirely: no
	artifact is written and the command succeeds. A value of "false" (any
	case) means "do not skip", matching the absent default.

Exit codes:
	0 = version matches, branch is not a versioned branch, or check skipped
	1 = version mismatch
	3 = fatal error (inputs could not be resolved or artifact not written)

Examples:
  # Check the current repository against gradle.properties
  branchcheck check --version-file gradle.properties

  # Check an explicit version/branch pair
  branchcheck check --project-version 6.3.1 --branch 6.3.x

  # Check a remote repository's default branch (CI without a clone)
  branchcheck check --version-file Cargo.toml --remote acme/widget

  # Bypass the check for a one-off build
  branchcheck check --version-file gradle.properties --skip
`,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runCheck(cmd))
	},
}

func runCheck(cmd *cobra.Command) int {
	errW := cmd.ErrOrStderr()

	if value, set := resolveSkipSetting(cmd); skipRequested(value, set) {
		fmt.Fprintln(errW, "Skipping branch version check")
		return 0
	}

	cfg.Runtime.Verbose = verbose

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(errW, "Error: %v\n", err)
		return 3
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Runtime.Timeout)
	defer cancel()

	provider, err := buildBranchProvider(ctx, cfg)
	if err != nil {
		fmt.Fprintf(errW, "Error: %v\n", err)
		return 3
	}

	eng := engine.NewEngine(cmd.OutOrStdout(), errW)
	return eng.Run(ctx, cfg, provider)
}

// resolveSkipSetting reports the effective skip value and whether it was set
// at all, preferring the flag over the environment variable.
func resolveSkipSetting(cmd *cobra.Command) (value string, set bool) {
	if cmd.Flags().Changed(flags.FlagSkip) {
		return skipFlag, true
	}
	return os.LookupEnv(skipEnvVar)
}

// skipRequested implements the bypass gate: an absent setting runs the
// check, and so does the literal value "false" (any case). Any other value,
// including empty, skips the check entirely.
func skipRequested(value string, set bool) bool {
	if !set {
		return false
	}
	return !strings.EqualFold(strings.TrimSpace(value), "false")
}

func buildBranchProvider(ctx context.Context, cfg *config.Config) (engine.BranchProvider, error) {
	switch {
	case cfg.Inputs.Branch != "":
		return gitrepo.Static(cfg.Inputs.Branch), nil
	case cfg.Inputs.Remote != "":
		owner, repo, ok := cfg.RemoteOwnerRepo()
		if !ok {
			return nil, fmt.Errorf("invalid remote repository selector: %q", cfg.Inputs.Remote)
		}
		token, _, err := gh.ResolveAuthToken(ctx, "")
		if err != nil {
			return nil, fmt.Errorf("failed to resolve GitHub auth token: %w", err)
		}
		client, err := gh.NewClient(ctx, token, gh.WithVerbose(cfg.Runtime.Verbose, nil))
		if err != nil {
			return nil, fmt.Errorf("failed to create GitHub client: %w", err)
		}
		return gh.DefaultBranchProvider{Client: client, Owner: owner, Repo: repo}, nil
	default:
		return gitrepo.Local{Dir: cfg.Inputs.RepoDir}, nil
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)

	// Inputs
	checkCmd.Flags().StringVar(&cfg.Inputs.Version, flags.FlagProjectVersion, "", "Declared project version (takes precedence over --version-file)")
	checkCmd.Flags().StringVar(&cfg.Inputs.VersionFile, flags.FlagVersionFile, "", "Build manifest to read the version from: *.properties, *.toml, or *.json")
	checkCmd.Flags().StringVar(&cfg.Inputs.Branch, flags.FlagBranch, "", "Branch name to check against (default: current branch of --repo-dir)")
	checkCmd.Flags().StringVar(&cfg.Inputs.RepoDir, flags.FlagRepoDir, "", "Local git repository directory (default: current directory)")
	checkCmd.Flags().StringVar(&cfg.Inputs.Remote, flags.FlagRemote, "", "GitHub repository as OWNER/REPO; its default branch is checked")

	// Output
	checkCmd.Flags().StringVar(&cfg.Output.Path, flags.FlagOut, cfg.Output.Path, "Path of the plain-text result artifact")

	// Runtime
	checkCmd.Flags().StringVar(&skipFlag, flags.FlagSkip, "", "Bypass the check entirely; \"false\" means do not skip (also "+skipEnvVar+")")
	checkCmd.Flags().Lookup(flags.FlagSkip).NoOptDefVal = "true"
	checkCmd.Flags().DurationVar(&cfg.Runtime.Timeout, flags.FlagTimeout, cfg.Runtime.Timeout, "Timeout for the whole check, including branch resolution (default: 1m)")
}
