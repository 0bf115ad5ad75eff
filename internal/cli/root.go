package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "branchcheck",
	Short: "Check that a project version matches its release branch naming convention",
	Long: `branchcheck verifies that a project's declared version is consistent with
the name of its release-maintenance branch (major.minor.x).

A project version 6.3.1 is consistent with branch 6.3.x; branches that do
not follow the major.minor.x convention (main, feature branches) are not
versioned branches and the check is skipped with a warning.

Examples:
	# Show available commands and global flags
	branchcheck --help

	# Check the current repository against gradle.properties
	branchcheck check --version-file gradle.properties

	# Check an explicit version/branch pair
	branchcheck check --project-version 6.3.1 --branch 6.3.x

	# Print build info
	branchcheck version

Output:
	The check prints a human-readable result to stdout and writes a single
	plain-text result artifact (see "branchcheck check --help").`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose logging (prints every GitHub API call and full error details)")
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
