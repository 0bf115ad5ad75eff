package check

import (
	"fmt"
	"regexp"
	"strings"
)

type Status string

const (
	StatusMatched    Status = "MATCHED"
	StatusMismatched Status = "MISMATCHED"
	StatusSkipped    Status = "SKIPPED"
)

// branchVersionPattern is the naming convention of a release-maintenance
// branch: major.minor.x, e.g. "6.3.x". Anything else (main, feature
// branches, tags) is not a versioned branch.
var branchVersionPattern = regexp.MustCompile(`^[0-9]+\.[0-9]+\.x$`)

// Result is the outcome of one branch/version consistency check.
type Result struct {
	Status  Status
	Version string
	Branch  string

	// Message is the exact text written to the result artifact:
	// the bare version for MATCHED, otherwise a human-readable reason.
	Message string
}

// Evaluate checks whether a declared project version is consistent with the
// branch it lives on. It is a pure function of its two inputs: no I/O, no
// dependency on prior runs.
//
// Branches that do not follow the major.minor.x convention yield SKIPPED,
// not a failure; unversioned branches like "main" are expected.
func Evaluate(version, branch string) Result {
	branch = strings.TrimSpace(branch)

	if !branchVersionPattern.MatchString(branch) {
		return Result{
			Status:  StatusSkipped,
			Version: version,
			Branch:  branch,
			Message: fmt.Sprintf("Branch version [%s] does not match *.x, ignoring", branch),
		}
	}

	if !versionsMatch(version, branch) {
		return Result{
			Status:  StatusMismatched,
			Version: version,
			Branch:  branch,
			Message: fmt.Sprintf("Project version [%s] does not match branch version [%s]. "+
				"Please verify that the branch contains the right version.", version, branch),
		}
	}

	return Result{
		Status:  StatusMatched,
		Version: version,
		Branch:  branch,
		Message: version,
	}
}

// versionsMatch compares the major and minor segments as literal strings:
// "6" and "06" do not match. Inputs with fewer than two segments can never
// match; absence of data is a mismatch, not a parse error.
func versionsMatch(version, branch string) bool {
	versionParts := strings.Split(version, ".")
	branchParts := strings.Split(branch, ".")
	if len(versionParts) < 2 || len(branchParts) < 2 {
		return false
	}
	return versionParts[0] == branchParts[0] && versionParts[1] == branchParts[1]
}
