package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

type Config struct {
	Inputs  Inputs
	Output  Output
	Runtime Runtime
}

type Inputs struct {
	// Version is the declared project version (see --project-version).
	// Takes precedence over VersionFile.
	Version string

	// VersionFile is a build manifest to read the version from when Version
	// is not set (see --version-file). Supported formats: *.properties,
	// *.toml, *.json.
	VersionFile string

	// Branch is an explicit branch name to check against (see --branch).
	// Takes precedence over Remote and RepoDir.
	Branch string

	// RepoDir is the local git repository whose checked-out branch is
	// checked (see --repo-dir). Empty means the current directory.
	RepoDir string

	// Remote is a GitHub repository whose default branch is checked, as
	// OWNER/REPO or a github.com URL (see --remote). Normalized to
	// OWNER/REPO by Validate.
	Remote string
}

type Output struct {
	// Path is where the plain-text result artifact is written (see --out).
	// The file is overwritten on each invocation.
	Path string
}

type Runtime struct {
	// Timeout bounds the whole check, including branch resolution (see --timeout).
	// Must be > 0.
	Timeout time.Duration

	// Verbose enables more detailed diagnostics (primarily GitHub API call logs).
	Verbose bool
}

func New() *Config {
	return &Config{
		Output: Output{
			Path: "build/check-expected-branch-version",
		},
		Runtime: Runtime{
			Timeout: time.Minute,
		},
	}
}

func (c *Config) Validate() error {
	c.Inputs.Version = strings.TrimSpace(c.Inputs.Version)
	c.Inputs.VersionFile = strings.TrimSpace(c.Inputs.VersionFile)
	c.Inputs.Branch = strings.TrimSpace(c.Inputs.Branch)

	if c.Inputs.Version == "" && c.Inputs.VersionFile == "" {
		return errors.New("one of --project-version or --version-file must be provided")
	}

	if c.Inputs.Branch != "" && c.Inputs.Remote != "" {
		return errors.New("--branch and --remote are mutually exclusive")
	}

	if c.Inputs.Remote != "" {
		remote, err := normalizeRepoSelector(c.Inputs.Remote)
		if err != nil {
			return fmt.Errorf("invalid --remote value: %w", err)
		}
		c.Inputs.Remote = remote
	}

	if strings.TrimSpace(c.Output.Path) == "" {
		return errors.New("--out must not be empty")
	}

	if c.Runtime.Timeout <= 0 {
		return errors.New("--timeout must be > 0")
	}

	return nil
}

// RemoteOwnerRepo splits the normalized Remote selector. Call after Validate.
func (c *Config) RemoteOwnerRepo() (owner, repo string, ok bool) {
	owner, repo, ok = strings.Cut(c.Inputs.Remote, "/")
	if !ok || owner == "" || repo == "" {
		return "", "", false
	}
	return owner, repo, true
}

func normalizeRepoSelector(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	// Accept OWNER/REPO, or a GitHub URL like:
	//   https://github.com/<owner>/<repo>
	//   github.com/<owner>/<repo>
	if strings.HasPrefix(raw, "github.com/") || strings.HasPrefix(raw, "www.github.com/") {
		raw = "https://" + raw
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", fmt.Errorf("%q", raw)
		}
		host := strings.ToLower(u.Hostname())
		if host == "www.github.com" {
			host = "github.com"
		}
		if host != "github.com" {
			return "", fmt.Errorf("%q", raw)
		}
		parts := strings.FieldsFunc(strings.Trim(u.Path, "/"), func(r rune) bool { return r == '/' })
		if len(parts) < 2 {
			return "", fmt.Errorf("%q", raw)
		}
		return parts[0] + "/" + strings.TrimSuffix(parts[1], ".git"), nil
	}

	parts := strings.Split(raw, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", fmt.Errorf("%q (expected OWNER/REPO)", raw)
	}
	return raw, nil
}
