package config

import (
	"testing"
	"time"
)

func TestValidate_RequiresVersionSource(t *testing.T) {
	cfg := New()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when no version source is configured")
	}

	cfg.Inputs.Version = "6.3.1"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error: %v", err)
	}
}

func TestValidate_BranchAndRemoteAreMutuallyExclusive(t *testing.T) {
	cfg := New()
	cfg.Inputs.Version = "6.3.1"
	cfg.Inputs.Branch = "6.3.x"
	cfg.Inputs.Remote = "acme/widget"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when both --branch and --remote are set")
	}
}

func TestValidate_NormalizesRemoteSelector(t *testing.T) {
	tests := []struct {
		name    string
		remote  string
		want    string
		wantErr bool
	}{
		{name: "owner/repo", remote: "acme/widget", want: "acme/widget"},
		{name: "https url", remote: "https://github.com/acme/widget", want: "acme/widget"},
		{name: "url without scheme", remote: "github.com/acme/widget", want: "acme/widget"},
		{name: "www url", remote: "https://www.github.com/acme/widget", want: "acme/widget"},
		{name: "git suffix stripped", remote: "https://github.com/acme/widget.git", want: "acme/widget"},
		{name: "bare name", remote: "widget", wantErr: true},
		{name: "wrong host", remote: "https://gitlab.com/acme/widget", wantErr: true},
		{name: "too many segments", remote: "acme/widget/extra", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			cfg.Inputs.Version = "6.3.1"
			cfg.Inputs.Remote = tt.remote

			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got remote %q", cfg.Inputs.Remote)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() returned error: %v", err)
			}
			if cfg.Inputs.Remote != tt.want {
				t.Fatalf("remote normalized mismatch: got %q want %q", cfg.Inputs.Remote, tt.want)
			}
		})
	}
}

func TestRemoteOwnerRepo(t *testing.T) {
	cfg := New()
	cfg.Inputs.Version = "6.3.1"
	cfg.Inputs.Remote = "acme/widget"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error: %v", err)
	}

	owner, repo, ok := cfg.RemoteOwnerRepo()
	if !ok {
		t.Fatal("expected RemoteOwnerRepo to succeed")
	}
	if owner != "acme" || repo != "widget" {
		t.Fatalf("unexpected owner/repo: %s/%s", owner, repo)
	}
}

func TestValidate_RejectsBadTimeoutAndEmptyOut(t *testing.T) {
	cfg := New()
	cfg.Inputs.Version = "6.3.1"
	cfg.Runtime.Timeout = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero timeout")
	}

	cfg = New()
	cfg.Inputs.Version = "6.3.1"
	cfg.Output.Path = "  "
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty output path")
	}
}

func TestNew_Defaults(t *testing.T) {
	cfg := New()
	if cfg.Output.Path != "build/check-expected-branch-version" {
		t.Fatalf("unexpected default output path: %q", cfg.Output.Path)
	}
	if cfg.Runtime.Timeout != time.Minute {
		t.Fatalf("unexpected default timeout: %v", cfg.Runtime.Timeout)
	}
}
