package gitrepo

import (
	"context"
	"testing"
)

func TestStatic_BranchName(t *testing.T) {
	name, err := Static("6.3.x").BranchName(context.Background())
	if err != nil {
		t.Fatalf("BranchName returned error: %v", err)
	}
	if name != "6.3.x" {
		t.Fatalf("expected 6.3.x, got %q", name)
	}
}

func TestLocal_BranchName_NotARepository(t *testing.T) {
	local := Local{Dir: t.TempDir()}
	if _, err := local.BranchName(context.Background()); err == nil {
		t.Fatal("expected error outside a git work tree")
	}
}
