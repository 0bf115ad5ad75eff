package check

import (
	"strings"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name           string
		version        string
		branch         string
		expectedStatus Status
	}{
		{
			name:           "Matched - major and minor equal",
			version:        "6.3.1",
			branch:         "6.3.x",
			expectedStatus: StatusMatched,
		},
		{
			name:           "Matched - snapshot version",
			version:        "6.3.0-SNAPSHOT",
			branch:         "6.3.x",
			expectedStatus: StatusMatched,
		},
		{
			name:           "Matched - surrounding whitespace on branch trimmed",
			version:        "6.3.1",
			branch:         "  6.3.x\n",
			expectedStatus: StatusMatched,
		},
		{
			name:           "Mismatched - minor differs",
			version:        "6.4.0",
			branch:         "6.3.x",
			expectedStatus: StatusMismatched,
		},
		{
			name:           "Mismatched - major differs",
			version:        "5.3.0",
			branch:         "6.3.x",
			expectedStatus: StatusMismatched,
		},
		{
			name:           "Mismatched - leading zero is not numerically normalized",
			version:        "06.3.1",
			branch:         "6.3.x",
			expectedStatus: StatusMismatched,
		},
		{
			name:           "Mismatched - version has fewer than two segments",
			version:        "6",
			branch:         "6.3.x",
			expectedStatus: StatusMismatched,
		},
		{
			name:           "Mismatched - empty version",
			version:        "",
			branch:         "6.3.x",
			expectedStatus: StatusMismatched,
		},
		{
			name:           "Skipped - main branch",
			version:        "6.3.1",
			branch:         "main",
			expectedStatus: StatusSkipped,
		},
		{
			name:           "Skipped - feature branch",
			version:        "6.3.1",
			branch:         "feature/add-widget",
			expectedStatus: StatusSkipped,
		},
		{
			name:           "Skipped - patch suffix is not literal x",
			version:        "6.3.1",
			branch:         "6.3.1",
			expectedStatus: StatusSkipped,
		},
		{
			name:           "Skipped - extra segment before x",
			version:        "6.3.1",
			branch:         "6.3.0.x",
			expectedStatus: StatusSkipped,
		},
		{
			name:           "Skipped - empty branch",
			version:        "6.3.1",
			branch:         "",
			expectedStatus: StatusSkipped,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Evaluate(tt.version, tt.branch)
			if result.Status != tt.expectedStatus {
				t.Fatalf("expected status %v, got %v", tt.expectedStatus, result.Status)
			}
		})
	}
}

func TestEvaluate_MatchedMessageIsBareVersion(t *testing.T) {
	result := Evaluate("6.3.1", "6.3.x")
	if result.Message != "6.3.1" {
		t.Fatalf("expected bare version message, got %q", result.Message)
	}
}

func TestEvaluate_MismatchedMessage(t *testing.T) {
	result := Evaluate("6.4.0", "6.3.x")
	want := "Project version [6.4.0] does not match branch version [6.3.x]. " +
		"Please verify that the branch contains the right version."
	if result.Message != want {
		t.Fatalf("mismatch message: got %q want %q", result.Message, want)
	}
}

func TestEvaluate_SkippedMessage(t *testing.T) {
	result := Evaluate("6.3.1", "main")
	want := "Branch version [main] does not match *.x, ignoring"
	if result.Message != want {
		t.Fatalf("skip message: got %q want %q", result.Message, want)
	}
}

func TestEvaluate_SkippedMessageUsesTrimmedBranch(t *testing.T) {
	result := Evaluate("6.3.1", " main \n")
	if strings.Contains(result.Message, " main ") {
		t.Fatalf("skip message should use the trimmed branch name: %q", result.Message)
	}
	if result.Branch != "main" {
		t.Fatalf("expected trimmed branch, got %q", result.Branch)
	}
}

func TestVerificationError_MessageIsArtifactMessage(t *testing.T) {
	result := Evaluate("6.4.0", "6.3.x")
	err := &VerificationError{Result: result}
	if err.Error() != result.Message {
		t.Fatalf("VerificationError message mismatch: got %q want %q", err.Error(), result.Message)
	}
}
