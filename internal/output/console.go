package output

import (
	"fmt"
	"io"
	"os"

	"branchcheck/internal/check"

	"github.com/fatih/color"
)

type ConsoleSink struct {
	writer io.Writer
}

func NewConsoleSink(w io.Writer) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleSink{writer: w}
}

// WriteResult prints one status line for the check outcome. Color handling
// (NO_COLOR, non-TTY writers) is left to fatih/color.
func (s *ConsoleSink) WriteResult(r check.Result) error {
	tag := statusColor(r.Status).Sprintf("[%s]", r.Status)

	switch r.Status {
	case check.StatusMatched:
		_, err := fmt.Fprintf(s.writer, "%s project version %s matches branch %s\n", tag, r.Version, r.Branch)
		return err
	default:
		_, err := fmt.Fprintf(s.writer, "%s %s\n", tag, r.Message)
		return err
	}
}

func statusColor(status check.Status) *color.Color {
	switch status {
	case check.StatusMatched:
		return color.New(color.FgGreen)
	case check.StatusMismatched:
		return color.New(color.FgRed)
	case check.StatusSkipped:
		return color.New(color.FgYellow)
	default:
		return color.New()
	}
}
