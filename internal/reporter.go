package internal

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

// Reporter prints human-readable progress for an upload. It never affects control flow.
type Reporter struct {
	w io.Writer
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Running announces the command about to run.
func (r *Reporter) Running(tokens []string) {
	fmt.Fprintf(r.w, "--- Running: %s ---\n", strings.Join(tokens, " "))
}

// Failure prints the diagnostic for a failed step.
func (r *Reporter) Failure(tokens []string, err error) {
	var cmdErr *CommandError
	switch {
	case errors.Is(err, ErrToolNotFound) && errors.As(err, &cmdErr):
		fmt.Fprintf(r.w, "Error: Command '%s' not found. Please ensure Git is installed.\n", cmdErr.Program)
	case errors.As(err, &cmdErr):
		fmt.Fprintf(r.w, "Error executing command: %s\n", strings.Join(tokens, " "))
		if out := cmdErr.Output(); out != "" {
			fmt.Fprintln(r.w, out)
		}
	default:
		fmt.Fprintf(r.w, "Error executing command: %s\n", strings.Join(tokens, " "))
		fmt.Fprintln(r.w, err)
	}
}

// Done prints the completion banner and the manual follow-up instruction.
// commit may be nil when the created commit could not be read back.
func (r *Reporter) Done(commit *CommitSummary, followUp string) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, bannerStyle.Render("--- Local repository is ready! ---"))
	if commit != nil {
		fmt.Fprintf(r.w, "Committed %s: %s\n", commit.ShortHash(), commit.Subject())
	}
	fmt.Fprintln(r.w, "\nTo complete the process, run this final command in your terminal:")
	fmt.Fprintln(r.w, followUp)
}
