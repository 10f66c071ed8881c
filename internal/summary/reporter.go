package summary

import (
	"fmt"
	"io"

	"github.com/osse101/usersummary/internal/domain"
)

// Reporter is the human-readable output of the pipeline.
type Reporter interface {
	Notice(msg string)
	Summary(s domain.Summary)
	Failure(label string, err error)
}

// ConsoleReporter writes notices and summary lines to Out and failures to Err.
type ConsoleReporter struct {
	Out io.Writer
	Err io.Writer
}

// NewConsoleReporter creates a reporter over the given streams
func NewConsoleReporter(out, errOut io.Writer) *ConsoleReporter {
	return &ConsoleReporter{Out: out, Err: errOut}
}

func (r *ConsoleReporter) Notice(msg string) {
	r.println(r.Out, msg)
}

func (r *ConsoleReporter) Summary(s domain.Summary) {
	r.println(r.Out, s.String())
}

func (r *ConsoleReporter) Failure(label string, err error) {
	r.println(r.Err, fmt.Sprintf("%s: %v", label, err))
}

func (r *ConsoleReporter) println(w io.Writer, line string) {
	_, _ = fmt.Fprintln(w, line)
}
