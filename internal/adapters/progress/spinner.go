package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/skillshare-dao/sdao-cli/internal/usecase"
)

// SpinnerSink shows a spinner while a chain confirmation is pending and
// plain lines for everything else.
type SpinnerSink struct {
	spinner *spinner.Spinner
}

// NewSpinnerSink creates a new spinner-based progress sink
func NewSpinnerSink() *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.HideCursor = false
	return &SpinnerSink{spinner: s}
}

// Start begins the spinner with the given message.
func (s *SpinnerSink) Start(message string) {
	s.spinner.Suffix = " " + message
	if !s.spinner.Active() {
		s.spinner.Start()
	}
}

// Stop halts the spinner.
func (s *SpinnerSink) Stop() {
	if s.spinner.Active() {
		s.spinner.Stop()
	}
}

// Info prints an informational line.
func (s *SpinnerSink) Info(message string) {
	fmt.Fprintln(os.Stderr, message)
}

// Warn prints a highlighted warning line.
func (s *SpinnerSink) Warn(message string) {
	fmt.Fprintln(os.Stderr, color.YellowString(message))
}

// Ensure the adapter implements the interface
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
