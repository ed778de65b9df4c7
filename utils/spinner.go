package utils

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner is the progress indicator shown while a conversion runs.
type Spinner struct {
	s       *spinner.Spinner
	writer  io.Writer
	StopMsg string
}

// NewSpinner instantiates a new progress indicator writing to stderr.
func NewSpinner(msg string, d time.Duration) *Spinner {
	s := spinner.New(spinner.CharSets[14], d, spinner.WithWriter(os.Stderr), spinner.WithHiddenCursor(true))
	s.Prefix = msg + " "
	return &Spinner{s: s, writer: os.Stderr}
}

// Start starts the progress indicator.
func (s *Spinner) Start() {
	s.s.Start()
}

// Stop stops the progress indicator and prints the stop message, if any.
func (s *Spinner) Stop() {
	s.s.Stop()
	if len(s.StopMsg) > 0 {
		fmt.Fprintln(s.writer, s.StopMsg)
	}
}
