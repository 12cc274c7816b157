package loader

import (
	"time"

	"github.com/briandowns/spinner"
)

// NewSpinner without prefix
func NewSpinner() *spinner.Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	return s
}

// Run shows the spinner with prefix while inner runs and returns its error.
func Run(s *spinner.Spinner, prefix string, inner func() error) error {
	s.Prefix = prefix + " "
	s.Start()
	defer s.Stop()
	return inner()
}
