// Package logging builds the diagnostic logger. User-facing output goes
// through internal/ui instead.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing plain key=value lines to w.
// verbose enables debug lines; noColor disables level colouring.
func New(w io.Writer, verbose, noColor bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    noColor,
	})
	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
