// Package runlog provides the run-scoped diagnostic log shared by the
// pipeline stages. Notes are advisory: they record oddities seen while
// normalizing rows (missing titles, unparseable years) without rejecting
// anything. Each generation run gets a fresh sink; the collected notes are
// returned as part of the run's result.
package runlog

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sink accumulates diagnostic notes for one generation run. The zero value
// is not usable; construct with New. A Sink is only ever written by the
// single active run, so no locking is needed.
type Sink struct {
	runID  string
	logger *zap.Logger
	notes  []string
}

// New creates a sink for a single run. logger may be nil, in which case
// notes are only accumulated, not logged.
func New(logger *zap.Logger) *Sink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sink{
		runID:  uuid.NewString(),
		logger: logger,
	}
}

// RunID returns the unique identifier assigned to this run.
func (s *Sink) RunID() string {
	return s.runID
}

// Notef records a formatted diagnostic note and mirrors it to the logger.
func (s *Sink) Notef(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	s.notes = append(s.notes, msg)
	s.logger.Debug("run note", zap.String("run_id", s.runID), zap.String("note", msg))
}

// Notes returns all notes recorded so far, in emission order.
func (s *Sink) Notes() []string {
	return s.notes
}
