// Package outcome records what happened to the secondary effects of a write
// (CRM pushes, notification emails) so callers can tell a fully applied
// request from one whose primary write landed but whose follow-ups did not.
package outcome

import "errors"

const (
	StatusOK      = "ok"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// ErrSkipped marks an effect that was not attempted, e.g. an unconfigured integration.
var ErrSkipped = errors.New("effect skipped")

type Effect struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type Effects []Effect

// Record appends the result of one effect.
func (e *Effects) Record(name string, err error) {
	eff := Effect{Name: name, Status: StatusOK}
	switch {
	case err == nil:
	case errors.Is(err, ErrSkipped):
		eff.Status = StatusSkipped
		eff.Error = err.Error()
	default:
		eff.Status = StatusFailed
		eff.Error = err.Error()
	}
	*e = append(*e, eff)
}

// Failed reports whether any recorded effect failed.
func (e Effects) Failed() bool {
	for _, eff := range e {
		if eff.Status == StatusFailed {
			return true
		}
	}
	return false
}

// Find returns the effect with the given name.
func (e Effects) Find(name string) (Effect, bool) {
	for _, eff := range e {
		if eff.Name == name {
			return eff, true
		}
	}
	return Effect{}, false
}
