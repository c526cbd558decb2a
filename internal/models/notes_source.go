package models

import "fmt"

// NotesSource selects where release notes come from
type NotesSource int

const (
	// NotesNone publishes without a release body
	NotesNone NotesSource = iota
	// NotesScript runs the commits-since-tag helper script
	NotesScript
	// NotesGit walks the repository history directly
	NotesGit
)

func (s NotesSource) String() string {
	switch s {
	case NotesNone:
		return "none"
	case NotesScript:
		return "script"
	case NotesGit:
		return "git"
	default:
		return fmt.Sprintf("NotesSource(%d)", int(s))
	}
}

// ParseNotesSource parses the config-file spelling of a notes source
func ParseNotesSource(s string) (NotesSource, error) {
	switch s {
	case "none":
		return NotesNone, nil
	case "", "script":
		return NotesScript, nil
	case "git":
		return NotesGit, nil
	default:
		return NotesNone, fmt.Errorf("unknown notes source %q (want none, script or git)", s)
	}
}

// FailurePolicy decides what happens when notes cannot be collected
type FailurePolicy int

const (
	// FailureAbort stops the run before anything is published
	FailureAbort FailurePolicy = iota
	// FailureEmpty publishes the release without notes
	FailureEmpty
)

func (p FailurePolicy) String() string {
	switch p {
	case FailureAbort:
		return "abort"
	case FailureEmpty:
		return "empty"
	default:
		return fmt.Sprintf("FailurePolicy(%d)", int(p))
	}
}

// ParseFailurePolicy parses the config-file spelling of a failure policy
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch s {
	case "", "abort":
		return FailureAbort, nil
	case "empty":
		return FailureEmpty, nil
	default:
		return FailureAbort, fmt.Errorf("unknown notes failure policy %q (want abort or empty)", s)
	}
}
