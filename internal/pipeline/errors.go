package pipeline

import (
	"errors"
	"fmt"
)

// Errors wrapped by ParseError. Test for them with errors.Is.
var (
	// ErrEmpty flags a blank input line or an empty stage between bars.
	ErrEmpty = errors.New("empty pipeline")
	// ErrUnknownSource flags a first stage which is not a source keyword.
	ErrUnknownSource = errors.New("unknown source")
	// ErrUnknownStage flags a stage keyword the grammar does not know.
	ErrUnknownStage = errors.New("unknown stage")
	// ErrArgument flags a missing, surplus or malformed stage argument.
	ErrArgument = errors.New("invalid argument")
	// ErrAfterTerminal flags any stage following a terminal stage.
	ErrAfterTerminal = errors.New("stage after terminal stage")
)

// ParseError represents an error encountered while parsing a pipeline.
type ParseError struct {
	Stage int    // Index of the offending stage, 0 being the source
	Token string // The offending token, if any
	Err   error  // One of the Err… variables of this package
	Issue string // Human-readable description of the issue
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("stage %d at %q: %s: %s", e.Stage, e.Token, e.Err, e.Issue)
	}
	return fmt.Sprintf("stage %d: %s: %s", e.Stage, e.Err, e.Issue)
}

// Unwrap makes ParseError work with errors.Is.
func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseErr(stage int, token string, err error, format string, args ...any) *ParseError {
	return &ParseError{
		Stage: stage,
		Token: token,
		Err:   err,
		Issue: fmt.Sprintf(format, args...),
	}
}
