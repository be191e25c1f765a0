package flow

import "fmt"

// Error is a generation error returned by the layout generator. It contains a
// message and the location of the node that caused the error.
type Error struct {
	Message string
	Loc     Loc
}

// NewError creates a new error at the given location.
func NewError(loc Loc, format string, args ...interface{}) *Error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Loc:     loc,
	}
}

// Position returns the line and column number at which the error occurred.
func (e *Error) Position() (int, int) {
	return e.Loc.Start.Line, e.Loc.Start.Column
}

// Error returns the error string, containing the message and line + column number.
func (e *Error) Error() string {
	return fmt.Sprintf("%s on line %d and column %d", e.Message, e.Loc.Start.Line, e.Loc.Start.Column)
}
