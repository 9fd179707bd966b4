// Package render defines the error type shared by the font and image renderers.
package render

// Error is a failure raised by one of the renderers. Kind is a short
// CamelCase category (FontNotFound, InvalidConfig, ...) that prefixes the
// diagnostic printed at the command boundary.
type Error struct {
	Kind string
	Err  error
}

func (e *Error) Error() string {
	return e.Kind + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf builds a renderer error with the given kind and wrapped cause.
func Errorf(kind string, err error) *Error {
	return &Error{Kind: kind, Err: err}
}
