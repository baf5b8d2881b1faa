// Package tool defines the capability interface agents consult for
// reference information before generating.
package tool

import "context"

// Tool is a named capability that turns a textual input into a textual
// result. Tools report usage problems in the returned string rather
// than as errors; a non-nil error means the tool itself broke.
type Tool interface {
	Name() string
	Description() string
	Call(ctx context.Context, input string) (string, error)
}
