package macro

import (
	"errors"
	"fmt"
)

var (
	// ErrNilImage is returned when Generate is called without a base image.
	ErrNilImage = errors.New("macro: nil base image")

	// ErrNilFont is returned when a Builder has no font source.
	ErrNilFont = errors.New("macro: nil font source")
)

// ResourceError reports a compiled-in resource that failed to decode.
// It indicates a broken build rather than bad input.
type ResourceError struct {
	// Resource names the asset, e.g. "template" or "font".
	Resource string
	Err      error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("macro: load %s resource: %v", e.Resource, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}
