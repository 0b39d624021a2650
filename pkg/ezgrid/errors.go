package ezgrid

import (
	"errors"
	"fmt"
)

// ErrUnknownHeading indicates a heading that is not present on the axis it was looked up on.
var ErrUnknownHeading = errors.New("unknown heading")

// ErrDuplicateHeading indicates a heading that is already present on its axis.
var ErrDuplicateHeading = errors.New("duplicate heading")

// ErrShapeMismatch indicates a value sequence whose length does not match the opposite axis.
var ErrShapeMismatch = errors.New("shape mismatch")

// ErrNoHeader indicates line-records without a header record.
var ErrNoHeader = errors.New("missing header record")

// HeadingError represents a failed heading lookup or registration.
type HeadingError struct {
	Axis    Axis
	Heading any
	Err     error // ErrUnknownHeading or ErrDuplicateHeading
}

func (e *HeadingError) Error() string {
	return fmt.Sprintf("%s heading %v: %v", e.Axis, e.Heading, e.Err)
}

func (e *HeadingError) Unwrap() error {
	return e.Err
}

// NewUnknownHeadingError creates a HeadingError wrapping ErrUnknownHeading.
func NewUnknownHeadingError(axis Axis, heading any) *HeadingError {
	return &HeadingError{Axis: axis, Heading: heading, Err: ErrUnknownHeading}
}

// NewDuplicateHeadingError creates a HeadingError wrapping ErrDuplicateHeading.
func NewDuplicateHeadingError(axis Axis, heading any) *HeadingError {
	return &HeadingError{Axis: axis, Heading: heading, Err: ErrDuplicateHeading}
}

// ShapeError reports a value sequence of the wrong length for a row or column.
type ShapeError struct {
	Axis    Axis
	Heading any
	Want    int
	Got     int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s %v needs %d values, got %d", ErrShapeMismatch, e.Axis, e.Heading, e.Want, e.Got)
}

func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

// TransformError reports a raw value the transform hook refused.
type TransformError struct {
	Row string
	Col string
	Raw string
	Err error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("transform of %q at (%s, %s): %v", e.Raw, e.Row, e.Col, e.Err)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// ErrNoTransformer indicates text construction of a non-string grid without a transform hook.
var ErrNoTransformer = errors.New("no value transformer for non-string grid")
