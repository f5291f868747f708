// Package bridge converts textual frame parameters, as supplied by a caller
// outside Go, into a validated frame.Frame.
package bridge

import (
	"fmt"
	"strconv"

	"github.com/willbeason/escape-time/pkg/frame"
)

// A ParseError records a parameter which is not a valid decimal number.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseFloat(field, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		// strconv already reports the value; keep only the reason.
		if numErr, ok := err.(*strconv.NumError); ok {
			err = numErr.Err
		}
		return 0, &ParseError{Field: field, Value: value, Err: err}
	}

	return f, nil
}

// Parse builds a Frame from decimal center and scale strings.
//
// Malformed numbers are reported as *ParseError. Otherwise the frame is
// validated, so callers may check the result with errors.Is against
// frame.ErrInvalidDimensions and frame.ErrInvalidScale.
func Parse(width, height int, centerX, centerY, scale string, maxIter uint32) (frame.Frame, error) {
	cx, err := parseFloat("center x", centerX)
	if err != nil {
		return frame.Frame{}, err
	}

	cy, err := parseFloat("center y", centerY)
	if err != nil {
		return frame.Frame{}, err
	}

	s, err := parseFloat("scale", scale)
	if err != nil {
		return frame.Frame{}, err
	}

	f := frame.Frame{
		Width:         width,
		Height:        height,
		CenterX:       cx,
		CenterY:       cy,
		Scale:         s,
		MaxIterations: maxIter,
	}

	err = f.Validate()
	if err != nil {
		return frame.Frame{}, err
	}

	return f, nil
}

// RenderFrame parses the parameters and renders the frame in one call.
func RenderFrame(width, height int, centerX, centerY, scale string, maxIter uint32) ([]uint32, error) {
	f, err := Parse(width, height, centerX, centerY, scale, maxIter)
	if err != nil {
		return nil, err
	}

	return f.Render()
}
