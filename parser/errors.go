// SPDX-License-Identifier: MIT

package parser

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks on Parse results.
var (
	ErrSyntax     = errors.New("parser: malformed JSON")
	ErrValidation = errors.New("parser: invalid graph")
)

// Kind classifies a ValidationError.
type Kind int

const (
	MissingKey Kind = iota
	WrongType
	OutOfRange
)

func (k Kind) String() string {
	switch k {
	case MissingKey:
		return "missing_key"
	case WrongType:
		return "wrong_type"
	case OutOfRange:
		return "out_of_range"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// SyntaxError reports input that is not a single JSON value.
type SyntaxError struct {
	Offset int64 // byte offset of the failure, when known
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("parser: malformed JSON at offset %d: %v", e.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Is matches ErrSyntax.
func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

// ValidationError reports well-formed JSON that does not describe a graph.
type ValidationError struct {
	Kind Kind
	Path string // e.g. "curves[1].maxima[0].symbol.text"
	Msg  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("parser: %s at %s: %s", e.Kind, e.Path, e.Msg)
}

// Is matches ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
