// SPDX-License-Identifier: MIT

package checker

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/graphcheck/classify"
)

// Reason names the gate a submission failed. ReasonNone means it passed.
type Reason int

const (
	ReasonNone Reason = iota
	WrongNumberOfCurves
	CurveTooSmall
	WrongNumberOfIntercepts
	WrongNumberOfTurningPoints
	WrongShape
	WrongPosition
	WrongLabels
)

var reasonInfo = [...]struct{ text, tag string }{
	ReasonNone:                 {"", "none"},
	WrongNumberOfCurves:        {"wrong number of curves", "wrong_number_of_curves"},
	CurveTooSmall:              {"curve too small", "curve_too_small"},
	WrongNumberOfIntercepts:    {"wrong number of intercepts", "wrong_number_of_intercepts"},
	WrongNumberOfTurningPoints: {"wrong number of turning points", "wrong_number_of_turning_points"},
	WrongShape:                 {"wrong shape", "wrong_shape"},
	WrongPosition:              {"wrong position", "wrong_position"},
	WrongLabels:                {"wrong labels", "wrong_labels"},
}

func (r Reason) valid() bool { return r >= 0 && int(r) < len(reasonInfo) }

// String returns the human-readable reason, e.g. "wrong shape".
func (r Reason) String() string {
	if !r.valid() {
		return "Reason(" + strconv.Itoa(int(r)) + ")"
	}

	return reasonInfo[r].text
}

// MarshalText encodes the reason as a stable snake_case tag.
func (r Reason) MarshalText() ([]byte, error) {
	if !r.valid() {
		return nil, fmt.Errorf("checker: unknown reason %d", int(r))
	}

	return []byte(reasonInfo[r].tag), nil
}

// Verdict is the outcome of one comparison. A mismatch is a normal outcome,
// never an error.
type Verdict struct {
	Correct bool
	Reason  Reason           // ReasonNone when Correct
	Channel classify.Channel // channel of the first failing gate; meaningless when Correct
}

// Cause returns "" for a match, otherwise the channel-qualified reason,
// e.g. "Color Blue: wrong number of curves".
func (v Verdict) Cause() string {
	if v.Correct {
		return ""
	}

	return fmt.Sprintf("Color %s: %s", v.Channel, v.Reason)
}
