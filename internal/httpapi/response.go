// SPDX-License-Identifier: MIT

package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/katalvlaran/graphcheck/checker"
)

// Error kinds reported besides the parser.Kind names.
const (
	kindSyntax   = "syntax"
	kindEnvelope = "envelope"
	kindNotFound = "not_found"
	kindBadID    = "bad_id"
	kindTooLarge = "too_large"
	kindInternal = "internal"
)

type verdictResponse struct {
	IsCorrect bool    `json:"isCorrect"`
	Equal     bool    `json:"equal"`
	ErrCause  *string `json:"errCause"`
	Reason    *string `json:"reason"`
	Channel   *string `json:"channel"`
}

func newVerdictResponse(v checker.Verdict) verdictResponse {
	resp := verdictResponse{IsCorrect: v.Correct, Equal: v.Correct}
	if v.Correct {
		return resp
	}
	cause, channel := v.Cause(), v.Channel.String()
	resp.ErrCause, resp.Channel = &cause, &channel
	if tag, err := v.Reason.MarshalText(); err == nil {
		reason := string(tag)
		resp.Reason = &reason
	}

	return resp
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func writeError(w http.ResponseWriter, status int, msg, kind string) {
	writeJSON(w, status, errorResponse{Error: msg, Kind: kind})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
