// SPDX-License-Identifier: MIT

// Package httpapi exposes the checker over HTTP.
//
//	POST /test                 {"trusted": <graph>, "submitted": <graph>}
//	POST /questions/{id}/test  submitted graph as the body or form field "data"
//	GET  /health
//
// Every verdict, match or not, is a 200 response. Non-2xx responses carry
// {"error": "...", "kind": "..."}.
package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/graphcheck/checker"
	"github.com/katalvlaran/graphcheck/geom"
	"github.com/katalvlaran/graphcheck/parser"
	"github.com/katalvlaran/graphcheck/store"
)

// References resolves a question id to its trusted graph. *store.Store
// implements it.
type References interface {
	Get(id string) (*geom.Graph, error)
}

// Server holds the handler dependencies.
type Server struct {
	checker *checker.Checker
	refs    References
	logger  *slog.Logger
	maxBody int64
}

// New returns a Server. refs may be nil, in which case the question route
// answers 404. maxBody <= 0 disables the body limit.
func New(c *checker.Checker, refs References, logger *slog.Logger, maxBody int64) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Server{checker: c, refs: refs, logger: logger, maxBody: maxBody}
}

// Handler returns the routed handler with middleware installed.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	r.Use(requestID)
	r.Use(logging(s.logger))
	r.Use(recovery(s.logger))
	if s.maxBody > 0 {
		r.Use(bodyLimit(s.maxBody))
	}

	r.HandleFunc("/health", s.health).Methods(http.MethodGet)
	r.HandleFunc("/test", s.test).Methods(http.MethodPost)
	r.HandleFunc("/questions/{id}/test", s.testQuestion).Methods(http.MethodPost)

	return r
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type testRequest struct {
	Trusted   json.RawMessage `json:"trusted"`
	Submitted json.RawMessage `json:"submitted"`
}

func (s *Server) test(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.bodyError(w, err)
		return
	}

	var req testRequest
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error(), kindEnvelope)
		return
	}
	if len(req.Trusted) == 0 || len(req.Submitted) == 0 {
		writeError(w, http.StatusBadRequest, "trusted and submitted are required", kindEnvelope)
		return
	}

	trusted, err := parser.Parse(req.Trusted)
	if err != nil {
		s.parseError(w, r, "trusted", err)
		return
	}
	submitted, err := parser.Parse(req.Submitted)
	if err != nil {
		s.parseError(w, r, "submitted", err)
		return
	}

	writeJSON(w, http.StatusOK, newVerdictResponse(s.checker.Test(trusted, submitted)))
}

func (s *Server) testQuestion(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	data, err := submittedData(r)
	if err != nil {
		s.bodyError(w, err)
		return
	}

	if s.refs == nil {
		writeError(w, http.StatusNotFound, "no reference answers configured", kindNotFound)
		return
	}
	trusted, err := s.refs.Get(id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "unknown question "+id, kindNotFound)
		return
	case errors.Is(err, store.ErrBadID):
		writeError(w, http.StatusBadRequest, "invalid question id", kindBadID)
		return
	case err != nil:
		s.logger.Error("load reference", "id", id, "error", err, "request_id", RequestIDFromContext(r.Context()))
		writeError(w, http.StatusInternalServerError, "internal error", kindInternal)
		return
	}

	submitted, err := parser.Parse(data)
	if err != nil {
		s.parseError(w, r, "submitted", err)
		return
	}

	v := s.checker.Test(trusted, submitted)
	s.logger.Debug("graded", "id", id, "correct", v.Correct, "request_id", RequestIDFromContext(r.Context()))
	writeJSON(w, http.StatusOK, newVerdictResponse(v))
}

// submittedData takes the form field "data" for form posts and the raw body
// otherwise.
func submittedData(r *http.Request) ([]byte, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch ct {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(32 << 10); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return nil, err
		}
		return []byte(r.FormValue("data")), nil
	default:
		return io.ReadAll(r.Body)
	}
}

func (s *Server) bodyError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large", kindTooLarge)
		return
	}
	writeError(w, http.StatusBadRequest, "read request body: "+err.Error(), kindEnvelope)
}

func (s *Server) parseError(w http.ResponseWriter, r *http.Request, which string, err error) {
	s.logger.Debug("graph rejected", "graph", which, "error", err, "request_id", RequestIDFromContext(r.Context()))

	var ve *parser.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusUnprocessableEntity, which+": "+err.Error(), ve.Kind.String())
	case errors.Is(err, parser.ErrSyntax):
		writeError(w, http.StatusBadRequest, which+": "+err.Error(), kindSyntax)
	default:
		writeError(w, http.StatusInternalServerError, "internal error", kindInternal)
	}
}
