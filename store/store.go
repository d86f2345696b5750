// SPDX-License-Identifier: MIT

// Package store serves trusted reference graphs, one JSON document per
// question, from a directory on disk. Parsed graphs are cached in memory for
// a configurable time so repeated grading of the same question does not
// re-read or re-parse the file.
package store

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/patrickmn/go-cache"
	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/graphcheck/geom"
	"github.com/katalvlaran/graphcheck/parser"
)

var (
	// ErrBadID indicates a question id outside [A-Za-z0-9_-]+.
	ErrBadID = errors.New("store: invalid question id")
	// ErrNotFound indicates no reference document exists for the id.
	ErrNotFound = errors.New("store: question not found")
)

var validID = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Store loads reference graphs from dir. Safe for concurrent use.
type Store struct {
	dir    string
	cache  *cache.Cache
	logger *slog.Logger
}

// New returns a Store reading <dir>/<id>.json and caching each parsed graph
// for ttl. A nil logger discards.
func New(dir string, ttl time.Duration, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Store{
		dir:    dir,
		cache:  cache.New(ttl, 2*ttl),
		logger: logger.With("component", "store"),
	}
}

// Get returns the reference graph for id.
//
// Errors: ErrBadID, ErrNotFound, parser errors for a malformed document
// (errors.Is against parser.ErrSyntax / parser.ErrValidation still works),
// or a wrapped I/O error.
func (s *Store) Get(id string) (*geom.Graph, error) {
	if !validID.MatchString(id) {
		return nil, ErrBadID
	}
	if g, ok := s.cache.Get(id); ok {
		return g.(*geom.Graph), nil
	}

	path := filepath.Join(s.dir, id+".json")
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "store: read %s", path)
	}

	g, err := parser.Parse(data)
	if err != nil {
		s.logger.Warn("reference document rejected", "id", id, "err", err)
		return nil, pkgerrors.Wrapf(err, "store: question %s", id)
	}
	s.cache.SetDefault(id, g)
	s.logger.Debug("reference loaded", "id", id, "curves", len(g.Curves))

	return g, nil
}

// Forget drops id from the cache so the next Get re-reads the file.
func (s *Store) Forget(id string) {
	s.cache.Delete(id)
}
