// Package resolver maps raw identifier cell values to director names through
// an in-memory cache, asking the registry about each identifier at most once
// per process run.
package resolver

import (
	"context"
	"log/slog"

	"egrulfill/internal/egrul"
	"egrulfill/internal/identifier"
	"egrulfill/internal/logging"
)

// Stats summarizes cache behavior for one run.
type Stats struct {
	Lookups  int // resolutions with a non-blank identifier
	Hits     int // served from the cache
	Misses   int // required a registry call
	Negative int // identifiers cached with the not-found sentinel
}

// Resolver resolves identifiers against the registry through a run-scoped
// cache. Negative outcomes are stored as empty strings so repeated failures
// never retrigger a lookup. The cache lives and dies with the process; it is
// deliberately never written to disk.
//
// Resolver is not safe for concurrent use; the processing loop is the single
// reader and writer.
type Resolver struct {
	finder egrul.Finder
	logger *slog.Logger
	cache  map[string]string
	stats  Stats
}

// New creates a resolver backed by the supplied registry finder.
func New(finder egrul.Finder, logger *slog.Logger) *Resolver {
	return &Resolver{
		finder: finder,
		logger: logging.NewComponentLogger(logger, "resolver"),
		cache:  make(map[string]string),
	}
}

// Resolve returns the director name for a raw identifier cell value. Blank
// cells yield an empty result without touching the cache. Lookup failures of
// any kind collapse to an empty result, are logged, and are cached as
// negative so processing continues with the next row.
func (r *Resolver) Resolve(ctx context.Context, raw string) string {
	key := identifier.Normalize(raw)
	if key == "" {
		return ""
	}

	r.stats.Lookups++
	if name, ok := r.cache[key]; ok {
		r.stats.Hits++
		return name
	}
	r.stats.Misses++

	name, err := r.finder.FindDirector(ctx, key)
	if err != nil {
		if ctx.Err() != nil {
			// Cancellation is not a verdict on the identifier; leave the
			// cache untouched so a later run can retry it.
			r.stats.Misses--
			r.stats.Lookups--
			return ""
		}
		r.logger.Warn("lookup failed",
			logging.String(logging.FieldIdentifier, key),
			logging.Error(err))
		name = ""
	}
	if name == "" {
		r.stats.Negative++
	}
	r.cache[key] = name
	return name
}

// Stats returns a copy of the cache counters.
func (r *Resolver) Stats() Stats {
	return r.stats
}
