package search

import (
	"context"
	"log/slog"
	"sync"

	"github.com/avdex/avdex/internal/filter"
	"github.com/avdex/avdex/internal/media"
)

// Session is one user's search-and-filter state: the last raw result
// set, its filter documents, and the current criteria. Filtering is
// applied locally to the held result set, never by re-querying.
//
// Each Search increments a generation counter; a result that finishes
// after a newer search started is discarded instead of overwriting
// the newer state.
type Session struct {
	engine   *Engine
	hydrator *Hydrator
	log      *slog.Logger

	mu       sync.Mutex
	gen      uint64
	criteria *filter.Criteria
	state    state
}

type state struct {
	query     string
	actresses []media.ActressRef
	videos    []VideoHit
	docs      map[int64]*media.FilterDoc
	err       error
}

// Snapshot is the client-facing view of a session: the raw result
// counts plus the criteria-filtered visible videos.
type Snapshot struct {
	Query     string          `json:"query"`
	Actresses []media.ActressRef `json:"actresses"`
	Videos    []VideoHit      `json:"videos"`
	Visible   []VideoHit      `json:"filtered"`
	Err       string          `json:"error,omitempty"`
}

// NewSession creates a session with default criteria and no results.
func NewSession(engine *Engine, hydrator *Hydrator, log *slog.Logger) *Session {
	return &Session{
		engine:   engine,
		hydrator: hydrator,
		log:      log.With("component", "session"),
		criteria: filter.Default(),
	}
}

// Search runs a full search for the given raw query and replaces the
// session's result set, unless a newer search superseded it while it
// ran. The returned snapshot reflects the session state after the
// call, which may belong to the newer search.
func (s *Session) Search(ctx context.Context, raw string) Snapshot {
	query := Normalize(raw)

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	next := s.run(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		s.log.Info("discarding stale search result", "query", query, "generation", gen, "current", s.gen)
		return s.snapshotOf(s.state)
	}
	s.state = next
	return s.snapshotOf(s.state)
}

// run performs the fan-out, hydration, and cast attachment for one
// query without touching session state.
func (s *Session) run(ctx context.Context, query string) state {
	res, err := s.engine.Search(ctx, query)
	if err != nil {
		return state{query: query, err: err}
	}

	ids := make([]int64, 0, len(res.Videos))
	for _, h := range res.Videos {
		ids = append(ids, h.ID)
	}
	cast, err := s.hydrator.CastNames(ctx, ids)
	if err != nil {
		return state{query: query, err: err}
	}
	videos := make([]media.Video, 0, len(res.Videos))
	for i := range res.Videos {
		res.Videos[i].Cast = cast[res.Videos[i].ID]
		videos = append(videos, res.Videos[i].Video)
	}

	docs, err := s.hydrator.FilterDocs(ctx, videos)
	if err != nil {
		return state{query: query, err: err}
	}

	return state{
		query:     query,
		actresses: res.Actresses,
		videos:    res.Videos,
		docs:      docs,
	}
}

// Criteria mutates the session criteria under the lock and returns
// the resulting snapshot. The raw result set is untouched.
func (s *Session) Criteria(fn func(*filter.Criteria)) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.criteria)
	return s.snapshotOf(s.state)
}

// ResetCriteria restores default criteria and returns the snapshot.
func (s *Session) ResetCriteria() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria.Reset()
	return s.snapshotOf(s.state)
}

// Current returns the snapshot for the present state and criteria.
func (s *Session) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotOf(s.state)
}

// snapshotOf applies the current criteria to a state. Result order is
// preserved; a video with no filter document is never visible.
// Callers must hold s.mu.
func (s *Session) snapshotOf(st state) Snapshot {
	snap := Snapshot{
		Query:     st.query,
		Actresses: st.actresses,
		Videos:    st.videos,
		Visible:   make([]VideoHit, 0, len(st.videos)),
	}
	if snap.Actresses == nil {
		snap.Actresses = []media.ActressRef{}
	}
	if snap.Videos == nil {
		snap.Videos = []VideoHit{}
	}
	if st.err != nil {
		snap.Err = st.err.Error()
		return snap
	}
	for _, h := range st.videos {
		if s.criteria.Matches(st.docs[h.ID]) {
			snap.Visible = append(snap.Visible, h)
		}
	}
	return snap
}
