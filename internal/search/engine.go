// Package search implements the catalog's query composition core: the
// keyword fan-out across videos and actresses, batch hydration of
// display and filter metadata, and per-record detail fetches.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/avdex/avdex/internal/gateway"
	"github.com/avdex/avdex/internal/media"
	"github.com/hbollon/go-edlib"
	"golang.org/x/sync/errgroup"
)

const (
	// defaultTextLimit caps each of the three primary substring lookups.
	defaultTextLimit = 50
	// defaultLinkLimit caps the actress-link membership fan-out, which
	// can reach much wider than a text match.
	defaultLinkLimit = 2000
)

// MatchSource records which lookup produced a video hit. Display
// metadata only; the filter engine never reads it.
type MatchSource string

const (
	MatchedByName        MatchSource = "video_name"
	MatchedByCode        MatchSource = "content_id"
	MatchedByActressLink MatchSource = "actress_link"
)

// VideoHit is one merged search result.
type VideoHit struct {
	media.Video
	MatchedBy MatchSource `json:"matched_by"`
	Cast      []string    `json:"cast"`
}

// Result is the full candidate set for one query.
type Result struct {
	Query     string             `json:"query"`
	Actresses []media.ActressRef `json:"actresses"`
	Videos    []VideoHit         `json:"videos"`
}

// Engine fans one free-text query out across video-by-name,
// video-by-code, and actress-by-name lookups and merges the hits into
// one deduplicated video list.
type Engine struct {
	gw        gateway.Gateway
	log       *slog.Logger
	textLimit int
	linkLimit int
}

// NewEngine creates an engine with the reference row caps.
func NewEngine(gw gateway.Gateway, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{gw: gw, log: log, textLimit: defaultTextLimit, linkLimit: defaultLinkLimit}
}

// SetLimits overrides the fan-out row caps. A zero value keeps the
// current cap.
func (e *Engine) SetLimits(text, link int) {
	if text > 0 {
		e.textLimit = text
	}
	if link > 0 {
		e.linkLimit = link
	}
}

// Search runs the fan-out for a normalized query. A blank query is the
// idle state: it returns an empty result without touching the gateway.
// Any gateway failure fails the whole invocation; no partial result is
// returned as success.
func (e *Engine) Search(ctx context.Context, query string) (*Result, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return &Result{Query: "", Actresses: []media.ActressRef{}, Videos: []VideoHit{}}, nil
	}

	start := time.Now()
	e.log.Debug("search started", "query", q)

	var byName, byCode []media.Video
	var actresses []media.ActressRef

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		byName, err = e.gw.FindVideos(gctx, gateway.VideoByName, q, e.textLimit)
		return err
	})
	g.Go(func() error {
		var err error
		byCode, err = e.gw.FindVideos(gctx, gateway.VideoByCode, q, e.textLimit)
		return err
	})
	g.Go(func() error {
		var err error
		actresses, err = e.gw.FindActresses(gctx, q, e.textLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("search %q: %w", q, err)
	}

	// Secondary lookup: videos the matched actresses appear in.
	var byLink []media.Video
	if len(actresses) > 0 {
		actressIDs := make([]int64, len(actresses))
		for i, a := range actresses {
			actressIDs[i] = a.ID
		}
		links, err := e.gw.LinksByTarget(ctx, gateway.RelActress, actressIDs, e.linkLimit)
		if err != nil {
			return nil, fmt.Errorf("search %q: actress links: %w", q, err)
		}
		videoIDs := distinctVideoIDs(links)
		if len(videoIDs) > 0 {
			byLink, err = e.gw.VideosByID(ctx, videoIDs, e.linkLimit)
			if err != nil {
				return nil, fmt.Errorf("search %q: linked videos: %w", q, err)
			}
		}
	}

	videos := mergeVideos(byName, byCode, byLink)
	rankVideos(videos, q)

	if actresses == nil {
		actresses = []media.ActressRef{}
	}
	e.log.Info("search complete",
		"query", q,
		"videos", len(videos),
		"actresses", len(actresses),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return &Result{Query: q, Actresses: actresses, Videos: videos}, nil
}

// distinctVideoIDs extracts the video ids of membership rows,
// first-occurrence order.
func distinctVideoIDs(links []gateway.Link) []int64 {
	seen := make(map[int64]struct{}, len(links))
	out := make([]int64, 0, len(links))
	for _, l := range links {
		if _, ok := seen[l.VideoID]; ok {
			continue
		}
		seen[l.VideoID] = struct{}{}
		out = append(out, l.VideoID)
	}
	return out
}

// mergeVideos concatenates the three sources in fixed order and
// deduplicates by video id. The first occurrence wins the matched_by
// label; the row data is identical across duplicates.
func mergeVideos(byName, byCode, byLink []media.Video) []VideoHit {
	out := make([]VideoHit, 0, len(byName)+len(byCode)+len(byLink))
	seen := make(map[int64]struct{})
	add := func(videos []media.Video, source MatchSource) {
		for _, v := range videos {
			if _, ok := seen[v.ID]; ok {
				continue
			}
			seen[v.ID] = struct{}{}
			out = append(out, VideoHit{Video: v, MatchedBy: source, Cast: []string{}})
		}
	}
	add(byName, MatchedByName)
	add(byCode, MatchedByCode)
	add(byLink, MatchedByActressLink)
	return out
}

// rankVideos stable-sorts hits by Jaro-Winkler similarity between the
// query and the video's name or code, best first. Stable sort keeps
// the merge order for ties, so assembly stays deterministic.
func rankVideos(hits []VideoHit, query string) {
	q := strings.ToLower(query)
	score := func(h VideoHit) float32 {
		s := edlib.JaroWinklerSimilarity(strings.ToLower(h.Name), q)
		if h.ContentID != nil {
			if cs := edlib.JaroWinklerSimilarity(strings.ToLower(*h.ContentID), q); cs > s {
				s = cs
			}
		}
		return s
	}
	scores := make(map[int64]float32, len(hits))
	for _, h := range hits {
		scores[h.ID] = score(h)
	}
	sort.SliceStable(hits, func(i, j int) bool { return scores[hits[i].ID] > scores[hits[j].ID] })
}
