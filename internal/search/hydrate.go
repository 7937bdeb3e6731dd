package search

import (
	"context"
	"fmt"
	"sync"

	"github.com/avdex/avdex/internal/gateway"
	"github.com/avdex/avdex/internal/media"
	"golang.org/x/sync/errgroup"
)

const (
	// castLimit caps the cast membership batch load.
	castLimit = 5000
	// relationLimit caps each link-relation batch load.
	relationLimit = 10000
)

// Hydrator batch-loads the display and filter metadata for a merged
// result set. Call counts are constant: one membership load plus one
// name load for the cast map, and one load per link relation for the
// filter documents, regardless of how many videos matched.
type Hydrator struct {
	gw gateway.Gateway
}

// NewHydrator creates a hydrator.
func NewHydrator(gw gateway.Gateway) *Hydrator {
	return &Hydrator{gw: gw}
}

// CastNames builds video_id → cast name list for card display. An
// empty id set returns an empty map without calling the gateway.
func (h *Hydrator) CastNames(ctx context.Context, videoIDs []int64) (map[int64][]string, error) {
	out := make(map[int64][]string, len(videoIDs))
	if len(videoIDs) == 0 {
		return out, nil
	}

	links, err := h.gw.LinksByVideo(ctx, gateway.RelActress, videoIDs, castLimit)
	if err != nil {
		return nil, fmt.Errorf("cast links: %w", err)
	}

	actressIDs := make([]int64, 0, len(links))
	seen := make(map[int64]struct{}, len(links))
	for _, l := range links {
		if _, ok := seen[l.TargetID]; ok {
			continue
		}
		seen[l.TargetID] = struct{}{}
		actressIDs = append(actressIDs, l.TargetID)
	}

	names := map[int64]string{}
	if len(actressIDs) > 0 {
		names, err = h.gw.Names(ctx, gateway.RelActress, actressIDs)
		if err != nil {
			return nil, fmt.Errorf("cast names: %w", err)
		}
	}

	for _, id := range videoIDs {
		out[id] = []string{}
	}
	for _, l := range links {
		name, ok := names[l.TargetID]
		if !ok {
			continue
		}
		out[l.VideoID] = append(out[l.VideoID], name)
	}
	return out, nil
}

// FilterDocs builds one filter document per video from the already
// loaded scalar fields plus the four link relations, loaded
// concurrently. Every input video gets a document; a video with no
// rows in a relation gets an empty set there, not a missing key.
func (h *Hydrator) FilterDocs(ctx context.Context, videos []media.Video) (map[int64]*media.FilterDoc, error) {
	out := make(map[int64]*media.FilterDoc, len(videos))
	if len(videos) == 0 {
		return out, nil
	}

	videoIDs := make([]int64, len(videos))
	for i, v := range videos {
		videoIDs[i] = v.ID
		out[v.ID] = newFilterDoc(v)
	}

	var mu sync.Mutex
	byRelation := make(map[gateway.Relation]map[int64][]int64, len(gateway.LinkRelations))

	g, gctx := errgroup.WithContext(ctx)
	for _, rel := range gateway.LinkRelations {
		g.Go(func() error {
			links, err := h.gw.LinksByVideo(gctx, rel, videoIDs, relationLimit)
			if err != nil {
				return fmt.Errorf("%s links: %w", rel, err)
			}
			m := make(map[int64][]int64)
			dup := make(map[gateway.Link]struct{}, len(links))
			for _, l := range links {
				if _, ok := dup[l]; ok {
					continue
				}
				dup[l] = struct{}{}
				m[l.VideoID] = append(m[l.VideoID], l.TargetID)
			}
			mu.Lock()
			byRelation[rel] = m
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for id, doc := range out {
		if ids := byRelation[gateway.RelActressType][id]; ids != nil {
			doc.Links.ActressTypeIDs = ids
		}
		if ids := byRelation[gateway.RelCostume][id]; ids != nil {
			doc.Links.CostumeIDs = ids
		}
		if ids := byRelation[gateway.RelScene][id]; ids != nil {
			doc.Links.SceneIDs = ids
		}
		if ids := byRelation[gateway.RelTag][id]; ids != nil {
			doc.Links.TagIDs = ids
		}
	}
	return out, nil
}

// newFilterDoc seeds a document from the video row's own fields, with
// empty link sets.
func newFilterDoc(v media.Video) *media.FilterDoc {
	return &media.FilterDoc{
		VideoID:     v.ID,
		PublishDate: v.PublishDate,
		Censored:    v.Censored,
		HasSpecial:  v.HasSpecial,
		PublisherID: v.PublisherID,
		Length:      v.Length,
		Rates:       v.Rates,
		Links: media.LinkSets{
			ActressTypeIDs: []int64{},
			CostumeIDs:     []int64{},
			SceneIDs:       []int64{},
			TagIDs:         []int64{},
		},
	}
}
