package search

import (
	"context"
	"fmt"

	"github.com/avdex/avdex/internal/gateway"
	"github.com/avdex/avdex/internal/media"
)

// CastMember is one cast entry of a video detail, with the age at the
// video's publish date when both dates are known.
type CastMember struct {
	media.ActressRef
	Age *int `json:"age,omitempty"`
}

// VideoDetail is the full expansion of one video: the complete row,
// resolved display names for every relation, and the same filter
// document shape the bulk hydrator produces.
type VideoDetail struct {
	Video         media.Video      `json:"video"`
	PublisherName *string          `json:"publisher_name"`
	Cast          []CastMember     `json:"cast"`
	ActressTypes  []string         `json:"actress_types"`
	Costumes      []string         `json:"costumes"`
	Scenes        []string         `json:"scenes"`
	Tags          []string         `json:"tags"`
	Doc           *media.FilterDoc `json:"filter_doc"`
}

// Fetcher loads full records on demand, one entity per call. It is
// used when a result card is opened, never during bulk search; a
// failure here is isolated to the one detail request.
type Fetcher struct {
	gw       gateway.Gateway
	hydrator *Hydrator
}

// NewFetcher creates a detail fetcher.
func NewFetcher(gw gateway.Gateway) *Fetcher {
	return &Fetcher{gw: gw, hydrator: NewHydrator(gw)}
}

// Video loads one video with every relation resolved to display
// names. Any sub-fetch failure fails the whole detail request.
func (f *Fetcher) Video(ctx context.Context, id int64) (*VideoDetail, error) {
	v, err := f.gw.GetVideo(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("video detail %d: %w", id, err)
	}

	var publisherName *string
	if v.PublisherID != nil {
		names, err := f.gw.Names(ctx, gateway.RelPublisher, []int64{*v.PublisherID})
		if err != nil {
			return nil, fmt.Errorf("video detail %d: publisher: %w", id, err)
		}
		if name, ok := names[*v.PublisherID]; ok {
			publisherName = &name
		}
	}

	cast, err := f.castWithAges(ctx, v)
	if err != nil {
		return nil, fmt.Errorf("video detail %d: %w", id, err)
	}

	docs, err := f.hydrator.FilterDocs(ctx, []media.Video{*v})
	if err != nil {
		return nil, fmt.Errorf("video detail %d: %w", id, err)
	}
	doc := docs[v.ID]

	resolved := make(map[gateway.Relation][]string, len(gateway.LinkRelations))
	linkIDs := map[gateway.Relation][]int64{
		gateway.RelActressType: doc.Links.ActressTypeIDs,
		gateway.RelCostume:     doc.Links.CostumeIDs,
		gateway.RelScene:       doc.Links.SceneIDs,
		gateway.RelTag:         doc.Links.TagIDs,
	}
	for _, rel := range gateway.LinkRelations {
		names, err := f.gw.Names(ctx, rel, linkIDs[rel])
		if err != nil {
			return nil, fmt.Errorf("video detail %d: %s names: %w", id, rel, err)
		}
		// Dangling ids resolve to nothing and are skipped.
		list := make([]string, 0, len(linkIDs[rel]))
		for _, tid := range linkIDs[rel] {
			if name, ok := names[tid]; ok {
				list = append(list, name)
			}
		}
		resolved[rel] = list
	}

	return &VideoDetail{
		Video:         *v,
		PublisherName: publisherName,
		Cast:          cast,
		ActressTypes:  resolved[gateway.RelActressType],
		Costumes:      resolved[gateway.RelCostume],
		Scenes:        resolved[gateway.RelScene],
		Tags:          resolved[gateway.RelTag],
		Doc:           doc,
	}, nil
}

// castWithAges loads the cast refs (with birth dates) and computes
// each member's age at the publish date.
func (f *Fetcher) castWithAges(ctx context.Context, v *media.Video) ([]CastMember, error) {
	links, err := f.gw.LinksByVideo(ctx, gateway.RelActress, []int64{v.ID}, castLimit)
	if err != nil {
		return nil, fmt.Errorf("cast links: %w", err)
	}
	ids := make([]int64, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.TargetID)
	}

	cast := make([]CastMember, 0, len(ids))
	if len(ids) == 0 {
		return cast, nil
	}
	refs, err := f.gw.ActressRefs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("cast refs: %w", err)
	}
	for _, ref := range refs {
		cast = append(cast, CastMember{
			ActressRef: ref,
			Age:        media.AgeAt(ref.DateOfBirth, v.PublishDate),
		})
	}
	return cast, nil
}

// Actress loads one full actress row.
func (f *Fetcher) Actress(ctx context.Context, id int64) (*media.Actress, error) {
	a, err := f.gw.GetActress(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("actress detail %d: %w", id, err)
	}
	return a, nil
}
