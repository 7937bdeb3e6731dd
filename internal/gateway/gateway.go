// Package gateway defines the row-oriented contract the console uses to
// reach the catalog store. Implementations provide per-table reads with
// equality, case-insensitive substring, and set-membership predicates,
// plus single-table writes; the search core never talks SQL directly.
package gateway

import (
	"context"

	"github.com/avdex/avdex/internal/media"
)

// VideoTextColumn selects which text column a substring search runs on.
type VideoTextColumn int

const (
	// VideoByName matches against the video title.
	VideoByName VideoTextColumn = iota
	// VideoByCode matches against the catalog code (content_id).
	VideoByCode
)

// Link is one membership row of a video↔X join table.
type Link struct {
	VideoID  int64
	TargetID int64
}

// Gateway is the data access contract consumed by the search core and
// the edit flow. All methods return an explicit error on failure; an
// empty result is never used to signal one.
type Gateway interface {
	// FindVideos returns up to limit videos whose selected text column
	// contains substr, case-insensitively.
	FindVideos(ctx context.Context, col VideoTextColumn, substr string, limit int) ([]media.Video, error)

	// VideosByID batch-loads videos for the given id set.
	VideosByID(ctx context.Context, ids []int64, limit int) ([]media.Video, error)

	// GetVideo loads one full video row. Returns ErrNotFound if absent.
	GetVideo(ctx context.Context, id int64) (*media.Video, error)

	// FindActresses returns up to limit id+name refs whose name contains
	// substr, case-insensitively.
	FindActresses(ctx context.Context, substr string, limit int) ([]media.ActressRef, error)

	// ActressRefs batch-loads id+name+birth-date refs for the given ids.
	ActressRefs(ctx context.Context, ids []int64) ([]media.ActressRef, error)

	// GetActress loads one full actress row. Returns ErrNotFound if absent.
	GetActress(ctx context.Context, id int64) (*media.Actress, error)

	// LinksByVideo batch-loads membership rows of the relation's join
	// table for the given video ids.
	LinksByVideo(ctx context.Context, rel Relation, videoIDs []int64, limit int) ([]Link, error)

	// LinksByTarget batch-loads membership rows for the given target ids
	// (e.g. all videos linked to a set of actresses).
	LinksByTarget(ctx context.Context, rel Relation, targetIDs []int64, limit int) ([]Link, error)

	// Names resolves display names for the given lookup ids. Unknown ids
	// are simply absent from the result map.
	Names(ctx context.Context, rel Relation, ids []int64) (map[int64]string, error)

	// Options lists a lookup table's id+name rows, ordered by name.
	Options(ctx context.Context, rel Relation) ([]media.LookupOption, error)

	// InsertVideo creates a video row and sets its ID.
	InsertVideo(ctx context.Context, v *media.Video) error

	// UpdateVideo rewrites a video's scalar columns.
	UpdateVideo(ctx context.Context, v *media.Video) error

	// InsertActress creates an actress row and sets its ID.
	InsertActress(ctx context.Context, a *media.Actress) error

	// UpdateActress rewrites an actress's scalar columns.
	UpdateActress(ctx context.Context, a *media.Actress) error

	// ReplaceLinks swaps the relation's membership rows for one video:
	// delete all, then reinsert the given target ids.
	ReplaceLinks(ctx context.Context, rel Relation, videoID int64, targetIDs []int64) error
}
