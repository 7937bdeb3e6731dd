package v1

import (
	"fmt"

	"github.com/avdex/avdex/internal/filter"
	"github.com/avdex/avdex/internal/media"
)

// searchRequest is the body of POST /search. Criteria is optional; when
// present it replaces the session's criteria before the query runs.
type searchRequest struct {
	Query    string           `json:"query"`
	Criteria *criteriaRequest `json:"criteria,omitempty"`
}

// criteriaRequest is the wire form of the filter criteria. Tri-state
// fields take "any", "true", or "false"; an empty string means "any".
// Absent id lists and rate thresholds are all-permissive.
type criteriaRequest struct {
	Censored   string `json:"censored,omitempty"`
	HasSpecial string `json:"has_special,omitempty"`

	ActressTypeIDs []int64 `json:"actress_type_ids,omitempty"`
	CostumeIDs     []int64 `json:"costume_ids,omitempty"`
	SceneIDs       []int64 `json:"scene_ids,omitempty"`
	TagIDs         []int64 `json:"tag_ids,omitempty"`

	MinVideoRate   *int `json:"min_video_rate,omitempty"`
	MinSexRate     *int `json:"min_sex_rate,omitempty"`
	MinActressRate *int `json:"min_actress_rate,omitempty"`
	MinActingRate  *int `json:"min_acting_rate,omitempty"`
	MinVoiceRate   *int `json:"min_voice_rate,omitempty"`
}

func parseTri(s string) (filter.Tri, error) {
	switch s {
	case "", "any":
		return filter.Any, nil
	case "true":
		return filter.True, nil
	case "false":
		return filter.False, nil
	}
	return filter.Any, fmt.Errorf("invalid tri-state value %q", s)
}

// apply overwrites c with the request's criteria. The whole request is
// validated before c is touched, so a rejected request leaves the
// committed criteria exactly as they were.
func (r *criteriaRequest) apply(c *filter.Criteria) error {
	censored, err := parseTri(r.Censored)
	if err != nil {
		return fmt.Errorf("censored: %w", err)
	}
	hasSpecial, err := parseTri(r.HasSpecial)
	if err != nil {
		return fmt.Errorf("has_special: %w", err)
	}

	mins := []struct {
		field filter.RateField
		name  string
		val   *int
	}{
		{filter.VideoRate, "min_video_rate", r.MinVideoRate},
		{filter.SexRate, "min_sex_rate", r.MinSexRate},
		{filter.ActressRate, "min_actress_rate", r.MinActressRate},
		{filter.ActingRate, "min_acting_rate", r.MinActingRate},
		{filter.VoiceRate, "min_voice_rate", r.MinVoiceRate},
	}
	for _, m := range mins {
		if m.val != nil && (*m.val < 0 || *m.val > 100) {
			return fmt.Errorf("%s: must be in [0,100]", m.name)
		}
	}

	c.Reset()
	c.Censored = censored
	c.HasSpecial = hasSpecial
	c.SelectIDs(filter.ActressTypes, r.ActressTypeIDs)
	c.SelectIDs(filter.Costumes, r.CostumeIDs)
	c.SelectIDs(filter.Scenes, r.SceneIDs)
	c.SelectIDs(filter.Tags, r.TagIDs)
	for _, m := range mins {
		c.SetMinRate(m.field, m.val)
	}
	return nil
}

// videoRequest is the body of POST /videos and PUT /videos/{id}.
// LinkIDs, when present on an update, replaces the video's join-table
// rows wholesale.
type videoRequest struct {
	Name            string  `json:"video_name"`
	ContentID       *string `json:"content_id"`
	PublishDate     *string `json:"publish_date"`
	Censored        *bool   `json:"censored"`
	HasSpecial      *bool   `json:"has_special"`
	PublisherID     *int64  `json:"publisher_id"`
	Length          *int    `json:"length"`
	Storyline       *string `json:"storyline"`
	Special         *string `json:"special"`
	PersonalComment *string `json:"personal_comment"`

	VideoRate   *int `json:"video_personal_rate"`
	SexRate     *int `json:"personal_sex_rate"`
	ActressRate *int `json:"overall_actress_personal_rate"`
	ActingRate  *int `json:"personal_acting_rate"`
	VoiceRate   *int `json:"personal_voice_rate"`

	LinkIDs *media.LinkSets `json:"link_ids,omitempty"`
	CastIDs []int64         `json:"cast_ids,omitempty"`
}

// validate checks rate and length ranges before anything hits the
// store's own CHECK constraints.
func (r *videoRequest) validate() error {
	if r.Name == "" {
		return fmt.Errorf("video_name is required")
	}
	rates := map[string]*int{
		"video_personal_rate":           r.VideoRate,
		"personal_sex_rate":             r.SexRate,
		"overall_actress_personal_rate": r.ActressRate,
		"personal_acting_rate":          r.ActingRate,
		"personal_voice_rate":           r.VoiceRate,
	}
	for name, v := range rates {
		if v != nil && (*v < 0 || *v > 100) {
			return fmt.Errorf("%s: must be in [0,100] or null", name)
		}
	}
	if r.Length != nil && *r.Length < 0 {
		return fmt.Errorf("length: must be >= 0 or null")
	}
	return nil
}

func (r *videoRequest) toVideo(id int64) *media.Video {
	return &media.Video{
		ID:          id,
		Name:        r.Name,
		ContentID:   r.ContentID,
		PublishDate: r.PublishDate,
		Censored:    r.Censored,
		HasSpecial:  r.HasSpecial,
		PublisherID: r.PublisherID,
		Length:      r.Length,
		Rates: media.Rates{
			Video:   r.VideoRate,
			Sex:     r.SexRate,
			Actress: r.ActressRate,
			Acting:  r.ActingRate,
			Voice:   r.VoiceRate,
		},
		Storyline:       r.Storyline,
		Special:         r.Special,
		PersonalComment: r.PersonalComment,
	}
}

// actressRequest is the body of POST /actresses and PUT /actresses/{id}.
type actressRequest struct {
	Name            string  `json:"actress_name"`
	DateOfBirth     *string `json:"date_of_birth"`
	Height          *int    `json:"height"`
	Cup             *string `json:"cup"`
	PersonalRate    *int    `json:"personal_rate"`
	PersonalComment *string `json:"personal_comment"`
}

func (r *actressRequest) validate() error {
	if r.Name == "" {
		return fmt.Errorf("actress_name is required")
	}
	if r.PersonalRate != nil && (*r.PersonalRate < 0 || *r.PersonalRate > 100) {
		return fmt.Errorf("personal_rate: must be in [0,100] or null")
	}
	return nil
}

func (r *actressRequest) toActress(id int64) *media.Actress {
	return &media.Actress{
		ID:              id,
		Name:            r.Name,
		DateOfBirth:     r.DateOfBirth,
		Height:          r.Height,
		Cup:             r.Cup,
		PersonalRate:    r.PersonalRate,
		PersonalComment: r.PersonalComment,
	}
}
