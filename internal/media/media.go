// Package media defines the catalog entities shared across the console.
package media

import "time"

// Rates holds the five independent personal rating fields of a video.
// A nil field means the rating has never been entered; a non-nil value
// lies in [0,100].
type Rates struct {
	Video   *int `json:"video_personal_rate"`
	Sex     *int `json:"personal_sex_rate"`
	Actress *int `json:"overall_actress_personal_rate"`
	Acting  *int `json:"personal_acting_rate"`
	Voice   *int `json:"personal_voice_rate"`
}

// Video is a catalog entry. Dates are kept as ISO "2006-01-02" strings,
// matching the backing store's column format.
type Video struct {
	ID          int64   `json:"video_id"`
	Name        string  `json:"video_name"`
	ContentID   *string `json:"content_id"`
	PublishDate *string `json:"publish_date"`
	Censored    *bool   `json:"censored"`
	HasSpecial  *bool   `json:"has_special"`
	PublisherID *int64  `json:"publisher_id"`
	Length      *int    `json:"length"` // minutes
	Rates

	// Free-text fields, only populated on detail fetches.
	Storyline       *string `json:"storyline,omitempty"`
	Special         *string `json:"special,omitempty"`
	PersonalComment *string `json:"personal_comment,omitempty"`
}

// Actress is a full actress record.
type Actress struct {
	ID              int64   `json:"actress_id"`
	Name            string  `json:"actress_name"`
	DateOfBirth     *string `json:"date_of_birth"`
	Height          *int    `json:"height"`
	Cup             *string `json:"cup"`
	PersonalRate    *int    `json:"personal_rate"`
	PersonalComment *string `json:"personal_comment,omitempty"`
}

// ActressRef is the slim projection used in search results and cast lists.
type ActressRef struct {
	ID          int64   `json:"actress_id"`
	Name        string  `json:"actress_name"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
}

// LookupOption is one id+name row of a lookup table.
type LookupOption struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LinkSets holds the four tag-id sets referenced by a video, one per
// link relation. A video with no rows in a relation gets an empty,
// non-nil slice.
type LinkSets struct {
	ActressTypeIDs []int64 `json:"actress_type_ids"`
	CostumeIDs     []int64 `json:"costume_ids"`
	SceneIDs       []int64 `json:"scene_ids"`
	TagIDs         []int64 `json:"tag_ids"`
}

// FilterDoc is the denormalized per-video snapshot the filter engine
// evaluates against. Built fresh on every search, never persisted.
type FilterDoc struct {
	VideoID     int64    `json:"video_id"`
	PublishDate *string  `json:"publish_date"`
	Censored    *bool    `json:"censored"`
	HasSpecial  *bool    `json:"has_special"`
	PublisherID *int64   `json:"publisher_id"`
	Length      *int     `json:"length"`
	Rates       Rates    `json:"rates"`
	Links       LinkSets `json:"link_ids"`
}

// YearOf extracts the year from an ISO date string. Returns 0 when the
// string is nil or does not parse as a full date.
func YearOf(iso *string) int {
	if iso == nil {
		return 0
	}
	t, err := time.Parse("2006-01-02", *iso)
	if err != nil {
		return 0
	}
	return t.Year()
}

// AgeAt returns the age implied by a birth date at a publish date, or
// nil when either date is missing/unparseable or the result is outside
// the plausible 0..120 range.
func AgeAt(dateOfBirth, publishDate *string) *int {
	birth := YearOf(dateOfBirth)
	pub := YearOf(publishDate)
	if birth == 0 || pub == 0 {
		return nil
	}
	age := pub - birth
	if age < 0 || age > 120 {
		return nil
	}
	return &age
}
