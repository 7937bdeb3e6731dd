package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdex/avdex/internal/media"
)

func ptr[T any](v T) *T {
	return &v
}

func doc(id int64) *media.FilterDoc {
	return &media.FilterDoc{
		VideoID: id,
		Links: media.LinkSets{
			ActressTypeIDs: []int64{},
			CostumeIDs:     []int64{},
			SceneIDs:       []int64{},
			TagIDs:         []int64{},
		},
	}
}

func TestDefault_MatchesEverything(t *testing.T) {
	c := Default()

	assert.True(t, c.Matches(doc(1)), "empty doc should pass default criteria")

	full := doc(2)
	full.Censored = ptr(true)
	full.HasSpecial = ptr(false)
	full.Rates.Video = ptr(10)
	full.Links.TagIDs = []int64{1, 2}
	assert.True(t, c.Matches(full))
}

func TestMatches_NilDocExcluded(t *testing.T) {
	c := Default()
	assert.False(t, c.Matches(nil), "missing filter doc must exclude the video")
}

func TestMatches_TriState(t *testing.T) {
	tests := []struct {
		name     string
		criteria Tri
		value    *bool
		want     bool
	}{
		{"any accepts true", Any, ptr(true), true},
		{"any accepts false", Any, ptr(false), true},
		{"any accepts null", Any, nil, true},
		{"true accepts true", True, ptr(true), true},
		{"true rejects false", True, ptr(false), false},
		{"true rejects null", True, nil, false},
		{"false accepts false", False, ptr(false), true},
		{"false rejects true", False, ptr(true), false},
		{"false rejects null", False, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			c.Censored = tt.criteria
			d := doc(1)
			d.Censored = tt.value
			assert.Equal(t, tt.want, c.Matches(d))
		})
	}
}

func TestMatches_IDSetOrSemantics(t *testing.T) {
	c := Default()
	c.SelectIDs(Tags, []int64{3, 7})

	hit := doc(1)
	hit.Links.TagIDs = []int64{7, 99}
	assert.True(t, c.Matches(hit), "one selected id present should pass")

	miss := doc(2)
	miss.Links.TagIDs = []int64{99}
	assert.False(t, c.Matches(miss))

	empty := doc(3)
	assert.False(t, c.Matches(empty), "video with no tags fails an active tag filter")

	c.ClearIDs(Tags)
	assert.True(t, c.Matches(miss), "cleared set passes everything")
}

func TestMatches_SetsAreANDedAcrossKinds(t *testing.T) {
	c := Default()
	c.SelectIDs(Tags, []int64{1})
	c.SelectIDs(Scenes, []int64{2})

	d := doc(1)
	d.Links.TagIDs = []int64{1}
	assert.False(t, c.Matches(d), "tag matches but scene filter fails")

	d.Links.SceneIDs = []int64{2}
	assert.True(t, c.Matches(d))
}

func TestMatches_MinRate(t *testing.T) {
	c := Default()
	c.SetMinRate(VideoRate, ptr(80))

	pass := doc(1)
	pass.Rates.Video = ptr(85)
	assert.True(t, c.Matches(pass))

	exact := doc(2)
	exact.Rates.Video = ptr(80)
	assert.True(t, c.Matches(exact), "threshold is inclusive")

	low := doc(3)
	low.Rates.Video = ptr(79)
	assert.False(t, c.Matches(low))

	unrated := doc(4)
	assert.False(t, c.Matches(unrated), "null rate fails an active threshold")

	c.SetMinRate(VideoRate, nil)
	assert.True(t, c.Matches(unrated), "cleared threshold passes null rates")
}

func TestToggleID(t *testing.T) {
	c := Default()

	c.ToggleID(Costumes, 5)
	_, ok := c.IDs(Costumes)[5]
	assert.True(t, ok)

	c.ToggleID(Costumes, 5)
	_, ok = c.IDs(Costumes)[5]
	assert.False(t, ok)
}

func TestReset(t *testing.T) {
	c := Default()
	c.Censored = True
	c.HasSpecial = False
	c.SelectIDs(Tags, []int64{1, 2})
	c.SetMinRate(VoiceRate, ptr(50))

	c.Reset()

	assert.Equal(t, Any, c.Censored)
	assert.Equal(t, Any, c.HasSpecial)
	assert.Empty(t, c.IDs(Tags))
	assert.Nil(t, c.MinRate(VoiceRate))
	assert.True(t, c.Matches(doc(1)))
}

func TestClone_Independent(t *testing.T) {
	c := Default()
	c.SelectIDs(Tags, []int64{1})
	c.SetMinRate(SexRate, ptr(60))

	clone := c.Clone()
	clone.ToggleID(Tags, 2)
	clone.SetMinRate(SexRate, ptr(90))

	assert.Len(t, c.IDs(Tags), 1, "mutating the clone must not touch the original")
	assert.Equal(t, 60, *c.MinRate(SexRate))
	assert.Len(t, clone.IDs(Tags), 2)
}

func TestApply_PreservesOrder(t *testing.T) {
	c := Default()
	c.SetMinRate(VideoRate, ptr(50))

	docs := map[int64]*media.FilterDoc{}
	for _, id := range []int64{10, 20, 30, 40} {
		d := doc(id)
		if id != 20 {
			d.Rates.Video = ptr(60)
		}
		docs[id] = d
	}

	got := c.Apply([]int64{40, 10, 20, 30}, docs)
	require.Equal(t, []int64{40, 10, 30}, got, "result keeps input order minus non-matches")
}

func TestApply_MissingDocExcluded(t *testing.T) {
	c := Default()
	docs := map[int64]*media.FilterDoc{1: doc(1)}

	got := c.Apply([]int64{1, 2}, docs)
	assert.Equal(t, []int64{1}, got)
}
