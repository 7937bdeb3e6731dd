// Package filter evaluates session filter criteria against video filter
// documents. Evaluation is pure and synchronous; it never touches the
// gateway.
package filter

import (
	"github.com/avdex/avdex/internal/media"
)

// Tri is a tri-state boolean criterion: Any places no constraint.
type Tri int

const (
	Any Tri = iota
	True
	False
)

// matches reports whether a nullable document value satisfies the
// criterion. Any accepts everything, including unknown (nil) values;
// True/False require that exact value, so nil fails.
func (t Tri) matches(v *bool) bool {
	switch t {
	case True:
		return v != nil && *v
	case False:
		return v != nil && !*v
	default:
		return true
	}
}

// SetKind names one of the four multi-select id-set criteria.
type SetKind int

const (
	ActressTypes SetKind = iota
	Costumes
	Scenes
	Tags
)

// RateField names one of the five minimum-rate thresholds.
type RateField int

const (
	VideoRate RateField = iota
	SexRate
	ActressRate
	ActingRate
	VoiceRate
)

// IDSet is a selected-id set with OR membership semantics.
type IDSet map[int64]struct{}

// Criteria is the mutable session filter state. The zero value is not
// ready to use; call Default.
type Criteria struct {
	Censored   Tri
	HasSpecial Tri

	sets     [4]IDSet
	minRates [5]*int
}

// Default returns all-permissive criteria: both tri-states Any, all id
// sets empty, all thresholds unset.
func Default() *Criteria {
	c := &Criteria{}
	for i := range c.sets {
		c.sets[i] = IDSet{}
	}
	return c
}

// Reset restores every field to its all-permissive default.
func (c *Criteria) Reset() {
	c.Censored = Any
	c.HasSpecial = Any
	for i := range c.sets {
		c.sets[i] = IDSet{}
	}
	for i := range c.minRates {
		c.minRates[i] = nil
	}
}

// Clone returns a deep copy, used by the popover draft flow.
func (c *Criteria) Clone() *Criteria {
	out := Default()
	out.Censored = c.Censored
	out.HasSpecial = c.HasSpecial
	for i, set := range c.sets {
		for id := range set {
			out.sets[i][id] = struct{}{}
		}
	}
	for i, min := range c.minRates {
		if min != nil {
			v := *min
			out.minRates[i] = &v
		}
	}
	return out
}

// ToggleID adds the id to the kind's set if absent, removes it otherwise.
func (c *Criteria) ToggleID(kind SetKind, id int64) {
	if _, ok := c.sets[kind][id]; ok {
		delete(c.sets[kind], id)
		return
	}
	c.sets[kind][id] = struct{}{}
}

// SelectIDs replaces the kind's set wholesale.
func (c *Criteria) SelectIDs(kind SetKind, ids []int64) {
	set := IDSet{}
	for _, id := range ids {
		set[id] = struct{}{}
	}
	c.sets[kind] = set
}

// ClearIDs empties the kind's set (a no-op pass-through filter).
func (c *Criteria) ClearIDs(kind SetKind) {
	c.sets[kind] = IDSet{}
}

// IDs returns the kind's selected set.
func (c *Criteria) IDs(kind SetKind) IDSet {
	return c.sets[kind]
}

// SetMinRate sets or clears (nil) a minimum-rate threshold.
func (c *Criteria) SetMinRate(field RateField, min *int) {
	if min == nil {
		c.minRates[field] = nil
		return
	}
	v := *min
	c.minRates[field] = &v
}

// MinRate returns the threshold for the field, nil when inactive.
func (c *Criteria) MinRate(field RateField) *int {
	return c.minRates[field]
}

// anyHit reports OR membership: an empty selection passes everything,
// a non-empty one requires at least one of the video's ids to be
// selected. Ids unknown to the lookup tables simply never match.
func anyHit(selected IDSet, have []int64) bool {
	if len(selected) == 0 {
		return true
	}
	for _, id := range have {
		if _, ok := selected[id]; ok {
			return true
		}
	}
	return false
}

// minOK reports whether a nullable rate clears a threshold. An unset
// threshold passes everything; an active one rejects null rates.
func minOK(val *int, min *int) bool {
	if min == nil {
		return true
	}
	return val != nil && *val >= *min
}

func setForDoc(kind SetKind, links media.LinkSets) []int64 {
	switch kind {
	case ActressTypes:
		return links.ActressTypeIDs
	case Costumes:
		return links.CostumeIDs
	case Scenes:
		return links.SceneIDs
	default:
		return links.TagIDs
	}
}

func rateForDoc(field RateField, rates media.Rates) *int {
	switch field {
	case VideoRate:
		return rates.Video
	case SexRate:
		return rates.Sex
	case ActressRate:
		return rates.Actress
	case ActingRate:
		return rates.Acting
	default:
		return rates.Voice
	}
}

// Matches evaluates one document against the criteria. A nil document
// never matches: a video whose filter data is missing cannot be
// verified against any criterion, so it is excluded.
func (c *Criteria) Matches(doc *media.FilterDoc) bool {
	if doc == nil {
		return false
	}
	if !c.Censored.matches(doc.Censored) {
		return false
	}
	if !c.HasSpecial.matches(doc.HasSpecial) {
		return false
	}
	for kind := ActressTypes; kind <= Tags; kind++ {
		if !anyHit(c.sets[kind], setForDoc(kind, doc.Links)) {
			return false
		}
	}
	for field := VideoRate; field <= VoiceRate; field++ {
		if !minOK(rateForDoc(field, doc.Rates), c.minRates[field]) {
			return false
		}
	}
	return true
}

// Apply returns the subsequence of order whose documents match,
// preserving relative order.
func (c *Criteria) Apply(order []int64, docs map[int64]*media.FilterDoc) []int64 {
	out := make([]int64, 0, len(order))
	for _, id := range order {
		if c.Matches(docs[id]) {
			out = append(out, id)
		}
	}
	return out
}
