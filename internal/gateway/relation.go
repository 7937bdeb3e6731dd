package gateway

import "fmt"

// Relation identifies one lookup entity and, where it exists, its
// video join table. The closed set replaces the original console's
// habit of passing table and column names around as strings.
type Relation int

const (
	RelActress Relation = iota
	RelActressType
	RelCostume
	RelScene
	RelTag
	RelPublisher
)

// relationInfo is the compile-time table mapping for a Relation.
type relationInfo struct {
	key        string
	table      string
	idColumn   string
	nameColumn string
	linkTable  string // empty when the relation has no video join table
	linkColumn string // target id column inside the join table
}

var relations = [...]relationInfo{
	RelActress:     {"actress", "actress", "actress_id", "actress_name", "actress_in_video", "actress_id"},
	RelActressType: {"actress_type", "actress_type", "actress_type_id", "actress_type_name", "actress_type_in_video", "actress_type_id"},
	RelCostume:     {"costume", "costume", "costume_id", "costume_name", "costume_in_video", "costume_id"},
	RelScene:       {"scene", "scene", "scene_id", "scene_name", "video_scene", "scene_id"},
	RelTag:         {"tag", "tag", "tag_id", "tag_name", "video_tag", "tag_id"},
	RelPublisher:   {"publisher", "publisher", "publisher_id", "publisher_name", "", ""},
}

// LinkRelations are the four relations the filter engine cares about,
// in the fixed iteration order used everywhere results are assembled.
var LinkRelations = [4]Relation{RelActressType, RelCostume, RelScene, RelTag}

func (r Relation) valid() bool {
	return r >= RelActress && r <= RelPublisher
}

// String returns the stable key for the relation ("tag", "scene", ...).
func (r Relation) String() string {
	if !r.valid() {
		return fmt.Sprintf("relation(%d)", int(r))
	}
	return relations[r].key
}

// Table returns the lookup table name.
func (r Relation) Table() string { return relations[r].table }

// IDColumn returns the lookup table's id column.
func (r Relation) IDColumn() string { return relations[r].idColumn }

// NameColumn returns the lookup table's display name column.
func (r Relation) NameColumn() string { return relations[r].nameColumn }

// LinkTable returns the video join table, or "" if the relation has none.
func (r Relation) LinkTable() string { return relations[r].linkTable }

// LinkColumn returns the target id column inside the join table.
func (r Relation) LinkColumn() string { return relations[r].linkColumn }

// ParseRelation maps a stable key back to its Relation.
func ParseRelation(key string) (Relation, error) {
	for i := range relations {
		if relations[i].key == key {
			return Relation(i), nil
		}
	}
	return 0, fmt.Errorf("unknown relation %q", key)
}
