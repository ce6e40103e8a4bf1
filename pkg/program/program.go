// Package program defines the room program model: input rows, the closed set
// of room types, the keyword classifier, and the per-type proportion policies.
//
// A room program is an ordered list of (name, target area) pairs. The
// classifier assigns each row a RoomType from its free-text name; the
// proportion policy table then dictates which footprint shapes are
// architecturally acceptable for that type. Both tables are the single source
// of truth for the solver and optimizer - no other package hardcodes ratios
// or aspect bounds.
package program

// RoomInput is a single row of the room program.
type RoomInput struct {
	Name   string  `json:"name"`
	AreaM2 float64 `json:"area_m2"`
}

// RoomType is one of the closed set of room categories.
type RoomType string

// Room types, in classifier priority order. Circulation is checked first so
// that mixed names like "Hallway Storage" classify as circulation rather than
// utility. Unclassified is the fallback when no keyword matches.
const (
	Circulation  RoomType = "circulation"
	Bathroom     RoomType = "bathroom"
	Kitchen      RoomType = "kitchen"
	Bedroom      RoomType = "bedroom"
	Office       RoomType = "office"
	Living       RoomType = "living"
	Utility      RoomType = "utility"
	Unclassified RoomType = "unclassified"
)

// Types lists every room type in classifier priority order.
var Types = []RoomType{
	Circulation, Bathroom, Kitchen, Bedroom, Office, Living, Utility, Unclassified,
}

// Valid reports whether t is a member of the closed room type set.
func (t RoomType) Valid() bool {
	for _, rt := range Types {
		if t == rt {
			return true
		}
	}
	return false
}

// Category groups room types for downstream coloring and layering.
type Category string

// Categories for emitted records.
const (
	CategoryPublic  Category = "public"
	CategoryPrivate Category = "private"
	CategoryService Category = "service"
)

// categories maps each room type to its display category.
var categories = map[RoomType]Category{
	Living:       CategoryPublic,
	Kitchen:      CategoryPublic,
	Bedroom:      CategoryPrivate,
	Bathroom:     CategoryPrivate,
	Office:       CategoryPrivate,
	Utility:      CategoryService,
	Circulation:  CategoryService,
	Unclassified: CategoryPublic,
}

// CategoryOf returns the display category for a room type.
func CategoryOf(t RoomType) Category {
	if c, ok := categories[t]; ok {
		return c
	}
	return CategoryPublic
}

// Color is a pastel RGB color attached to emitted records so external
// renderers can group rooms visually without knowing the category rules.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Pastel palette per category, carried over from the original massing tool.
var categoryColors = map[Category]Color{
	CategoryPublic:  {150, 180, 255}, // light blue
	CategoryPrivate: {255, 150, 150}, // light red
	CategoryService: {255, 255, 150}, // light yellow
}

// ColorOf returns the display color for a category.
func ColorOf(c Category) Color {
	return categoryColors[c]
}
