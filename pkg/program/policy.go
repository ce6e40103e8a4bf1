package program

// Ratio is a preferred width:depth proportion, e.g. 3:2.
type Ratio struct {
	W int `json:"w"`
	D int `json:"d"`
}

// Policy describes the acceptable footprint shapes for one room type.
//
// Ratios are tried in listed order; the order is the tie-break priority when
// two candidates have equal area error. AspectMin and AspectMax bound the
// normalized aspect ratio max(w,d)/min(w,d) of any accepted candidate, so
// AspectMin is 1 for every type. MinWallCM is the shortest wall the type
// tolerates; walls below it are raised to the next module multiple.
type Policy struct {
	Ratios    []Ratio
	AspectMin float64
	AspectMax float64
	MinWallCM float64
}

// policies is the proportion policy table. Ratio lists and aspect bounds
// follow residential planning conventions: social rooms stay close to square,
// wet and service rooms tolerate elongation, circulation is allowed to be a
// corridor. The aspect bounds are the normalized (longer/shorter) form of the
// directional bounds used by the original tool.
var policies = map[RoomType]Policy{
	Living: {
		Ratios:    []Ratio{{4, 3}, {5, 4}, {3, 2}},
		AspectMin: 1.0, AspectMax: 1.7, MinWallCM: 180,
	},
	Bedroom: {
		Ratios:    []Ratio{{3, 2}, {4, 3}, {5, 4}},
		AspectMin: 1.0, AspectMax: 2.0, MinWallCM: 180,
	},
	Kitchen: {
		Ratios:    []Ratio{{5, 3}, {3, 2}, {4, 3}},
		AspectMin: 1.0, AspectMax: 2.0, MinWallCM: 150,
	},
	Bathroom: {
		Ratios:    []Ratio{{3, 2}, {2, 1}, {5, 4}},
		AspectMin: 1.0, AspectMax: 2.5, MinWallCM: 120,
	},
	Office: {
		Ratios:    []Ratio{{3, 2}, {4, 3}, {5, 4}},
		AspectMin: 1.0, AspectMax: 1.7, MinWallCM: 150,
	},
	Circulation: {
		Ratios:    []Ratio{{2, 1}, {3, 1}, {5, 2}},
		AspectMin: 1.0, AspectMax: 3.4, MinWallCM: 100,
	},
	Utility: {
		Ratios:    []Ratio{{2, 1}, {3, 2}, {1, 1}},
		AspectMin: 1.0, AspectMax: 2.5, MinWallCM: 100,
	},
	Unclassified: {
		Ratios:    []Ratio{{3, 2}, {4, 3}, {5, 4}, {1, 1}},
		AspectMin: 1.0, AspectMax: 2.0, MinWallCM: 120,
	},
}

// PolicyFor returns the proportion policy for a room type.
// Unknown types get the generic (unclassified) policy.
func PolicyFor(t RoomType) Policy {
	if p, ok := policies[t]; ok {
		return p
	}
	return policies[Unclassified]
}

// GenericPolicy returns the fallback policy used for unclassified rooms and
// for degraded-fit resolution when a type's own ratios all fail.
func GenericPolicy() Policy {
	return policies[Unclassified]
}
