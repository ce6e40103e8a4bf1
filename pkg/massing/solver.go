package massing

import (
	"math"

	"github.com/gduarte/massing/pkg/program"
)

// Solve computes the initial width/depth pair for one room.
//
// Each ratio of the policy is tried in listed order: the unrounded dimensions
// for the target area are snapped to the module, raised to the type's minimum
// wall length where needed, and rejected if the resulting aspect falls outside
// the policy's range. Accepted candidates are scored by absolute area error;
// the earliest listed ratio wins ties. If every ratio is rejected, the room is
// resolved with the generic policy's first ratio and flagged degraded.
//
// The returned dimensions are always positive multiples of moduleCM and at
// least the policy's minimum wall length (the generic minimum in the degraded
// case), rounded up to the module.
func Solve(name string, areaM2 float64, typ program.RoomType, moduleCM float64) *Result {
	areaCM2 := areaM2 * CM2PerM2
	pol := program.PolicyFor(typ)

	var best *Result
	bestErr := math.Inf(1)

	for _, ratio := range pol.Ratios {
		w, d, ok := fitRatio(areaCM2, ratio, pol, moduleCM)
		if !ok {
			continue
		}
		if err := math.Abs(w*d - areaCM2); err < bestErr {
			bestErr = err
			best = &Result{Name: name, Type: typ, WidthCM: w, DepthCM: d, TargetAreaCM2: areaCM2}
		}
	}

	if best != nil {
		return best
	}

	// Degraded fallback: generic policy, first ratio, aspect check waived.
	gen := program.GenericPolicy()
	w, d := dimsForRatio(areaCM2, gen.Ratios[0], gen.MinWallCM, moduleCM)
	return &Result{
		Name:          name,
		Type:          typ,
		WidthCM:       w,
		DepthCM:       d,
		TargetAreaCM2: areaCM2,
		Degraded:      true,
	}
}

// fitRatio computes the snapped, minimum-corrected dimensions for one ratio
// and reports whether the result satisfies the policy's aspect range.
func fitRatio(areaCM2 float64, ratio program.Ratio, pol program.Policy, moduleCM float64) (w, d float64, ok bool) {
	w, d = dimsForRatio(areaCM2, ratio, pol.MinWallCM, moduleCM)

	aspect := math.Max(w, d) / math.Min(w, d)
	if aspect < pol.AspectMin || aspect > pol.AspectMax {
		return 0, 0, false
	}
	return w, d, true
}

// dimsForRatio derives the module-snapped dimensions for a ratio, raising
// either wall to the minimum where the snap undershoots it. When a wall is
// raised, the opposite wall is recomputed from the target area and re-snapped
// so the raise does not inflate the footprint more than necessary.
func dimsForRatio(areaCM2 float64, ratio program.Ratio, minWallCM, moduleCM float64) (w, d float64) {
	length := math.Sqrt(areaCM2 * float64(ratio.W) / float64(ratio.D))
	width := areaCM2 / length

	w = snapToModule(length, moduleCM)
	d = snapToModule(width, moduleCM)

	minModule := ceilToModule(minWallCM, moduleCM)
	if w < minModule || d < minModule {
		if w <= d {
			w = minModule
			d = snapToModule(areaCM2/w, moduleCM)
		} else {
			d = minModule
			w = snapToModule(areaCM2/d, moduleCM)
		}
	}

	// The recomputed wall can still undershoot for very small areas.
	w = math.Max(w, minModule)
	d = math.Max(d, minModule)
	return w, d
}
