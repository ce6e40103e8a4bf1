package massing

import (
	"math"

	"github.com/gduarte/massing/pkg/program"
)

// CM2PerM2 converts square meters to square centimeters.
const CM2PerM2 = 10000.0

// Result is one room's footprint while it moves through the pipeline.
//
// A Result is created once by Solve, its WidthCM/DepthCM may be refined in
// place by Optimize, and it is frozen when emitted as a Record. Instances are
// owned by a single pipeline run and never shared across runs.
type Result struct {
	Name          string
	Type          program.RoomType
	WidthCM       float64
	DepthCM       float64
	TargetAreaCM2 float64

	// Degraded marks a room whose type ratios all failed the aspect check
	// even after minimum-size correction, resolved via the generic policy.
	Degraded bool

	// Optimized marks a room whose dimensions were changed by Optimize.
	Optimized bool

	// OffTarget marks a room whose built area deviates from its target by
	// more than the batch's area tolerance. Module snapping can overshoot
	// small rooms even when a preferred ratio is accepted, so the flag is
	// independent of Degraded. Set by MarkOffTarget.
	OffTarget bool
}

// AreaCM2 returns the built area width × depth.
func (r *Result) AreaCM2() float64 {
	return r.WidthCM * r.DepthCM
}

// AreaError returns the absolute deviation from the target area.
func (r *Result) AreaError() float64 {
	return math.Abs(r.AreaCM2() - r.TargetAreaCM2)
}

// Deviation returns the relative deviation of the built area from the
// target area.
func (r *Result) Deviation() float64 {
	return r.AreaError() / r.TargetAreaCM2
}

// MarkOffTarget flags every room whose built area misses its target by more
// than tolerance. Called once after optimization, when dimensions are final.
func MarkOffTarget(rooms []*Result, tolerance float64) {
	for _, r := range rooms {
		if r.Deviation() > tolerance {
			r.OffTarget = true
		}
	}
}

// Aspect returns the normalized aspect ratio, longer side over shorter.
func (r *Result) Aspect() float64 {
	if r.WidthCM >= r.DepthCM {
		return r.WidthCM / r.DepthCM
	}
	return r.DepthCM / r.WidthCM
}

// snapToModule rounds v to the nearest multiple of module, half up.
func snapToModule(v, module float64) float64 {
	return math.Floor(v/module+0.5) * module
}

// ceilToModule rounds v up to the next multiple of module.
func ceilToModule(v, module float64) float64 {
	return math.Ceil(v/module) * module
}
