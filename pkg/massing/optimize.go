package massing

import (
	"math"

	"github.com/gduarte/massing/pkg/program"
)

// Optimization defaults shared by the pipeline, CLI and API.
const (
	// DefaultAreaTolerance is the maximum relative deviation from a room's
	// target area that a substitution may introduce.
	DefaultAreaTolerance = 0.05

	// DefaultMaxPasses bounds the number of full optimization sweeps.
	DefaultMaxPasses = 3

	// DefaultClusterToleranceCM merges near-miss wall lengths into one
	// candidate center during optimization.
	DefaultClusterToleranceCM = 50
)

// OptimizeOptions configures the grid optimization pass.
type OptimizeOptions struct {
	ModuleCM           float64
	AreaTolerance      float64
	MaxPasses          int
	ClusterToleranceCM float64
}

// withDefaults fills zero fields with package defaults.
func (o OptimizeOptions) withDefaults() OptimizeOptions {
	if o.AreaTolerance == 0 {
		o.AreaTolerance = DefaultAreaTolerance
	}
	if o.MaxPasses == 0 {
		o.MaxPasses = DefaultMaxPasses
	}
	if o.ClusterToleranceCM == 0 {
		o.ClusterToleranceCM = DefaultClusterToleranceCM
	}
	return o
}

// OptimizeStats summarizes what an Optimize call did.
type OptimizeStats struct {
	Passes        int `json:"passes"`
	Changed       int `json:"changed"`
	SharedBefore  int `json:"shared_before"`
	SharedAfter   int `json:"shared_after"`
	CandidateDims int `json:"candidate_dims"`
}

// Optimize refines room dimensions in place so that more rooms share
// identical wall lengths, without violating any room's aspect range, minimum
// wall length, module alignment, or the per-room area tolerance relative to
// its own target area.
//
// The search is a deterministic greedy local fixed-point iteration, not a
// global optimum. Each sweep snapshots the wall-length histogram, derives the
// candidate target lengths (exact shared lengths first, then cluster centers
// of near-miss groups), and visits rooms in input order. A room's smaller
// dimension is replaced by the candidate that maximizes self-excluded
// histogram count, tie-broken by minimal area error then smaller length; the
// substitution commits only if it strictly improves the room's wall sharing,
// or matches it with strictly lower area error. Sweeps repeat until one
// commits nothing or MaxPasses is reached, so re-running Optimize on its own
// output changes nothing.
func Optimize(rooms []*Result, opts OptimizeOptions) OptimizeStats {
	opts = opts.withDefaults()

	var stats OptimizeStats
	stats.SharedBefore = NewHistogram(rooms).SharedLengths()

	for pass := 1; pass <= opts.MaxPasses; pass++ {
		snap := NewHistogram(rooms)
		candidates := candidateLengths(snap, rooms, opts)
		stats.CandidateDims = len(candidates)

		changed := 0
		for _, r := range rooms {
			if substitute(r, snap, candidates, opts) {
				r.Optimized = true
				changed++
			}
		}

		stats.Passes = pass
		stats.Changed += changed
		if changed == 0 {
			break
		}
	}

	stats.SharedAfter = NewHistogram(rooms).SharedLengths()
	return stats
}

// candidateLengths merges the exact shared lengths with cluster centers that
// are not already candidates. Order is deterministic: histogram targets keep
// their (count desc, length asc) order, cluster centers follow in the same
// order.
func candidateLengths(h Histogram, rooms []*Result, opts OptimizeOptions) []float64 {
	candidates := h.Targets()
	seen := make(map[float64]bool, len(candidates))
	for _, c := range candidates {
		seen[c] = true
	}

	lengths := make([]float64, 0, 2*len(rooms))
	for _, r := range rooms {
		lengths = append(lengths, r.WidthCM, r.DepthCM)
	}
	for _, cl := range Clusters(lengths, opts.ClusterToleranceCM, opts.ModuleCM) {
		if cl.Count >= 2 && !seen[cl.CenterCM] {
			candidates = append(candidates, cl.CenterCM)
			seen[cl.CenterCM] = true
		}
	}
	return candidates
}

// substitute attempts to move one room onto a candidate wall length.
// It returns true if the room's dimensions changed.
func substitute(r *Result, snap Histogram, candidates []float64, opts OptimizeOptions) bool {
	pol := program.PolicyFor(r.Type)
	minModule := ceilToModule(pol.MinWallCM, opts.ModuleCM)

	curScore := snap.countExcluding(r.WidthCM, r) + snap.countExcluding(r.DepthCM, r)
	curErr := r.AreaError()

	bestScore := -1
	bestErr := math.Inf(1)
	var bestT, bestOther float64

	for _, t := range candidates {
		if t < minModule {
			continue
		}
		other := snapToModule(r.TargetAreaCM2/t, opts.ModuleCM)
		if other < minModule {
			continue
		}

		aspect := math.Max(t, other) / math.Min(t, other)
		if aspect < pol.AspectMin || aspect > pol.AspectMax {
			continue
		}

		deviation := math.Abs(t*other-r.TargetAreaCM2) / r.TargetAreaCM2
		if deviation > opts.AreaTolerance {
			continue
		}

		if samePair(t, other, r.WidthCM, r.DepthCM) {
			continue
		}

		score := snap.countExcluding(t, r) + snap.countExcluding(other, r)
		err := math.Abs(t*other - r.TargetAreaCM2)
		if score > bestScore ||
			(score == bestScore && err < bestErr) ||
			(score == bestScore && err == bestErr && t < bestT) {
			bestScore, bestErr, bestT, bestOther = score, err, t, other
		}
	}

	if bestScore < 0 {
		return false
	}
	if bestScore < curScore || (bestScore == curScore && bestErr >= curErr) {
		return false
	}

	// The candidate replaces the smaller-used dimension.
	if r.WidthCM <= r.DepthCM {
		r.WidthCM, r.DepthCM = bestT, bestOther
	} else {
		r.DepthCM, r.WidthCM = bestT, bestOther
	}
	return true
}

// samePair reports whether {a1,b1} and {a2,b2} are the same unordered pair.
func samePair(a1, b1, a2, b2 float64) bool {
	return (a1 == a2 && b1 == b2) || (a1 == b2 && b1 == a2)
}
