package massing

import "sort"

// DimUsage is one wall length and the number of edges using it.
type DimUsage struct {
	LengthCM float64 `json:"length_cm"`
	Count    int     `json:"count"`
}

// BatchStats summarizes dimensional regularity and area accuracy for a batch.
type BatchStats struct {
	Rooms       int     `json:"rooms"`
	Optimized   int     `json:"optimized"`
	Degraded    int     `json:"degraded"`
	TotalWalls  int     `json:"total_walls"`
	UniqueDims  int     `json:"unique_dims"`
	SharedWalls int     `json:"shared_walls"`
	SharedPct   float64 `json:"shared_pct"`
	RequestedM2 float64 `json:"requested_m2"`
	BuiltM2     float64 `json:"built_m2"`
	VariancePct float64 `json:"variance_pct"`

	// TopDims lists the most used wall lengths, descending.
	TopDims []DimUsage `json:"top_dims,omitempty"`
}

// maxTopDims caps the most-common-dimension list in BatchStats.
const maxTopDims = 5

// Analyze computes batch statistics over solved rooms.
func Analyze(rooms []*Result) BatchStats {
	stats := BatchStats{Rooms: len(rooms)}

	h := NewHistogram(rooms)
	for _, r := range rooms {
		if r.Optimized {
			stats.Optimized++
		}
		if r.Degraded {
			stats.Degraded++
		}
		stats.RequestedM2 += r.TargetAreaCM2 / CM2PerM2
		stats.BuiltM2 += r.AreaCM2() / CM2PerM2
	}

	stats.TotalWalls = 2 * len(rooms)
	stats.UniqueDims = len(h)
	for _, count := range h {
		if count >= 2 {
			stats.SharedWalls += count
		}
	}
	if stats.TotalWalls > 0 {
		stats.SharedPct = 100 * float64(stats.SharedWalls) / float64(stats.TotalWalls)
	}
	if stats.RequestedM2 > 0 {
		stats.VariancePct = 100 * (stats.BuiltM2 - stats.RequestedM2) / stats.RequestedM2
	}

	for length, count := range h {
		stats.TopDims = append(stats.TopDims, DimUsage{LengthCM: length, Count: count})
	}
	sort.Slice(stats.TopDims, func(i, j int) bool {
		if stats.TopDims[i].Count != stats.TopDims[j].Count {
			return stats.TopDims[i].Count > stats.TopDims[j].Count
		}
		return stats.TopDims[i].LengthCM < stats.TopDims[j].LengthCM
	})
	if len(stats.TopDims) > maxTopDims {
		stats.TopDims = stats.TopDims[:maxTopDims]
	}
	return stats
}
