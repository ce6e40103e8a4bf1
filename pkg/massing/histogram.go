package massing

import "sort"

// Histogram counts how many room edges (width or depth) currently use each
// wall length. It is transient state owned by Optimize during a single call;
// it is never persisted.
type Histogram map[float64]int

// NewHistogram builds a histogram over the current dimensions of all rooms.
func NewHistogram(rooms []*Result) Histogram {
	h := make(Histogram, len(rooms))
	for _, r := range rooms {
		h[r.WidthCM]++
		h[r.DepthCM]++
	}
	return h
}

// Targets returns the candidate target lengths: every length used by at
// least two edges, ordered by descending usage count, then ascending length.
func (h Histogram) Targets() []float64 {
	var out []float64
	for length, count := range h {
		if count >= 2 {
			out = append(out, length)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if h[out[i]] != h[out[j]] {
			return h[out[i]] > h[out[j]]
		}
		return out[i] < out[j]
	})
	return out
}

// SharedLengths returns the number of distinct lengths used by two or more
// edges.
func (h Histogram) SharedLengths() int {
	n := 0
	for _, count := range h {
		if count >= 2 {
			n++
		}
	}
	return n
}

// countExcluding returns the usage count of length with the given room's own
// edges removed, so a room never scores against itself.
func (h Histogram) countExcluding(length float64, r *Result) int {
	c := h[length]
	if r.WidthCM == length {
		c--
	}
	if r.DepthCM == length {
		c--
	}
	if c < 0 {
		c = 0
	}
	return c
}

// Cluster groups near-identical wall lengths around a common center.
type Cluster struct {
	CenterCM float64
	Count    int
}

// Clusters merges wall lengths within toleranceCM of a running center into
// clusters, catching near-misses that the exact-match histogram cannot see
// (e.g. 450, 500 and 550 collapsing onto 500). Centers are usage-weighted
// means snapped to the module. The result is ordered by descending count,
// then ascending center.
func Clusters(lengths []float64, toleranceCM, moduleCM float64) []Cluster {
	if len(lengths) == 0 {
		return nil
	}

	counts := make(map[float64]int, len(lengths))
	for _, l := range lengths {
		counts[l]++
	}
	unique := make([]float64, 0, len(counts))
	for l := range counts {
		unique = append(unique, l)
	}
	sort.Float64s(unique)

	type acc struct {
		center float64
		sum    float64
		count  int
	}
	var accs []*acc

	for _, l := range unique {
		placed := false
		for _, a := range accs {
			if l >= a.center-toleranceCM && l <= a.center+toleranceCM {
				a.sum += l * float64(counts[l])
				a.count += counts[l]
				a.center = snapToModule(a.sum/float64(a.count), moduleCM)
				placed = true
				break
			}
		}
		if !placed {
			accs = append(accs, &acc{center: l, sum: l * float64(counts[l]), count: counts[l]})
		}
	}

	out := make([]Cluster, len(accs))
	for i, a := range accs {
		out[i] = Cluster{CenterCM: a.center, Count: a.count}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].CenterCM < out[j].CenterCM
	})
	return out
}
