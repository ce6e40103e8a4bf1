package massing

import (
	"math"
	"testing"

	"github.com/gduarte/massing/pkg/program"
)

const testModule = 150.0

func TestSolveKnownRooms(t *testing.T) {
	tests := []struct {
		name   string
		areaM2 float64
		typ    program.RoomType
		wantW  float64
		wantD  float64
	}{
		// 35.5m² living: 4:3 and 3:2 snap to 750×450 (aspect 1.67),
		// 5:4 snaps to 600×600 with the smallest area error.
		{"Living Room", 35.5, program.Living, 600, 600},

		// 18m² kitchen: 5:3 snaps to 600×300 with zero area error.
		{"Kitchen", 18, program.Kitchen, 600, 300},

		// 22m² bedroom: 5:4 snaps to 450×450, closer than 600×450.
		{"Master Bedroom", 22, program.Bedroom, 450, 450},

		// 8.5m² bathroom: 2:1 fails the aspect check, 3:2 wins at 300×300.
		{"Bathroom", 8.5, program.Bathroom, 300, 300},

		// 6m² hallway: 3:1 at 450×150 beats 2:1 at 300×150 on area error.
		{"Hallway", 6, program.Circulation, 450, 150},
	}

	for _, tt := range tests {
		r := Solve(tt.name, tt.areaM2, tt.typ, testModule)
		if r.WidthCM != tt.wantW || r.DepthCM != tt.wantD {
			t.Errorf("Solve(%s, %.1f) = %.0f×%.0f, want %.0f×%.0f",
				tt.name, tt.areaM2, r.WidthCM, r.DepthCM, tt.wantW, tt.wantD)
		}
		if r.Degraded {
			t.Errorf("Solve(%s) unexpectedly degraded", tt.name)
		}
	}
}

func TestSolveGuarantees(t *testing.T) {
	// Every solved room must be module-aligned, respect its policy's
	// minimum wall, and (unless degraded) stay inside the aspect range.
	areas := []float64{1, 2.5, 6, 8.5, 12, 18, 22, 35.5, 60, 120}

	for _, typ := range program.Types {
		pol := program.PolicyFor(typ)
		for _, area := range areas {
			r := Solve("room", area, typ, testModule)

			if r.WidthCM <= 0 || r.DepthCM <= 0 {
				t.Fatalf("%s %.1fm²: non-positive dims %.0f×%.0f", typ, area, r.WidthCM, r.DepthCM)
			}
			if !isModuleMultiple(r.WidthCM, testModule) || !isModuleMultiple(r.DepthCM, testModule) {
				t.Errorf("%s %.1fm²: dims %.0f×%.0f not module-aligned", typ, area, r.WidthCM, r.DepthCM)
			}

			minWall := pol.MinWallCM
			if r.Degraded {
				minWall = program.GenericPolicy().MinWallCM
			}
			if r.WidthCM < minWall || r.DepthCM < minWall {
				t.Errorf("%s %.1fm²: dims %.0f×%.0f below min wall %.0f", typ, area, r.WidthCM, r.DepthCM, minWall)
			}

			if !r.Degraded {
				if a := r.Aspect(); a < pol.AspectMin || a > pol.AspectMax {
					t.Errorf("%s %.1fm²: aspect %.2f outside [%.1f, %.1f]", typ, area, a, pol.AspectMin, pol.AspectMax)
				}
			}
		}
	}
}

func TestSolveDegradedFallback(t *testing.T) {
	// 6.3m² office: every policy ratio snaps to 300×150 (aspect 2.0),
	// above the office maximum of 1.7, so the generic 3:2 fallback is used.
	r := Solve("Office", 6.3, program.Office, testModule)
	if !r.Degraded {
		t.Fatal("expected degraded solve")
	}
	if r.WidthCM != 300 || r.DepthCM != 150 {
		t.Errorf("degraded dims = %.0f×%.0f, want 300×150", r.WidthCM, r.DepthCM)
	}
}

func TestSolveTinyRoomHitsMinimumWall(t *testing.T) {
	// 1m² bathroom is far below the minimum wall; both dims are raised to
	// the module above the minimum.
	r := Solve("WC", 1, program.Bathroom, testModule)
	if r.WidthCM != 150 || r.DepthCM != 150 {
		t.Errorf("tiny bathroom = %.0f×%.0f, want 150×150", r.WidthCM, r.DepthCM)
	}
}

func TestSolveEarliestRatioWinsTies(t *testing.T) {
	// With a coarse module many ratios snap to identical area error; the
	// result must be stable across runs.
	first := Solve("room", 14, program.Bedroom, testModule)
	for i := 0; i < 5; i++ {
		r := Solve("room", 14, program.Bedroom, testModule)
		if r.WidthCM != first.WidthCM || r.DepthCM != first.DepthCM {
			t.Fatalf("unstable solve: %.0f×%.0f then %.0f×%.0f",
				first.WidthCM, first.DepthCM, r.WidthCM, r.DepthCM)
		}
	}
}

func TestSolveTargetAreaPreserved(t *testing.T) {
	r := Solve("room", 18, program.Kitchen, testModule)
	if r.TargetAreaCM2 != 180000 {
		t.Errorf("TargetAreaCM2 = %v, want 180000", r.TargetAreaCM2)
	}
}

func TestResultHelpers(t *testing.T) {
	r := &Result{WidthCM: 600, DepthCM: 300, TargetAreaCM2: 175000}

	if got := r.AreaCM2(); got != 180000 {
		t.Errorf("AreaCM2 = %v, want 180000", got)
	}
	if got := r.AreaError(); got != 5000 {
		t.Errorf("AreaError = %v, want 5000", got)
	}
	if got := r.Aspect(); got != 2 {
		t.Errorf("Aspect = %v, want 2", got)
	}

	// Aspect is orientation-independent.
	flipped := &Result{WidthCM: 300, DepthCM: 600}
	if flipped.Aspect() != 2 {
		t.Errorf("flipped Aspect = %v, want 2", flipped.Aspect())
	}

	if got := r.Deviation(); math.Abs(got-5000.0/175000.0) > 1e-12 {
		t.Errorf("Deviation = %v, want %v", got, 5000.0/175000.0)
	}
}

func TestMarkOffTargetFlagsToleranceMisses(t *testing.T) {
	// Snapping to a 150cm module overshoots small rooms even when a
	// preferred ratio is accepted: every built area either sits within the
	// tolerance of its target or carries a flag saying it does not.
	tests := []struct {
		name      string
		areaM2    float64
		typ       program.RoomType
		deviation float64
		offTarget bool
	}{
		{"Living Room", 35.5, program.Living, 5000.0 / 355000.0, false},
		{"Kitchen", 18, program.Kitchen, 0, false},
		{"Master Bedroom", 22, program.Bedroom, 17500.0 / 220000.0, true},
		{"Bathroom", 8.5, program.Bathroom, 5000.0 / 85000.0, true},
	}

	rooms := make([]*Result, 0, len(tests))
	for _, tt := range tests {
		rooms = append(rooms, Solve(tt.name, tt.areaM2, tt.typ, testModule))
	}
	MarkOffTarget(rooms, DefaultAreaTolerance)

	for i, tt := range tests {
		r := rooms[i]
		if math.Abs(r.Deviation()-tt.deviation) > 1e-12 {
			t.Errorf("%s: Deviation = %v, want %v", tt.name, r.Deviation(), tt.deviation)
		}
		if r.OffTarget != tt.offTarget {
			t.Errorf("%s: OffTarget = %v, want %v (deviation %.2f%%)",
				tt.name, r.OffTarget, tt.offTarget, 100*r.Deviation())
		}
		if !r.OffTarget && r.Deviation() > DefaultAreaTolerance {
			t.Errorf("%s: deviation %.2f%% above tolerance but unflagged", tt.name, 100*r.Deviation())
		}
	}
}

func TestSnapToModule(t *testing.T) {
	tests := []struct {
		v, module, want float64
	}{
		{688, 150, 750},  // rounds half up past midpoint
		{516, 150, 450},  // rounds down below midpoint
		{225, 150, 300},  // exact midpoint rounds up
		{150, 150, 150},  // already aligned
		{70, 150, 0},     // rounds to zero below half a module
		{412.3, 150, 450},
	}
	for _, tt := range tests {
		if got := snapToModule(tt.v, tt.module); got != tt.want {
			t.Errorf("snapToModule(%v, %v) = %v, want %v", tt.v, tt.module, got, tt.want)
		}
	}
}

func TestCeilToModule(t *testing.T) {
	tests := []struct {
		v, module, want float64
	}{
		{120, 150, 150},
		{150, 150, 150},
		{151, 150, 300},
		{180, 150, 300},
	}
	for _, tt := range tests {
		if got := ceilToModule(tt.v, tt.module); got != tt.want {
			t.Errorf("ceilToModule(%v, %v) = %v, want %v", tt.v, tt.module, got, tt.want)
		}
	}
}

func isModuleMultiple(v, module float64) bool {
	q := v / module
	return math.Abs(q-math.Round(q)) < 1e-9
}
