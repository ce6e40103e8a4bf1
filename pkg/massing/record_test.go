package massing

import (
	"testing"

	"github.com/gduarte/massing/pkg/program"
)

func TestEmitRecordsDropsCirculation(t *testing.T) {
	rooms := []*Result{
		Solve("Living Room", 35.5, program.Living, testModule),
		Solve("Hallway", 6, program.Circulation, testModule),
		Solve("Bathroom", 8.5, program.Bathroom, testModule),
		Solve("Corridor", 4, program.Circulation, testModule),
	}

	records, dropped := EmitRecords(rooms, 300)

	if dropped != 2 {
		t.Fatalf("dropped = %d, want 2", dropped)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	// Input order is preserved for the survivors.
	if records[0].Name != "Living Room" || records[1].Name != "Bathroom" {
		t.Errorf("records = [%s, %s], want [Living Room, Bathroom]", records[0].Name, records[1].Name)
	}
	for _, rec := range records {
		if rec.Type == program.Circulation {
			t.Errorf("circulation record %s leaked through", rec.Name)
		}
	}
}

func TestEmitRecordsFields(t *testing.T) {
	rooms := []*Result{Solve("Kitchen", 18, program.Kitchen, testModule)}
	records, _ := EmitRecords(rooms, 270)

	rec := records[0]
	if rec.HeightCM != 270 {
		t.Errorf("HeightCM = %v, want 270", rec.HeightCM)
	}
	if rec.WidthCM != 600 || rec.DepthCM != 300 {
		t.Errorf("footprint = %.0f×%.0f, want 600×300", rec.WidthCM, rec.DepthCM)
	}
	if rec.AreaCM2 != 180000 || rec.AreaM2 != 18 {
		t.Errorf("area = %v cm² / %v m², want 180000 / 18", rec.AreaCM2, rec.AreaM2)
	}
	if rec.TargetAreaM2 != 18 {
		t.Errorf("TargetAreaM2 = %v, want 18", rec.TargetAreaM2)
	}
	if rec.Category != program.CategoryPublic {
		t.Errorf("Category = %s, want %s", rec.Category, program.CategoryPublic)
	}
	if want := program.ColorOf(program.CategoryPublic); rec.Color != want {
		t.Errorf("Color = %+v, want %+v", rec.Color, want)
	}
	if rec.Degraded || rec.Optimized || rec.OffTarget {
		t.Errorf("flags = degraded:%v optimized:%v off_target:%v, want false",
			rec.Degraded, rec.Optimized, rec.OffTarget)
	}
}

func TestEmitRecordsCarriesOffTarget(t *testing.T) {
	rooms := []*Result{
		Solve("Master Bedroom", 22, program.Bedroom, testModule),
		Solve("Kitchen", 18, program.Kitchen, testModule),
	}
	MarkOffTarget(rooms, DefaultAreaTolerance)

	records, _ := EmitRecords(rooms, 300)

	// 450×450 misses the 22m² target by 7.95%, 600×300 hits 18m² exactly.
	if !records[0].OffTarget {
		t.Error("Master Bedroom record not flagged off target")
	}
	if records[1].OffTarget {
		t.Error("Kitchen record flagged off target at zero deviation")
	}
}

func TestAnalyzeBatch(t *testing.T) {
	// 600×600, 600×300, 450×450, 300×300: eight edges over three lengths
	// (600:3, 450:2, 300:3), every edge shared.
	rooms := solveBatch(t)
	stats := Analyze(rooms)

	if stats.Rooms != 4 {
		t.Errorf("Rooms = %d, want 4", stats.Rooms)
	}
	if stats.TotalWalls != 8 {
		t.Errorf("TotalWalls = %d, want 8", stats.TotalWalls)
	}
	if stats.UniqueDims != 3 {
		t.Errorf("UniqueDims = %d, want 3", stats.UniqueDims)
	}
	if stats.SharedWalls != 8 {
		t.Errorf("SharedWalls = %d, want 8", stats.SharedWalls)
	}
	if stats.SharedPct != 100 {
		t.Errorf("SharedPct = %v, want 100", stats.SharedPct)
	}
	if stats.RequestedM2 != 84 {
		t.Errorf("RequestedM2 = %v, want 84", stats.RequestedM2)
	}
	// 36 + 18 + 20.25 + 9 built m².
	if stats.BuiltM2 != 83.25 {
		t.Errorf("BuiltM2 = %v, want 83.25", stats.BuiltM2)
	}
	if stats.Degraded != 0 || stats.Optimized != 0 {
		t.Errorf("Degraded/Optimized = %d/%d, want 0/0", stats.Degraded, stats.Optimized)
	}
	if len(stats.TopDims) != 3 {
		t.Fatalf("len(TopDims) = %d, want 3", len(stats.TopDims))
	}
	if stats.TopDims[0].LengthCM != 300 || stats.TopDims[0].Count != 3 {
		t.Errorf("TopDims[0] = %+v, want {300 3}", stats.TopDims[0])
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	stats := Analyze(nil)
	if stats.Rooms != 0 || stats.SharedPct != 0 || stats.VariancePct != 0 {
		t.Errorf("empty batch stats = %+v, want zeros", stats)
	}
}
