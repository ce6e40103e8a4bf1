package massing

import "github.com/gduarte/massing/pkg/program"

// Record is the frozen per-room output handed to external geometry
// generators. A consumer is expected to extrude a WidthCM × DepthCM ×
// HeightCM box, label it with Name and AreaM2, and group or color it by
// Category. Records are never mutated after emission.
type Record struct {
	Name          string           `json:"name"`
	Type          program.RoomType `json:"type"`
	Category      program.Category `json:"category"`
	Color         program.Color    `json:"color"`
	WidthCM       float64          `json:"width_cm"`
	DepthCM       float64          `json:"depth_cm"`
	HeightCM      float64          `json:"height_cm"`
	AreaCM2       float64          `json:"area_cm2"`
	TargetAreaCM2 float64          `json:"target_area_cm2"`
	AreaM2        float64          `json:"area_m2"`
	TargetAreaM2  float64          `json:"target_area_m2"`
	Degraded      bool             `json:"degraded,omitempty"`
	Optimized     bool             `json:"optimized,omitempty"`
	OffTarget     bool             `json:"off_target,omitempty"`
}

// EmitRecords assembles the final records from solved rooms.
//
// Circulation rooms are dropped here - corridors are not massed - and the
// number dropped is returned so the caller can report it. Order is preserved
// for the remaining rooms.
func EmitRecords(rooms []*Result, heightCM float64) ([]Record, int) {
	records := make([]Record, 0, len(rooms))
	dropped := 0

	for _, r := range rooms {
		if r.Type == program.Circulation {
			dropped++
			continue
		}
		cat := program.CategoryOf(r.Type)
		records = append(records, Record{
			Name:          r.Name,
			Type:          r.Type,
			Category:      cat,
			Color:         program.ColorOf(cat),
			WidthCM:       r.WidthCM,
			DepthCM:       r.DepthCM,
			HeightCM:      heightCM,
			AreaCM2:       r.AreaCM2(),
			TargetAreaCM2: r.TargetAreaCM2,
			AreaM2:        r.AreaCM2() / CM2PerM2,
			TargetAreaM2:  r.TargetAreaCM2 / CM2PerM2,
			Degraded:      r.Degraded,
			Optimized:     r.Optimized,
			OffTarget:     r.OffTarget,
		})
	}
	return records, dropped
}
