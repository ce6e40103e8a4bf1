package render

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gduarte/massing/pkg/errors"
	"github.com/gduarte/massing/pkg/massing"
	"github.com/gduarte/massing/pkg/program"
)

func testInput(t *testing.T) Input {
	t.Helper()
	rooms := []*massing.Result{
		massing.Solve("Living Room", 35.5, program.Living, 150),
		massing.Solve("Kitchen", 18, program.Kitchen, 150),
		massing.Solve("Hallway", 6, program.Circulation, 150),
	}
	records, dropped := massing.EmitRecords(rooms, 300)
	return Input{
		Records: records,
		Stats:   massing.Analyze(rooms),
		Warnings: []errors.Warning{
			{Code: errors.ErrCodeInvalidInputRow, Row: 4, Message: "invalid area \"abc\""},
		},
		Dropped: dropped,
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := Render(testInput(t), FormatJSON)
	if err != nil {
		t.Fatalf("Render(json): %v", err)
	}

	var doc struct {
		Records []massing.Record `json:"records"`
		Stats   struct {
			Rooms int `json:"rooms"`
		} `json:"stats"`
		Warnings []string `json:"warnings"`
		Dropped  int      `json:"dropped_circulation"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}

	if len(doc.Records) != 2 {
		t.Errorf("records = %d, want 2", len(doc.Records))
	}
	if doc.Dropped != 1 {
		t.Errorf("dropped_circulation = %d, want 1", doc.Dropped)
	}
	if doc.Stats.Rooms != 3 {
		t.Errorf("stats.rooms = %d, want 3", doc.Stats.Rooms)
	}
	if len(doc.Warnings) != 1 || !strings.Contains(doc.Warnings[0], "row 4") {
		t.Errorf("warnings = %v, want rendered row warning", doc.Warnings)
	}
	if data[len(data)-1] != '\n' {
		t.Error("JSON artifact missing trailing newline")
	}
}

func TestRenderCSV(t *testing.T) {
	data, err := Render(testInput(t), FormatCSV)
	if err != nil {
		t.Fatalf("Render(csv): %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("artifact is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header plus 2 records", len(rows))
	}
	if rows[0][0] != "name" || rows[0][3] != "width_cm" {
		t.Errorf("header = %v", rows[0])
	}

	living := rows[1]
	if living[0] != "Living Room" || living[3] != "600" || living[4] != "600" {
		t.Errorf("living row = %v, want Living Room 600×600", living)
	}
	if living[6] != "36.00" || living[7] != "35.50" {
		t.Errorf("living areas = %s / %s, want 36.00 / 35.50", living[6], living[7])
	}
	if living[8] != "false" || living[9] != "false" {
		t.Errorf("degraded/off_target = %s/%s, want false/false", living[8], living[9])
	}
}

func TestRenderHTML(t *testing.T) {
	data, err := Render(testInput(t), FormatHTML)
	if err != nil {
		t.Fatalf("Render(html): %v", err)
	}
	html := string(data)
	if !strings.Contains(html, "<html") {
		t.Error("HTML artifact missing <html> tag")
	}
	if !strings.Contains(html, "Living Room") {
		t.Error("HTML artifact missing room labels")
	}
	if !strings.Contains(html, "echarts") {
		t.Error("HTML artifact missing chart runtime")
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := Render(testInput(t), "pdf")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Render(pdf) = %v, want invalid format error", err)
	}
}

func TestRenderEmptyBatch(t *testing.T) {
	for _, format := range []string{FormatJSON, FormatCSV, FormatHTML} {
		if _, err := Render(Input{}, format); err != nil {
			t.Errorf("Render(empty, %s) = %v", format, err)
		}
	}
}

func TestExtension(t *testing.T) {
	for _, format := range []string{FormatJSON, FormatCSV, FormatHTML} {
		if got := Extension(format); got != format {
			t.Errorf("Extension(%s) = %s", format, got)
		}
	}
}
