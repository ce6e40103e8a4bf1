package render

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/gduarte/massing/pkg/errors"
)

var csvHeader = []string{
	"name", "type", "category",
	"width_cm", "depth_cm", "height_cm",
	"area_m2", "target_area_m2", "degraded", "off_target",
}

func renderCSV(in Input) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to write CSV header")
	}
	for _, rec := range in.Records {
		row := []string{
			rec.Name,
			string(rec.Type),
			string(rec.Category),
			formatCM(rec.WidthCM),
			formatCM(rec.DepthCM),
			formatCM(rec.HeightCM),
			strconv.FormatFloat(rec.AreaM2, 'f', 2, 64),
			strconv.FormatFloat(rec.TargetAreaM2, 'f', 2, 64),
			strconv.FormatBool(rec.Degraded),
			strconv.FormatBool(rec.OffTarget),
		}
		if err := w.Write(row); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to write CSV row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to flush CSV output")
	}
	return buf.Bytes(), nil
}

// formatCM prints centimeter values without a trailing fraction when the
// value sits exactly on a whole centimeter, which snapped dimensions do.
func formatCM(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
