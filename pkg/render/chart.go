package render

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/gduarte/massing/pkg/errors"
)

// renderHTML builds a standalone report page with two bar charts: target vs
// built area per room, and how often each wall length is reused across the
// batch.
func renderHTML(in Input) ([]byte, error) {
	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.PageTitle = "Massing Report"
	page.AddCharts(areaChart(in), wallChart(in))

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to render HTML report")
	}
	return buf.Bytes(), nil
}

func areaChart(in Input) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "480px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Room areas",
			Subtitle: fmt.Sprintf("target vs built, %.1f%% total variance", in.Stats.VariancePct),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	names := make([]string, 0, len(in.Records))
	target := make([]opts.BarData, 0, len(in.Records))
	built := make([]opts.BarData, 0, len(in.Records))
	for _, rec := range in.Records {
		names = append(names, rec.Name)
		target = append(target, opts.BarData{Value: round2(rec.TargetAreaM2)})
		built = append(built, opts.BarData{Value: round2(rec.AreaM2)})
	}

	bar.SetXAxis(names).
		AddSeries("Target m²", target).
		AddSeries("Built m²", built)
	return bar
}

func wallChart(in Input) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "480px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Wall length usage",
			Subtitle: fmt.Sprintf("%d of %d walls share a length", in.Stats.SharedWalls, in.Stats.TotalWalls),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	counts := make(map[float64]int)
	for _, rec := range in.Records {
		counts[rec.WidthCM]++
		counts[rec.DepthCM]++
	}
	lengths := make([]float64, 0, len(counts))
	for l := range counts {
		lengths = append(lengths, l)
	}
	sort.Float64s(lengths)

	labels := make([]string, 0, len(lengths))
	data := make([]opts.BarData, 0, len(lengths))
	for _, l := range lengths {
		labels = append(labels, fmt.Sprintf("%.0f cm", l))
		data = append(data, opts.BarData{Value: counts[l]})
	}

	bar.SetXAxis(labels).AddSeries("Walls", data)
	return bar
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
