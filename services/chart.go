package services

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
)

// ErrNoData is returned when a chart is requested over an empty result set.
// Plain data queries return empty sequences; only rendering treats that as a
// reportable failure.
var ErrNoData = errors.New("no data to render")

// RenderConsumptionChart draws per-device total consumption as a PNG bar chart.
func RenderConsumptionChart(items []DeviceConsumption) ([]byte, error) {
	if len(items) == 0 {
		return nil, ErrNoData
	}
	bars := make([]chart.Value, 0, len(items))
	for _, item := range items {
		bars = append(bars, chart.Value{Label: item.DeviceName, Value: item.Total})
	}
	return renderBars("Total Energy Consumption per Device (kWh)", bars)
}

// RenderHouseTypeChart draws average consumption per house size category as a
// PNG bar chart.
func RenderHouseTypeChart(stats []HouseTypeStat) ([]byte, error) {
	if len(stats) == 0 {
		return nil, ErrNoData
	}
	bars := make([]chart.Value, 0, len(stats))
	for _, stat := range stats {
		bars = append(bars, chart.Value{Label: stat.Type, Value: stat.AvgConsumption})
	}
	return renderBars("Average Consumption by House Type (kWh)", bars)
}

func renderBars(title string, bars []chart.Value) ([]byte, error) {
	graph := chart.BarChart{
		Title:    title,
		Width:    max(512, 96*len(bars)),
		Height:   512,
		BarWidth: 60,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf.Bytes(), nil
}
