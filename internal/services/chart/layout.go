package chart

import "strings"

// Subplot rows, top to bottom: price, volume, RSI, MACD.
var rowHeights = [4]float64{0.6, 0.1, 0.15, 0.15}

const verticalSpacing = 0.01

// yAxisRef maps a 1-based row to the Plotly axis id used by traces.
func yAxisRef(row int) string {
	if row == 1 {
		return "y"
	}
	return "y" + string(rune('0'+row))
}

// rowDomains splits [0,1] into stacked row domains, first row on top.
func rowDomains() [4][2]float64 {
	var out [4][2]float64
	usable := 1 - verticalSpacing*float64(len(rowHeights)-1)
	top := 1.0
	for i, h := range rowHeights {
		bottom := top - h*usable
		if i == len(rowHeights)-1 || bottom < 0 {
			bottom = 0
		}
		out[i] = [2]float64{bottom, top}
		top = bottom - verticalSpacing
	}
	return out
}

func newLayout(symbol string) Layout {
	d := rowDomains()
	return Layout{
		Title:     Title{Text: strings.ToUpper(symbol) + " Price Action", X: 0.5},
		DragMode:  "pan",
		HoverMode: "x",
		Legend: Legend{
			Title:       Text{Text: "Legend Items"},
			BgColor:     "#E2E2E2",
			BorderColor: "Black",
			BorderWidth: 2,
		},
		XAxis: XAxis{
			Anchor:         yAxisRef(4),
			AutoRange:      true,
			RangeSlider:    RangeSlider{Visible: false},
			RangeBreaks:    []RangeBreak{{Bounds: []string{"sat", "mon"}}},
			ShowSpikes:     true,
			SpikeDash:      "dot",
			SpikeThickness: 1,
			SpikeMode:      "across",
			SpikeColor:     "black",
		},
		YAxis:  YAxis{Title: Text{Text: "Price"}, Domain: d[0]},
		YAxis2: YAxis{Title: Text{Text: "Volume"}, Domain: d[1]},
		YAxis3: YAxis{Title: Text{Text: "RSI"}, Domain: d[2]},
		YAxis4: YAxis{Title: Text{Text: "MACD"}, Domain: d[3], ShowGrid: boolPtr(false)},
	}
}
