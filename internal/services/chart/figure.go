package chart

// Figure is a Plotly figure description: traces plus layout.
// It is marshalled as-is and rendered by plotly.js in the browser.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
	Dash  string  `json:"dash,omitempty"`
}

type Marker struct {
	Color []string `json:"color,omitempty"`
}

type Trace struct {
	Type       string    `json:"type"`
	Name       string    `json:"name,omitempty"`
	Mode       string    `json:"mode,omitempty"`
	X          []string  `json:"x"`
	Y          any       `json:"y,omitempty"`
	Open       []float64 `json:"open,omitempty"`
	High       []float64 `json:"high,omitempty"`
	Low        []float64 `json:"low,omitempty"`
	Close      []float64 `json:"close,omitempty"`
	XAxis      string    `json:"xaxis,omitempty"`
	YAxis      string    `json:"yaxis,omitempty"`
	Line       *Line     `json:"line,omitempty"`
	Marker     *Marker   `json:"marker,omitempty"`
	Opacity    float64   `json:"opacity,omitempty"`
	Visible    any       `json:"visible,omitempty"`
	ShowLegend *bool     `json:"showlegend,omitempty"`
	HoverInfo  string    `json:"hoverinfo,omitempty"`
}

type Text struct {
	Text string `json:"text"`
}

type Title struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
}

type Legend struct {
	Title       Text    `json:"title"`
	BgColor     string  `json:"bgcolor"`
	BorderColor string  `json:"bordercolor"`
	BorderWidth float64 `json:"borderwidth"`
}

type RangeSlider struct {
	Visible bool `json:"visible"`
}

type RangeBreak struct {
	Bounds []string `json:"bounds"`
}

type XAxis struct {
	Anchor         string       `json:"anchor"`
	AutoRange      bool         `json:"autorange"`
	RangeSlider    RangeSlider  `json:"rangeslider"`
	RangeBreaks    []RangeBreak `json:"rangebreaks,omitempty"`
	ShowSpikes     bool         `json:"showspikes"`
	SpikeDash      string       `json:"spikedash,omitempty"`
	SpikeThickness float64      `json:"spikethickness,omitempty"`
	SpikeMode      string       `json:"spikemode,omitempty"`
	SpikeColor     string       `json:"spikecolor,omitempty"`
}

type YAxis struct {
	Title    Text       `json:"title"`
	Domain   [2]float64 `json:"domain"`
	ShowGrid *bool      `json:"showgrid,omitempty"`
}

type Layout struct {
	Title     Title  `json:"title"`
	Legend    Legend `json:"legend"`
	DragMode  string `json:"dragmode"`
	HoverMode string `json:"hovermode"`
	XAxis     XAxis  `json:"xaxis"`
	YAxis     YAxis  `json:"yaxis"`
	YAxis2    YAxis  `json:"yaxis2"`
	YAxis3    YAxis  `json:"yaxis3"`
	YAxis4    YAxis  `json:"yaxis4"`
}

func boolPtr(b bool) *bool { return &b }
