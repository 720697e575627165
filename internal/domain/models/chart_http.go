package models

// Requests for chart HTTP endpoints.

type ChartRequest struct {
	Symbol string `query:"symbol" json:"symbol" default:"AAPL" validate:"required,max=16,ticker"`
}

type LevelsRequest struct {
	Symbol string `query:"symbol" json:"symbol" default:"AAPL" validate:"required,max=16,ticker"`
}

// LevelsResponse is the transport shape of a LevelSet plus series stats.
type LevelsResponse struct {
	Symbol    string  `json:"symbol"`
	Bars      int     `json:"bars"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Tolerance float64 `json:"tolerance"`
	MaxClose  float64 `json:"max_close"`
	MinClose  float64 `json:"min_close"`
	Levels    []Level `json:"levels"`
}
