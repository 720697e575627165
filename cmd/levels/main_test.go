package main

import (
	"bytes"
	"strings"
	"testing"

	"StockPulse/internal/domain/models"

	"github.com/fatih/color"
)

func TestPrintLevels(t *testing.T) {
	color.NoColor = true
	res := &models.LevelsResponse{
		Symbol:    "AAPL",
		Bars:      30,
		From:      "2024-01-01",
		To:        "2024-02-10",
		Tolerance: 1.5,
		MaxClose:  200,
		MinClose:  100,
		Levels: []models.Level{
			{Value: 120, Kind: models.LevelSupport, Label: "120"},
			{Value: 180.5, Kind: models.LevelResistance, Label: "180.5"},
			{Value: 47.2, Kind: models.LevelFibonacci, Label: "47.2"},
		},
	}

	var buf bytes.Buffer
	printLevels(&buf, res)
	out := buf.String()

	for _, want := range []string{"AAPL  30 bars  2024-01-01 .. 2024-02-10", "100.00 .. 200.00", "support", "180.5", "fibonacci"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "\n") != 6 {
		t.Fatalf("unexpected line count:\n%s", out)
	}
}
