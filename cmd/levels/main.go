// Command levels prints the support/resistance and Fibonacci levels of a ticker.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"StockPulse/internal/domain/models"
	"StockPulse/internal/service/yahoo"
	"StockPulse/internal/usecase"
	"StockPulse/pkg/config"
	applogger "StockPulse/pkg/logger"
	"StockPulse/pkg/util"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen).SprintfFunc()
	red    = color.New(color.FgRed).SprintfFunc()
	yellow = color.New(color.FgYellow).SprintfFunc()
	bold   = color.New(color.Bold).SprintfFunc()
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "config file path")
	symbol := flag.String("symbol", "", "ticker symbol (default from config)")
	from := flag.String("from", "", "first day to fetch, YYYY-MM-DD (default chart.start_date)")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	if *noColor {
		color.NoColor = true
	}

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	start, err := cfg.StartDate()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	start = util.ParseDateDefault(*from, start)

	logger, err := applogger.New(&applogger.Config{Level: "warn", Format: "console", Output: "stderr"})
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	uc := usecase.NewChartUseCase(
		yahoo.New(cfg.Yahoo.BaseURL, cfg.Yahoo.UserAgent, cfg.Yahoo.Timeout, yahoo.WithRetries(cfg.Yahoo.Retries)),
		nil,
		logger,
		usecase.ChartConfig{StartDate: start, DefaultSymbol: cfg.Chart.DefaultSymbol, Timeout: cfg.Yahoo.Timeout},
	)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Yahoo.Timeout+5*time.Second)
	defer cancel()

	res, err := uc.Levels(ctx, *symbol)
	if err != nil {
		fmt.Fprintln(os.Stderr, red("error: %v", err))
		os.Exit(1)
	}
	printLevels(os.Stdout, res)
}

func printLevels(w io.Writer, res *models.LevelsResponse) {
	fmt.Fprintln(w, bold("%s  %d bars  %s .. %s", res.Symbol, res.Bars, res.From, res.To))
	fmt.Fprintf(w, "close range %.2f .. %.2f  tolerance %.4f\n\n", res.MinClose, res.MaxClose, res.Tolerance)
	for _, l := range res.Levels {
		fmt.Fprintf(w, "  %-10s %s\n", l.Kind, paint(l))
	}
}

func paint(l models.Level) string {
	switch l.Kind {
	case models.LevelSupport:
		return green("%s", l.Label)
	case models.LevelResistance:
		return red("%s", l.Label)
	default:
		return yellow("%s", l.Label)
	}
}
