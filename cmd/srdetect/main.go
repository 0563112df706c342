package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/srdetect/srdetect/internal/config"
	"github.com/srdetect/srdetect/internal/csvio"
	"github.com/srdetect/srdetect/internal/logging"
	"github.com/srdetect/srdetect/internal/render"
	"github.com/srdetect/srdetect/internal/spectral"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	input := flag.String("input", "-", `Input CSV path ("-" reads stdin); .gz, .zst and .sz inputs are decompressed`)
	output := flag.String("output", "", "Output CSV path (stdout if empty)")
	q := flag.Int("q", 3, "Window size for calculating the saliency map")
	z := flag.Int("z", 21, "Window size for averaging the saliency map when scoring")
	threshold := flag.Float64("t", 3.0, "Threshold that determines if a data point is an anomaly")
	trendWindow := flag.Int("m", 5, "Number of preceding points considered for extrapolation")
	extraPoints := flag.Int("k", 5, "Number of extrapolated points; 0 disables extrapolation")
	timeFormat := flag.String("time-format", "datetime", "Output timestamp format: datetime or millis")
	plotPath := flag.String("plot", "", "Optional PNG chart output path")
	plotTitle := flag.String("plot-title", "", "Title of the value row in the chart")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Fatal("Failed to load config", "error", err)
	}

	// The input path can also be given as the positional argument.
	if flag.NArg() > 0 {
		cfg.Input.Path = flag.Arg(0)
	}

	// Flags that were set explicitly override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input.Path = *input
		case "output":
			cfg.Output.Path = *output
		case "q":
			cfg.Detector.Q = *q
		case "z":
			cfg.Detector.Z = *z
		case "t":
			cfg.Detector.Threshold = *threshold
		case "m":
			cfg.Detector.TrendWindow = *trendWindow
		case "k":
			cfg.Detector.ExtraPoints = *extraPoints
		case "time-format":
			cfg.Output.TimeFormat = *timeFormat
		case "plot":
			cfg.Output.Plot = *plotPath
		case "plot-title":
			cfg.Output.PlotTitle = *plotTitle
		case "log-level":
			cfg.Logging.Level = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		logging.Fatal("Invalid configuration", "error", err)
	}

	logger, err := logging.NewFromConfig(cfg.Logging)
	if err != nil {
		logging.Fatal("Failed to initialize logging", "error", err)
	}
	logging.SetGlobal(logger)

	ctx := logging.WithLogger(context.Background(), logger)
	ctx = logging.WithRunID(ctx, uuid.NewString())
	log := logging.FromContext(ctx).WithContext(ctx)

	start := time.Now()

	in, err := csvio.Open(cfg.Input.Path)
	if err != nil {
		log.Fatal("Failed to open input", "error", err)
	}
	series, readErr := csvio.ReadSeries(in)
	in.Close()
	if readErr != nil {
		log.Fatal("Failed to read input", "error", readErr)
	}
	if series.Len() == 0 {
		log.Fatal("Input contains no samples", "input", cfg.Input.Path)
	}

	log.Debug("Loaded series",
		"samples", series.Len(),
		"mean", series.Mean(),
		"stddev", series.StdDev())

	detector, err := spectral.Get("spectral_residual")
	if err != nil {
		log.Fatal("Failed to resolve detector", "error", err)
	}

	result, err := detector.Detect(series.Values(), spectral.Config{
		Q:           cfg.Detector.Q,
		Z:           cfg.Detector.Z,
		Threshold:   cfg.Detector.Threshold,
		TrendWindow: cfg.Detector.TrendWindow,
		ExtraPoints: cfg.Detector.ExtraPoints,
	})
	if err != nil {
		log.Fatal("Detection failed", "error", err)
	}

	anomalies := 0
	for _, flagged := range result.Flags {
		if flagged {
			anomalies++
		}
	}

	out := os.Stdout
	if cfg.Output.Path != "" {
		f, err := os.Create(cfg.Output.Path)
		if err != nil {
			log.Fatal("Failed to create output", "error", err)
		}
		out = f
	}
	writeErr := csvio.WriteResults(out, series, result, csvio.TimeFormat(cfg.Output.TimeFormat))
	if out != os.Stdout {
		if closeErr := out.Close(); writeErr == nil {
			writeErr = closeErr
		}
	}
	if writeErr != nil {
		log.Fatal("Failed to write results", "error", writeErr)
	}

	if cfg.Output.Plot != "" {
		err := render.WritePNG(cfg.Output.Plot, series, result, render.Options{
			Title:     cfg.Output.PlotTitle,
			Threshold: cfg.Detector.Threshold,
		})
		if err != nil {
			log.Fatal("Failed to render chart", "error", err)
		}
		log.Info("Chart written", "path", cfg.Output.Plot)
	}

	log.Info("Detection complete",
		"samples", series.Len(),
		"anomalies", anomalies,
		"elapsed", time.Since(start))
}
