package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/weightstats/internal/config"
	"github.com/2beens/weightstats/internal/render"
	"github.com/2beens/weightstats/internal/weights"
)

func runTrack(ctx context.Context, tracker *weights.Tracker, args []string) error {
	fs := flag.NewFlagSet("track", flag.ContinueOnError)
	timestamp := fs.String("timestamp", "", "measurement time, long or short form (default: now)")
	workout := fs.String("workout", "", "workout name (requires -calories)")
	calories := fs.Float64("calories", 0, "calories burned (requires -workout)")

	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return fmt.Errorf("%w: track needs a weight argument", weights.ErrInvalidInput)
	}
	kilos, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("%w: bad weight %q", weights.ErrInvalidInput, args[0])
	}
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	measuredAt := time.Now()
	if *timestamp != "" {
		measuredAt, err = weights.ParseTimestamp(*timestamp, time.Now())
		if err != nil {
			return fmt.Errorf("%w: %s", weights.ErrInvalidInput, err)
		}
	}

	// flags cannot tell an explicit zero from an unset value, so check
	// which ones were actually visited
	var workoutPtr *string
	var caloriesPtr *float64
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "workout":
			workoutPtr = workout
		case "calories":
			caloriesPtr = calories
		}
	})

	record, err := weights.NewRecord(measuredAt, kilos, workoutPtr, caloriesPtr)
	if err != nil {
		return err
	}

	if err := tracker.Track(ctx, record); err != nil {
		return err
	}

	fmt.Printf("tracked %.1f kg at %s\n", record.Kilos, record.Key())
	return nil
}

func runDelete(ctx context.Context, tracker *weights.Tracker, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: delete needs exactly one timestamp argument", weights.ErrInvalidInput)
	}

	measuredAt, err := weights.ParseTimestamp(args[0], time.Now())
	if err != nil {
		return fmt.Errorf("%w: %s", weights.ErrInvalidInput, err)
	}

	key := measuredAt.Format(weights.TimestampLayout)
	if err := tracker.Delete(ctx, key); err != nil {
		return err
	}

	fmt.Printf("deleted record at %s\n", key)
	return nil
}

func runList(ctx context.Context, tracker *weights.Tracker, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	all := fs.Bool("all", false, "show every record")

	days := cfg.DefaultListDays
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed < 0 {
			return fmt.Errorf("%w: bad number of days %q", weights.ErrInvalidInput, args[0])
		}
		days = parsed
		args = args[1:]
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	series, err := tracker.Load(ctx)
	if err != nil {
		return err
	}
	if !*all {
		if series, err = series.Window(time.Duration(days) * 24 * time.Hour); err != nil {
			return err
		}
	}

	render.Table(os.Stdout, series, series.RollingDailyAverage())
	return nil
}

func runPlot(ctx context.Context, tracker *weights.Tracker, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("plot", flag.ContinueOnError)
	all := fs.Bool("all", false, "plot every record")
	minMax := fs.Bool("minmax", false, "overlay series min and max")
	targets := fs.String("targets", "", "comma-separated reference levels")

	weeks := cfg.DefaultPlotWeeks
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed < 0 {
			return fmt.Errorf("%w: bad number of weeks %q", weights.ErrInvalidInput, args[0])
		}
		weeks = parsed
		args = args[1:]
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	targetLevels := []float64{cfg.DefaultTarget}
	if *targets != "" {
		targetLevels = nil
		for _, raw := range strings.Split(*targets, ",") {
			level, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return fmt.Errorf("%w: bad target level %q", weights.ErrInvalidInput, raw)
			}
			targetLevels = append(targetLevels, level)
		}
	}

	series, err := tracker.Load(ctx)
	if err != nil {
		return err
	}
	if !*all {
		if series, err = series.Window(time.Duration(weeks) * 7 * 24 * time.Hour); err != nil {
			return err
		}
	}

	chart := render.Chart(series, series.RollingDailyAverage(), render.ChartOptions{
		MinMax:  *minMax,
		Targets: targetLevels,
	})
	fmt.Println(chart)
	return nil
}
