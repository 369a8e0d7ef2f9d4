package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/2beens/weightstats/internal/config"
	"github.com/2beens/weightstats/internal/logging"
	"github.com/2beens/weightstats/internal/store"
	"github.com/2beens/weightstats/internal/weights"
)

const usage = `usage: weightstats [-config PATH] [-verbose] <command> [args]

commands:
  track <weight> [-timestamp T] [-workout W] [-calories C]   record a measurement
  delete <timestamp>                                         remove a measurement
  list [num_days] [-all]                                     table of recent records
  plot [num_weeks] [-minmax] [-targets T1,T2,...] [-all]     chart of recent records

timestamps: 01/02/2006-15:04:05 (long) or 01/02 15:04 (short, current year)
`

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	configPath := flag.String("config", "", "config file path (default: ~/"+config.DefaultFileName+")")
	verbose := flag.Bool("verbose", false, "debug logging")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
	}
	flag.Parse()

	cfg, err := config.Load(ctx, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logLevel := cfg.LogLevel
	if *verbose {
		logLevel = "debug"
	}
	logging.Setup(logging.SetupParams{
		LogFileName: cfg.LogsPath,
		LogToStderr: cfg.LogToStderr,
		LogLevel:    logLevel,
	})

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(ctx, cfg, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, command string, args []string) error {
	storeClient, err := store.NewDynamoClient(ctx, cfg.Table, store.Credentials{
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		Region:          cfg.AWSRegion,
	})
	if err != nil {
		return fmt.Errorf("create store client: %w", err)
	}

	tracker := weights.NewTracker(storeClient)

	switch command {
	case "track":
		return runTrack(ctx, tracker, args)
	case "delete":
		return runDelete(ctx, tracker, args)
	case "list":
		return runList(ctx, tracker, cfg, args)
	case "plot":
		return runPlot(ctx, tracker, cfg, args)
	default:
		return fmt.Errorf("unknown command %q (expected track, delete, list or plot)", command)
	}
}
