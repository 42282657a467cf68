// Command threshold runs a Monte-Carlo threshold-estimation sweep over a
// surface-code family and Union-Find decoder, and writes the resulting
// per-(distance, error_rate) report to disk.
//
// Usage:
//
//	threshold [-config sweep.yaml] [-out threshold.json] [-seed 1]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/surfqec/uf/threshold"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "threshold: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("threshold", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a YAML sweep config (defaults baked in if omitted)")
	out := fs.String("out", "", "report output path (overrides the config's output_path)")
	seed := fs.Int64("seed", 0, "RNG seed (0 = use the config's seed)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var opts []threshold.Option
	if *out != "" {
		opts = append(opts, threshold.WithOutputPath(*out))
	}
	if *seed != 0 {
		opts = append(opts, threshold.WithSeed(*seed))
	}

	var cfg threshold.Config
	var err error
	if *configPath != "" {
		cfg, err = threshold.LoadConfig(*configPath, opts...)
	} else {
		cfg = threshold.NewConfig(opts...)
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	report, err := threshold.Run(context.Background(), cfg, threshold.DefaultOracle)
	if err != nil {
		return fmt.Errorf("running sweep: %w", err)
	}

	if err := report.WriteJSON(cfg.OutputPath); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	printSummary(report)
	fmt.Fprintf(os.Stderr, "\nWrote %s\n", cfg.OutputPath)
	return nil
}

// printSummary renders a human-readable table to stdout. Locale-aware
// number formatting (message.Printer) keeps the column widths stable
// across the range of failure rates a sweep can produce.
func printSummary(report threshold.Report) {
	p := message.NewPrinter(language.English)
	p.Printf("run %s (%s)\n", report.RunID, report.Family)
	p.Printf("%-10s %-12s %-8s %-10s %s\n", "distance", "error_rate", "trials", "failures", "failure_rate")
	for _, point := range report.Points {
		p.Printf("%-10d %-12.4f %-8d %-10d %.6f\n",
			point.Distance, point.ErrorRate, point.Trials, point.LogicalFailures, point.FailureRate())
	}
}
