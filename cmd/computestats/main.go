package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"hotelsys/stats"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "computestats",
		Usage:     "compute mean, median, mode, variance and standard deviation for numbers listed in files",
		ArgsUsage: "FILE [FILE...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "output",
				Value: "results/StatisticsResults.txt",
				Usage: "path of the TSV results file",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("at least one input file is required", 1)
	}
	start := time.Now()

	var datasets []*stats.DatasetStats
	var errs []string

	for _, path := range c.Args().Slice() {
		numbers, fileErrs, err := stats.ParseNumbersFromFile(path)
		if err != nil {
			errs = append(errs, fmt.Sprintf("input file not found: %s", path))
			datasets = append(datasets, nil)
			continue
		}
		errs = append(errs, fileErrs...)

		if len(numbers) == 0 {
			errs = append(errs, fmt.Sprintf("%s: no valid numeric data found, skipping", path))
			datasets = append(datasets, nil)
			continue
		}

		dataset, err := stats.Compute(numbers)
		if err != nil {
			errs = append(errs, err.Error())
			datasets = append(datasets, nil)
			continue
		}
		datasets = append(datasets, dataset)
	}

	for _, message := range errs {
		fmt.Fprintln(os.Stderr, message)
	}

	allEmpty := true
	for _, dataset := range datasets {
		if dataset != nil {
			allEmpty = false
			break
		}
	}
	if allEmpty {
		return cli.Exit("no valid numeric data found in any provided file, nothing to compute", 1)
	}

	elapsed := time.Since(start).Seconds()
	summary := stats.BuildSummary(datasets, elapsed)

	outputPath := c.String("output")
	merged := summary
	if existing, err := os.ReadFile(outputPath); err == nil {
		merged = stats.Merge(strings.Split(strings.TrimRight(string(existing), "\n"), "\n"), summary)
	}
	if err := stats.WriteResults(outputPath, merged); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	for _, line := range summary {
		fmt.Println(line)
	}
	return nil
}
