package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hotelsys/words"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "wordcount",
		Usage:     "count word frequencies in one or more files, keeping going on invalid data",
		ArgsUsage: "FILE [FILE...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "results-dir",
				Value: "results",
				Usage: "directory for the per-file and consolidated result files",
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
	resultsDir := c.String("results-dir")

	var blocks []string
	var errs []string

	for _, path := range c.Args().Slice() {
		tokens, fileErrs, err := words.ReadTokensFromFile(path)
		if err != nil {
			errs = append(errs, fmt.Sprintf("input file not found: %s", path))
			continue
		}
		errs = append(errs, fileErrs...)

		if len(tokens) == 0 {
			errs = append(errs, fmt.Sprintf("%s: no valid words found, skipping", filepath.Base(path)))
			continue
		}

		counts, order := words.CountWords(tokens)
		report := words.BuildReport(path, counts, len(tokens), order)
		blocks = append(blocks, report...)
		blocks = append(blocks, "")

		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		perFile := filepath.Join(resultsDir, stem+".Results.txt")
		if err := words.WriteResults(perFile, report); err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}

	for _, message := range errs {
		fmt.Fprintln(os.Stderr, message)
	}

	if len(blocks) == 0 {
		return cli.Exit("no data processed, nothing to count", 1)
	}

	elapsed := time.Since(start).Seconds()
	blocks = append(blocks, fmt.Sprintf("Elapsed time (s):\t%.5f", elapsed))

	for _, line := range blocks {
		fmt.Println(line)
	}

	consolidated := filepath.Join(resultsDir, "WordCountResults.txt")
	if err := words.WriteResults(consolidated, blocks); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}
