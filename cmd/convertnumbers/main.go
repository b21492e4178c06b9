package main

import (
	"fmt"
	"os"
	"path/filepath"

	"hotelsys/numconv"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "convertnumbers",
		Usage:     "convert integers from text files to binary and hexadecimal, keeping going on invalid data",
		ArgsUsage: "FILE [FILE...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "output",
				Value: "results/ConvertionResults.txt",
				Usage: "path of the results file",
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

	var errs []string
	var report []string
	totalRecords := 0

	for _, path := range c.Args().Slice() {
		tokens, fileErrs, err := numconv.ReadTokensFromFile(path)
		if err != nil {
			errs = append(errs, fmt.Sprintf("input file not found: %s", path))
			continue
		}
		errs = append(errs, fileErrs...)

		if len(tokens) == 0 {
			errs = append(errs, fmt.Sprintf("%s: empty file, skipping", filepath.Base(path)))
			continue
		}

		report = append(report, numconv.BuildReport(path, tokens)...)
		report = append(report, "")
		totalRecords += len(tokens)
	}

	for _, message := range errs {
		fmt.Fprintln(os.Stderr, message)
	}

	if totalRecords == 0 {
		return cli.Exit("no data processed, nothing to convert", 1)
	}

	for _, line := range report {
		fmt.Println(line)
	}
	if err := numconv.WriteResults(c.String("output"), report); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}
