package main

import (
	"fmt"
	"os"
	"time"

	"hotelsys/sales"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "computesales",
		Usage:     "compute total sales cost from a price catalogue and a sales record",
		ArgsUsage: "PRICE_CATALOGUE SALES_RECORD",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "output",
				Value: "SalesResults.txt",
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
	if c.NArg() != 2 {
		return cli.Exit("a price catalogue and a sales record file are required", 1)
	}
	start := time.Now()

	catalogue, err := sales.LoadCatalogue(c.Args().Get(0))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	record, err := sales.LoadSales(c.Args().Get(1))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	lookup := sales.BuildPriceLookup(catalogue)
	saleTotals, grandTotal, errs := sales.ComputeTotals(record, lookup)
	for _, message := range errs {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", message)
	}

	report := sales.BuildReport(saleTotals, grandTotal)
	for _, line := range report {
		fmt.Println(line)
	}
	fmt.Printf("Elapsed time: %.5fs\n", time.Since(start).Seconds())

	if err := sales.WriteResults(c.String("output"), report); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}
