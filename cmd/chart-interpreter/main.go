// Package main provides the CLI entrypoint for chart-interpreter.
//
// chart-interpreter reads a birth chart (ascendant and planetary longitudes
// from an ephemeris) and reports:
//   - house strength scores with the reasons behind them
//   - detected yogas and doshas
//   - permanent, temporal and five-fold planetary friendship
//
// It can also serve the same analysis over HTTP.
package main

import "chart-interpreter/internal/cli"

func main() {
	cli.Execute()
}
