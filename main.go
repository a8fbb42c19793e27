// Package main is the entry point for the foostats CLI tool, which reads
// game score CSVs and computes player, duo, and matchup statistics.
package main

import "github.com/popopmc/foostats/cmd"

func main() {
	cmd.Execute()
}
