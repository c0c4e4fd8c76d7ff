/*
Package main is the entry point for the restaurant-finder service.

Usage:

	restaurant-finder [command]

Available Commands:

	serve       Run the HTTP API
	search      Search restaurants and print the results
	details     Print the enriched record for a place
	registry    Inspect and validate the API endpoint registry
*/
package main

import (
	"fmt"
	"os"

	"restaurant-finder/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
