// Package main provides the CLI entrypoint for record-mapper.
//
// record-mapper maps domain objects to the records of a Salesforce-style
// REST API and back:
//   - flatten: object to flat record for single-record writes
//   - tree: object graph to composite tree for batch creates
//   - hydrate: record or query response to domain objects
//   - validate / extract: schema checks and schema extraction from Go structs
package main

import (
	"os"

	"record-mapper/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
