// Command analyze runs the workload engine on a plan file without a database.
//
//	analyze --plan plan.yaml program
//	analyze --plan plan.toml day 0
//	analyze --plan plan.json summary bench_press
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
