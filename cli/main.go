package main

import (
	"fmt"
	"os"

	"github.com/mxc-foundation/zkdeploy/internal/cli"
	"github.com/mxc-foundation/zkdeploy/internal/config"
)

// set with -ldflags "-X main.version=..."
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	config.SetBuildFlags(version, commit, date)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
