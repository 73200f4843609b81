// Command canopy runs and renders the canopy demo application.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/canopy/cmd/canopy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
