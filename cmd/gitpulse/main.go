// main is the entry point for the gitpulse CLI.
package main

import (
	"fmt"
	"os"

	"github.com/cbuntingde/gitpulse/cmd"
	"github.com/cbuntingde/gitpulse/internal/histstore"
)

func main() {
	err := cmd.Execute()

	// Close stores before deciding the exit code; os.Exit skips defers.
	histstore.CloseStores()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
