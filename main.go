// main is the entry point for the gitcredit CLI.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/gitcredit/cmd"
	"github.com/huangsam/gitcredit/internal/iocache"
)

func main() {
	defer iocache.CloseStores()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if err := cmd.StopProfiling(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}
}
