// Command progressring renders and previews the indeterminate circular
// progress ring.
package main

import (
	"fmt"
	"os"

	"github.com/luboganev/circular-progress-view/cmd/progressring/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
