package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dotinstall/cmd/dotinstall"
	"github.com/arthur-debert/dotinstall/pkg/output"
)

func main() {
	rootCmd := dotinstall.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, output.FormatError(os.Stderr, err, output.ShouldColor(os.Stderr)))
		os.Exit(1)
	}
}
