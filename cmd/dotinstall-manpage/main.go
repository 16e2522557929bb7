package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/dotinstall/cmd/dotinstall"
	"github.com/arthur-debert/dotinstall/internal/version"
)

func main() {
	rootCmd := dotinstall.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "DOTINSTALL",
		Section: "1",
		Source:  "dotinstall " + version.Version,
		Manual:  "dotinstall manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
