package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

// @title Task Board API
// @version 1.0
// @description Task list and kanban board backed by a single persisted task collection.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{
		Use:     "taskboard",
		Short:   "Task list and kanban board server",
		Version: Version,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(resetCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
