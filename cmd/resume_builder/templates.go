package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available resume templates",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		for _, name := range rendering.Templates() {
			_, _ = fmt.Fprintf(os.Stdout, "%s\n", name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
