package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mintlab-dev/crmseed/internal/schema"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List available tables with defaults and dependencies",
	Run: func(cmd *cobra.Command, args []string) {
		color.Cyan("Available tables and dependencies:")
		for _, desc := range schema.Describe() {
			deps := "(none)"
			if len(desc.Dependencies) > 0 {
				deps = strings.Join(desc.Dependencies, ", ")
			}
			fmt.Printf("  %-15s default: %4d  deps: %s\n", desc.Name, desc.DefaultCount, deps)
		}
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}
