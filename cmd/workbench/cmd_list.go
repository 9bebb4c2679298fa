package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ravenscale/workbench/internal/catalog"
)

func runList(cmd *cobra.Command, args []string) error {
	for _, w := range catalog.All() {
		fmt.Printf("%-24s %-16s %s\n", w.ID(), w.Category(), w.Name())
	}
	return nil
}
