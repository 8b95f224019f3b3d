package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"patchkit/internal/bf1942"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available patch sets",
	Run:   ListCommand,
}

func ListCommand(cmd *cobra.Command, args []string) {
	for _, s := range bf1942.Sets() {
		fmt.Printf("%-16s %s (%d patches)\n", s.Name, s.Description, len(s.Patches))
	}
}
