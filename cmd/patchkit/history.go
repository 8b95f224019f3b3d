package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"patchkit/internal/core"
	"patchkit/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded patch applications, most recent first",
	Run:   HistoryCommand,
}

func HistoryCommand(cmd *cobra.Command, args []string) {
	cfg := core.LoadConfig(ConfigFlag)
	if DirFlag != "" {
		cfg.ServerDir = DirFlag
	}

	db, err := history.Initialize(cfg.HistoryPath())
	if err != nil {
		fmt.Printf("failed to open history database: %v\n", err)
		os.Exit(1)
	}

	applications, err := history.ListApplications(db)
	if err != nil {
		fmt.Printf("failed to read history: %v\n", err)
		os.Exit(1)
	}

	for _, a := range applications {
		mode := "apply"
		if a.DryRun {
			mode = "verify"
		}
		fmt.Printf("%s  %-6s %-16s %s @ 0x%X: %s\n",
			a.CreatedAt.Format("2006-01-02 15:04:05"), mode, a.PatchSet, a.TargetPath, a.Offset, a.Result)
	}
}
