package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	ConfigFlag   string
	DirFlag      string
	NoBackupFlag bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "patchkit",
		Short: "Verified binary patches for BF1942 dedicated server binaries",
	}
	rootCmd.PersistentFlags().StringVarP(&ConfigFlag, "config", "c", "", "Path to the directory containing the config file")
	rootCmd.PersistentFlags().StringVarP(&DirFlag, "dir", "d", "", "Server directory containing the binaries (overrides config)")

	applyCmd.Flags().BoolVar(&NoBackupFlag, "no-backup", false, "Skip copying each file aside before the first write to it")

	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(historyCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
	}
}
