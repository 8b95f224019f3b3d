package main

import "github.com/spf13/cobra"

var verifyCmd = &cobra.Command{
	Use:   "verify [set ...]",
	Short: "Report the patch state of the server binaries without writing",
	Run:   VerifyCommand,
}

func VerifyCommand(cmd *cobra.Command, args []string) {
	runSets(args, true)
}
