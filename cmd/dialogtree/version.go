package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/dialogtree"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of dialogtree",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dialogtree version %s\n", strings.TrimSpace(dialogtree.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
