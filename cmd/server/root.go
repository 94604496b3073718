package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "harvestshare",
	Short: "HarvestShare - fruit harvest marketplace",
	Long: `HarvestShare connects landowners with unharvested fruit trees to
harvesters willing to pick them, splitting the yield by an agreed percentage.

It provides a REST API for properties, harvest applications, deals and
messaging between deal parties.

Run 'harvestshare serve' to start the server, or 'harvestshare seed' to load
demo data.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}
