// Package cmd defines the planner command tree.
package cmd

import "github.com/spf13/cobra"

const appVersion = "dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "planner",
	Short: "Three-lane alliance war planning tools",
	Long: `Planner computes lane power targets from enemy rosters and
partitions the home roster of 60 teams across the three war lanes
using a deficit-greedy allocator.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./config.yaml)")
}
