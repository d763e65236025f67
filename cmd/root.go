// Package cmd contains the CLI entrypoints of the service.
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vidnotes",
	Short: "YouTube summarization service",
	Long:  `vidnotes turns YouTube videos into AI-generated summaries and serves them over HTTP.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional, environment variables win either way
		_ = godotenv.Load()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
}
