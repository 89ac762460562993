package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kimim/turtle/internal/logging"
)

var logger = logging.New(slog.LevelWarn)

var rootCmd = &cobra.Command{
	Use:   "turtle",
	Short: "Turtle is a turtle graphics interpreter",
	Long:  `Turtle runs Logo-style turtle scripts and renders the recorded drawing as SVG or PNG.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logger = logging.New(slog.LevelDebug)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}
