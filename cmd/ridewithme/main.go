package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ridewithme",
	Short: "RideWithMe — car sharing API",
	Long:  "RideWithMe is a peer-to-peer sports car sharing service. Use this CLI to run the API server and manage the database.",
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	rootCmd.AddCommand(dbIndexCmd)
	rootCmd.AddCommand(dbSeedCmd)
}
