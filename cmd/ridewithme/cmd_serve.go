package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/ridewithme/internal/server"
)

// ridewithme serve
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Run()
	},
}

// ridewithme route:list
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "Print all registered API routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		for _, rt := range server.NewRouter().Routes() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", rt.Method, rt.Path, rt.Name)
		}
		return w.Flush()
	},
}
