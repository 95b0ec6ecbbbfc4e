// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/green/reqdesk/internal/router"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Show the dashboard pages",
	Long:  `Print the pages reachable from the drawer. Pass one to --route to start there.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "PATH\tTITLE")
		for _, r := range router.Routes() {
			fmt.Fprintf(tw, "%s\t%s %s\n", r.Path, r.Icon, r.Title)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
