// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/green/reqdesk/internal/filter"
	"github.com/green/reqdesk/internal/requests"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List resources",
	Long:  `List requests without starting the dashboard.`,
}

var listRequestsCmd = &cobra.Command{
	Use:   "requests",
	Short: "List requests",
	Long: `List requests with optional filtering.

Status values (case-insensitive, or their number):
  Sent, Processing, Completed

Requester values:
  Client, Broker, Salesperson

Examples:
  reqdesk list requests
  reqdesk list requests --status sent,completed
  reqdesk list requests --requester broker --limit 5
  reqdesk list requests --client 654321
  reqdesk list requests --query kosice`,
	RunE: runListRequests,
}

var (
	listStatus    string
	listRequester string
	listClient    string
	listQuery     string
	listLimit     int
)

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listRequestsCmd)

	listRequestsCmd.Flags().StringVar(&listStatus, "status", "", "filter by status (comma-separated)")
	listRequestsCmd.Flags().StringVar(&listRequester, "requester", "", "filter by requester kind")
	listRequestsCmd.Flags().StringVar(&listClient, "client", "", "filter by client id")
	listRequestsCmd.Flags().StringVarP(&listQuery, "query", "q", "", "search text")
	listRequestsCmd.Flags().IntVarP(&listLimit, "limit", "n", 25, "maximum number of requests to show")
}

// parseOption resolves a label (ignoring case and diacritics) or an option
// value to the option value.
func parseOption(opts []filter.Option[int], s string) (int, error) {
	s = strings.TrimSpace(s)
	for _, o := range opts {
		if filter.Fold(o.Label) == filter.Fold(s) {
			return o.Value, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil {
		for _, o := range opts {
			if o.Value == n {
				return n, nil
			}
		}
	}
	labels := make([]string, len(opts))
	for i, o := range opts {
		labels[i] = o.Label
	}
	return 0, fmt.Errorf("unknown value %q: want one of %s", s, strings.Join(labels, ", "))
}

// buildQuery turns the list flags into a request query
func buildQuery(status, requester, client, q string) (requests.Query, error) {
	query := requests.NewQuery(configMgr.GetPageSize())
	query.Q = q
	if status != "" {
		for _, s := range strings.Split(status, ",") {
			v, err := parseOption(requests.StatusOptions, s)
			if err != nil {
				return query, fmt.Errorf("--status: %w", err)
			}
			query.Status = append(query.Status, v)
		}
	}
	if requester != "" {
		v, err := parseOption(requests.RequesterOptions, requester)
		if err != nil {
			return query, fmt.Errorf("--requester: %w", err)
		}
		query.Requester = &v
	}
	if client != "" {
		v, err := parseOption(requests.ClientOptions, client)
		if err != nil {
			return query, fmt.Errorf("--client: %w", err)
		}
		query.Client = &v
	}
	return query, nil
}

func runListRequests(cmd *cobra.Command, args []string) error {
	query, err := buildQuery(listStatus, listRequester, listClient, listQuery)
	if err != nil {
		return err
	}

	rows := requests.Apply(requests.MockRows(), query)
	if len(rows) == 0 {
		fmt.Println("No requests found matching the criteria.")
		return nil
	}
	total := len(rows)
	if listLimit > 0 && len(rows) > listLimit {
		rows = rows[:listLimit]
	}

	termWidth := 120 // default
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		termWidth = w
	}
	printRequests(os.Stdout, rows, termWidth)

	fmt.Printf("\nShowing %d of %d requests\n", len(rows), total)
	return nil
}

// printRequests writes rows as an aligned table. The reason column takes
// whatever width is left.
func printRequests(w io.Writer, rows []requests.Request, termWidth int) {
	// NAME(11) DATE(10) STATUS(10) REQUESTER(9) PARTNER(7) CLIENT(8) CLIENT ID(9) + spacing(14)
	fixedWidth := 78
	reasonWidth := max(10, termWidth-fixedWidth)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDATE\tSTATUS\tREQUESTER\tPARTNER\tCLIENT\tCLIENT ID\tREASON")
	fmt.Fprintln(tw, "----\t----\t------\t---------\t-------\t------\t---------\t------")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Name,
			r.Date,
			requests.StatusLabel(r.Status),
			r.Requester,
			r.PartnerNo,
			r.Client,
			r.ClientID,
			ansi.Truncate(r.Reason, reasonWidth, "..."),
		)
	}
	tw.Flush()
}
