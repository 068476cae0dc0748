package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show ticket counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := root.client()
			if err != nil {
				return err
			}
			stats, err := client.FetchStats(cmd.Context())
			if err != nil {
				return err
			}
			s := stats.Normalize()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "open:    %d\n", s.OpenTickets)
			fmt.Fprintf(out, "pending: %d\n", s.InProgressTickets)
			fmt.Fprintf(out, "closed:  %d\n", s.ClosedTickets)
			fmt.Fprintf(out, "total:   %d\n", s.TotalTickets)
			return nil
		},
	}
}

func newUsersCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := root.client()
			if err != nil {
				return err
			}
			users, err := client.FetchUsers(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, u := range users {
				fmt.Fprintf(out, "%-4d %-20s %-6s %s\n", u.ID, u.Name, u.Role, u.Email)
			}
			return nil
		},
	}
}
