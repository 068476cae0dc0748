package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spec-kit/ticket-dashboard/internal/domain"
	"github.com/spec-kit/ticket-dashboard/internal/views"
)

func newTicketsCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tickets",
		Aliases: []string{"ticket", "t"},
		Short:   "List and manage tickets",
	}
	cmd.AddCommand(
		newTicketsListCmd(root),
		newTicketsShowCmd(root),
		newTicketsCreateCmd(root),
		newTicketsStatusCmd(root),
		newTicketsDeleteCmd(root),
	)
	return cmd
}

func newTicketsListCmd(root *rootOptions) *cobra.Command {
	var (
		filters    domain.TicketFilters
		status     string
		priority   string
		assignedTo int64
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tickets matching the filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := root.client()
			if err != nil {
				return err
			}
			filters.Status = domain.TicketStatus(status)
			filters.Priority = domain.TicketPriority(priority)
			if assignedTo > 0 {
				filters.AssignedTo = &assignedTo
			}
			tickets, err := client.FetchTickets(cmd.Context(), filters)
			if err != nil {
				return err
			}
			sort.Slice(tickets, func(i, j int) bool { return tickets[i].ID < tickets[j].ID })

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-6s %-8s %-9s %s\n", "ID", "STATUS", "PRIORITY", "TITLE")
			for _, t := range tickets {
				fmt.Fprintf(out, "%-6d %-8s %-9s %s\n", t.ID, t.Status, t.Priority, t.Title)
			}
			fmt.Fprintf(out, "%d ticket(s) found\n", len(tickets))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&status, "status", "", "open, pending or closed")
	f.StringVar(&priority, "priority", "", "low, medium, high or critical")
	f.Int64Var(&assignedTo, "assigned-to", 0, "assignee user id")
	f.StringVar(&filters.Category, "category", "", "category name")
	f.StringVar(&filters.Search, "search", "", "free text search")
	return cmd
}

func newTicketsShowCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a ticket with its comments and attachments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "ticket id")
			if err != nil {
				return err
			}
			client, err := root.client()
			if err != nil {
				return err
			}
			ticket, err := client.FetchTicketByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, ticket)
		},
	}
}

func newTicketsCreateCmd(root *rootOptions) *cobra.Command {
	var form views.NewTicketForm
	var assignedTo int64
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a ticket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if assignedTo > 0 {
				form.AssignedTo = &assignedTo
			}
			input, fieldErrs := form.Validate()
			if fieldErrs != nil {
				return fmt.Errorf("invalid ticket: %s", describeFieldErrors(fieldErrs))
			}
			client, err := root.client()
			if err != nil {
				return err
			}
			ticket, err := client.CreateTicket(cmd.Context(), input)
			if err != nil {
				return err
			}
			return printJSON(cmd, ticket)
		},
	}
	f := cmd.Flags()
	f.StringVar(&form.Title, "title", "", "ticket title")
	f.StringVar(&form.Description, "description", "", "ticket description")
	f.StringVar(&form.Priority, "priority", string(domain.TicketPriorityMedium), "low, medium, high, critical or urgent")
	f.StringVar(&form.Category, "category", "", "category name")
	f.StringVar(&form.Assignee, "assignee", "", "assignee display name")
	f.Int64Var(&assignedTo, "assigned-to", 0, "assignee user id")
	f.Int64Var(&form.CreatedBy, "created-by", 1, "author user id")
	return cmd
}

func newTicketsStatusCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <open|pending|closed>",
		Short: "Change the status of a ticket",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "ticket id")
			if err != nil {
				return err
			}
			status := domain.TicketStatus(strings.ToLower(args[1]))
			if !status.Valid() {
				return fmt.Errorf("invalid status %q", args[1])
			}
			client, err := root.client()
			if err != nil {
				return err
			}
			ticket, err := client.UpdateTicketStatus(cmd.Context(), id, status)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ticket #%d is now %s\n", ticket.ID, ticket.Status)
			return nil
		},
	}
}

func newTicketsDeleteCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "ticket id")
			if err != nil {
				return err
			}
			client, err := root.client()
			if err != nil {
				return err
			}
			if err := client.DeleteTicket(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ticket #%d deleted\n", id)
			return nil
		},
	}
}

func describeFieldErrors(errs map[string]any) string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%v", errs[k]))
	}
	return strings.Join(parts, ", ")
}
