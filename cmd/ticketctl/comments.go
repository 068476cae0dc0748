package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCommentsCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comments",
		Short: "Comment on tickets",
	}
	cmd.AddCommand(newCommentsAddCmd(root))
	return cmd
}

func newCommentsAddCmd(root *rootOptions) *cobra.Command {
	var author string
	cmd := &cobra.Command{
		Use:   "add <ticket-id> <content>",
		Short: "Add a comment to a ticket",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "ticket id")
			if err != nil {
				return err
			}
			content := strings.TrimSpace(strings.Join(args[1:], " "))
			if content == "" {
				return errors.New("comment content is empty")
			}
			client, err := root.client()
			if err != nil {
				return err
			}
			comment, err := client.AddComment(cmd.Context(), id, content, author)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "comment #%d added to ticket #%d\n", comment.ID, id)
			return nil
		},
	}
	cmd.Flags().StringVar(&author, "author", "Anonymous", "author display name")
	return cmd
}
