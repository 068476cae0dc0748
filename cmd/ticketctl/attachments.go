package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/spec-kit/ticket-dashboard/internal/views"
)

func newAttachmentsCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "attachments",
		Aliases: []string{"files"},
		Short:   "Upload, download and delete ticket attachments",
	}
	cmd.AddCommand(
		newAttachmentsUploadCmd(root),
		newAttachmentsDownloadCmd(root),
		newAttachmentsDeleteCmd(root),
	)
	return cmd
}

func newAttachmentsUploadCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <ticket-id> <file>",
		Short: "Attach a file to a ticket",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "ticket id")
			if err != nil {
				return err
			}
			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()

			client, err := root.client()
			if err != nil {
				return err
			}
			a, err := client.UploadAttachment(cmd.Context(), id, filepath.Base(args[1]), f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "attachment #%d uploaded (%s, %s)\n", a.ID, a.OriginalName, views.HumanSize(a.Size))
			return nil
		},
	}
}

func newAttachmentsDownloadCmd(root *rootOptions) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "download <attachment-id>",
		Short: "Download an attachment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "attachment id")
			if err != nil {
				return err
			}
			client, err := root.client()
			if err != nil {
				return err
			}
			d, err := client.DownloadAttachment(cmd.Context(), id)
			if err != nil {
				return err
			}
			if output == "-" {
				_, err = cmd.OutOrStdout().Write(d.Data)
				return err
			}
			path := output
			if path == "" {
				path = filepath.Base(d.Filename)
				if d.Filename == "" {
					path = fmt.Sprintf("attachment-%d", id)
				}
			}
			if err := os.WriteFile(path, d.Data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%s)\n", path, views.HumanSize(int64(len(d.Data))))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "target path, - for stdout")
	return cmd
}

func newAttachmentsDeleteCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <attachment-id>",
		Short: "Delete an attachment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "attachment id")
			if err != nil {
				return err
			}
			client, err := root.client()
			if err != nil {
				return err
			}
			if err := client.DeleteAttachment(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "attachment #%d deleted\n", id)
			return nil
		},
	}
}
