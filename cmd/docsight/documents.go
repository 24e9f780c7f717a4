package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docsight/docsight/pkg/format"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all documents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			if _, err := app.requireAuth(cmd.Context()); err != nil {
				return err
			}

			if err := app.cache.Load(cmd.Context()); err != nil {
				return err
			}

			printDocumentTable(app.cache.Documents())
			return nil
		},
	}
}

func recentCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List the most recently added documents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			if _, err := app.requireAuth(cmd.Context()); err != nil {
				return err
			}

			if err := app.cache.Load(cmd.Context()); err != nil {
				return err
			}

			printDocumentTable(app.cache.Recent(limit))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 5, "number of documents to show")
	return cmd
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate document counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			if _, err := app.requireAuth(cmd.Context()); err != nil {
				return err
			}

			if err := app.cache.Load(cmd.Context()); err != nil {
				return err
			}

			stats := app.cache.Stats()
			fmt.Printf("Total:     %d\n", stats.Total)
			fmt.Printf("Processed: %d\n", stats.Processed)
			fmt.Printf("Pending:   %d\n", stats.Pending)
			return nil
		},
	}
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one document record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			id, err := parseDocumentID(args[0])
			if err != nil {
				return err
			}

			if _, err := app.requireAuth(cmd.Context()); err != nil {
				return err
			}

			doc, err := app.gw.GetDocument(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Printf("ID:           %d\n", doc.ID)
			fmt.Printf("Name:         %s\n", doc.OriginalFilename)
			fmt.Printf("Media type:   %s\n", doc.ContentType)
			fmt.Printf("Size:         %s\n", format.FileSize(doc.FileSize))
			fmt.Printf("Status:       %s\n", statusBadge(doc.ProcessingStatus))
			fmt.Printf("Created:      %s\n", format.Timestamp(doc.CreatedAt))
			if doc.UpdatedAt != nil {
				fmt.Printf("Updated:      %s\n", format.Timestamp(*doc.UpdatedAt))
			}
			return nil
		},
	}
}

func deleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			id, err := parseDocumentID(args[0])
			if err != nil {
				return err
			}

			if _, err := app.requireAuth(cmd.Context()); err != nil {
				return err
			}

			if !yes && !confirm(fmt.Sprintf("Delete document %d?", id)) {
				fmt.Println("Aborted")
				return nil
			}

			if err := app.cache.Delete(cmd.Context(), id); err != nil {
				return err
			}

			successColor.Println("Document deleted successfully")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}

func parseDocumentID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid document id %q", arg)
	}
	return id, nil
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
