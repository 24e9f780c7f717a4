package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func processCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "process ID",
		Short: "Start remote analysis of a stored document",
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

			if err := app.cache.StartProcessing(cmd.Context(), id); err != nil {
				return err
			}

			infoColor.Println("Document processing started")
			return nil
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status ID",
		Short: "Show a document's processing status",
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

			report, err := app.gw.ProcessingStatusFor(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Printf("Status:    %s\n", statusBadge(report.Status))
			processed := "no"
			if report.Processed {
				processed = "yes"
			}
			fmt.Printf("Processed: %s\n", processed)
			return nil
		},
	}
}

func insightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insights ID",
		Short: "Show the analysis output for a processed document",
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

			insights, err := app.gw.DocumentInsights(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Println("Summary")
			fmt.Printf("  %s\n\n", insights.Summary)

			fmt.Println("Key Points")
			for _, point := range insights.KeyPoints {
				fmt.Printf("  - %s\n", point)
			}
			fmt.Println()

			fmt.Println("Named Entities")
			for _, entity := range insights.Entities {
				fmt.Printf("  %s\n", entity)
			}
			fmt.Println()

			fmt.Printf("Sentiment:  %s\n", sentimentBadge(insights.Sentiment))
			fmt.Printf("Word count: %d\n", insights.WordCount)
			return nil
		},
	}
}
