package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docsight/docsight/internal/uploads"
)

func uploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload FILE...",
		Short: "Queue files for upload and trigger their processing",
		Long: "Validates each file against the configured media-type and size policy, " +
			"queues the ones that pass, transfers them one at a time in submission order, " +
			"and fires a detached processing trigger for each successful transfer.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			if _, err := app.requireAuth(cmd.Context()); err != nil {
				return err
			}

			notifier := consoleNotifier{}

			var candidates []uploads.Candidate
			for _, path := range args {
				candidate, err := uploads.ReadCandidate(path)
				if err != nil {
					notifier.Notify(uploads.NotifyError, err.Error())
					continue
				}
				candidates = append(candidates, candidate)
			}

			queue := uploads.NewQueue(consoleObserver{})
			validator := uploads.NewValidator(
				app.cfg.Uploads.MaxUploadSizeBytes(),
				app.cfg.Uploads.AllowedTypes,
				notifier,
			)
			orchestrator := uploads.NewOrchestrator(queue, validator, app.gw, app.logger, notifier)

			accepted := orchestrator.Submit(candidates)
			if len(accepted) == 0 {
				return fmt.Errorf("no files accepted for upload")
			}

			orchestrator.ProcessQueue(cmd.Context())
			orchestrator.WaitTriggers()

			failed := 0
			for _, item := range queue.Items() {
				if item.Status == uploads.StatusFailed {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d uploads failed", failed, len(accepted))
			}

			return nil
		},
	}
}
