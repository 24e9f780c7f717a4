package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/docsight/docsight/internal/gateway"
	"github.com/docsight/docsight/internal/uploads"
	"github.com/docsight/docsight/pkg/format"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	warningColor = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
)

// consoleNotifier renders user-visible notifications to stderr so stdout
// stays reserved for command output.
type consoleNotifier struct{}

func (consoleNotifier) Notify(level uploads.NotifyLevel, message string) {
	c := infoColor
	switch level {
	case uploads.NotifySuccess:
		c = successColor
	case uploads.NotifyWarning:
		c = warningColor
	case uploads.NotifyError:
		c = errorColor
	}
	c.Fprintln(os.Stderr, message)
}

// consoleObserver renders the upload queue as items appear and change state.
type consoleObserver struct{}

func (consoleObserver) ItemEnqueued(item uploads.Item) {
	pages := ""
	if item.PageCount != nil {
		pages = fmt.Sprintf(", %d pages", *item.PageCount)
	}
	fmt.Printf("  %-12s %s (%s%s)\n", item.Status, item.Filename, format.FileSize(item.Size), pages)
}

func (consoleObserver) ItemUpdated(item uploads.Item) {
	line := fmt.Sprintf("  %-12s %s [%d%%]", item.Status, item.Filename, item.Progress)
	switch item.Status {
	case uploads.StatusCompleted:
		successColor.Println(line)
	case uploads.StatusFailed:
		errorColor.Printf("%s %s\n", line, item.Error)
	default:
		fmt.Println(line)
	}
}

func (consoleObserver) QueueCleared() {
	fmt.Println("upload queue cleared")
}

// statusBadge colors a remote processing status for list output.
func statusBadge(status gateway.ProcessingStatus) string {
	switch status {
	case gateway.ProcessingCompleted:
		return successColor.Sprint(string(status))
	case gateway.ProcessingFailed:
		return errorColor.Sprint(string(status))
	case gateway.ProcessingInProgress:
		return infoColor.Sprint(string(status))
	default:
		return string(status)
	}
}

// sentimentBadge colors an insight sentiment.
func sentimentBadge(s gateway.Sentiment) string {
	switch s {
	case gateway.SentimentPositive:
		return successColor.Sprint(string(s))
	case gateway.SentimentNegative:
		return errorColor.Sprint(string(s))
	default:
		return string(s)
	}
}

// printDocumentTable renders document records in a fixed column layout.
func printDocumentTable(docs []gateway.Document) {
	if len(docs) == 0 {
		fmt.Println("No documents yet. Upload your first document to get started.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSIZE\tSTATUS\tPROCESSED\tCREATED")
	for _, doc := range docs {
		processed := "no"
		if doc.Processed {
			processed = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			doc.ID,
			doc.OriginalFilename,
			format.FileSize(doc.FileSize),
			statusBadge(doc.ProcessingStatus),
			processed,
			format.Timestamp(doc.CreatedAt),
		)
	}
	w.Flush()
}
