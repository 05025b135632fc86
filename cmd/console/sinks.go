package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goliatone/go-console/core"
)

// stdoutProgressSink renders upload tracker updates as log lines and
// signals when the task reaches a terminal status.
type stdoutProgressSink struct {
	out  io.Writer
	done chan struct{}
}

func newStdoutProgressSink(out io.Writer) *stdoutProgressSink {
	return &stdoutProgressSink{out: out, done: make(chan struct{})}
}

func (s *stdoutProgressSink) TaskAccepted(taskID string) {
	fmt.Fprintf(s.out, "upload accepted, task id %s\n", taskID)
}

func (s *stdoutProgressSink) Progress(task core.UploadTask) {
	line := fmt.Sprintf("%s %d/%d (%.1f%%)", task.Status, task.Processed, task.Total, task.Percent)
	if task.Message != "" {
		line += " " + task.Message
	}
	fmt.Fprintln(s.out, line)
	if task.Status.Terminal() {
		select {
		case <-s.done:
		default:
			close(s.done)
		}
	}
}

func (s *stdoutProgressSink) ProgressMessage(message string) {
	fmt.Fprintln(s.out, message)
}

func (s *stdoutProgressSink) SubmitFailed(message string) {
	fmt.Fprintln(s.out, message)
}

// Done is closed once a terminal status was rendered.
func (s *stdoutProgressSink) Done() <-chan struct{} {
	return s.done
}

type stdoutAlertSink struct {
	out io.Writer
}

func (s stdoutAlertSink) Alert(message string, severity core.AlertSeverity) {
	fmt.Fprintf(s.out, "[%s] %s\n", severity, message)
}

func printProducts(out io.Writer, page core.Page[core.Product]) {
	if len(page.Items) == 0 {
		fmt.Fprintln(out, "No products found.")
		return
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSKU\tNAME\tPRICE\tACTIVE")
	for _, product := range page.Items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n",
			product.ID,
			product.SKU,
			core.StringOrEmpty(product.Name),
			core.FormatOptionalPrice(product.Price),
			product.Active,
		)
	}
	w.Flush()
	fmt.Fprintf(out, "page %d/%d (%d total)\n", page.Page, page.TotalPages, page.Total)
}

func printWebhooks(out io.Writer, webhooks []core.Webhook) {
	if len(webhooks) == 0 {
		fmt.Fprintln(out, "No webhooks found.")
		return
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tURL\tEVENT\tACTIVE")
	for _, webhook := range webhooks {
		fmt.Fprintf(w, "%d\t%s\t%s\t%t\n", webhook.ID, webhook.URL, webhook.EventType, webhook.Active)
	}
	w.Flush()
}

func printTask(out io.Writer, task core.UploadTask) {
	fmt.Fprintf(out, "task %s: %s %d/%d (%.1f%%)\n", task.TaskID, task.Status, task.Processed, task.Total, task.Percent)
	if task.Message != "" {
		fmt.Fprintln(out, task.Message)
	}
}
