package console

import (
	"fmt"
	"io"
	"time"

	"github.com/jackramireznewacc/webp-converter/internal/core/domain"
)

// Reporter renders per-file progress and the batch summary to a writer,
// usually stdout.
type Reporter struct {
	out io.Writer
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

func (r *Reporter) Processing(item *domain.QueueItem) {
	if item.Width > 0 {
		fmt.Fprintf(r.out, "converting %s (%s)\n", item.Request.Source, item.Dimensions())
		return
	}

	fmt.Fprintf(r.out, "converting %s\n", item.Request.Source)
}

func (r *Reporter) Done(item *domain.QueueItem) {
	result := item.Result
	fmt.Fprintf(r.out, "  %s: %s, saved %.1f%%\n",
		result.OutputPath, domain.FormatBytes(result.BytesOut), result.Savings())
}

func (r *Reporter) Failed(item *domain.QueueItem) {
	fmt.Fprintf(r.out, "  %s: %v\n", item.Request.Source, item.Err)
}

func (r *Reporter) Summary(summary *domain.BatchSummary) {
	if summary.Queued == 0 {
		fmt.Fprintln(r.out, "nothing to convert")
		return
	}

	fmt.Fprintf(r.out, "converted %d of %d files in %s\n",
		summary.Converted, summary.Queued, summary.Elapsed.Round(time.Millisecond))

	if summary.Failed > 0 {
		fmt.Fprintf(r.out, "%d failed\n", summary.Failed)
	}

	if summary.Converted > 0 {
		fmt.Fprintf(r.out, "total %s -> %s, saved %.1f%%\n",
			domain.FormatBytes(summary.BytesIn), domain.FormatBytes(summary.BytesOut), summary.Savings())
	}
}
