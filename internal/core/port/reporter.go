package port

import (
	"github.com/jackramireznewacc/webp-converter/internal/core/domain"
)

type Reporter interface {
	// Processing announces that a queue item has started converting.
	Processing(item *domain.QueueItem)
	// Done reports a successfully converted item and its result.
	Done(item *domain.QueueItem)
	// Failed reports a failed item together with its error.
	Failed(item *domain.QueueItem)
	// Summary reports the totals after the whole queue has been walked.
	Summary(summary *domain.BatchSummary)
}
