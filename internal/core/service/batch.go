package service

import (
	"context"
	"time"

	"github.com/jackramireznewacc/webp-converter/internal/core/domain"
	"github.com/jackramireznewacc/webp-converter/internal/core/port"

	"github.com/rs/zerolog/log"
)

// Batch holds a queue of conversion requests and walks it sequentially.
// Items fail independently; one broken file never aborts the rest.
type Batch struct {
	converter port.ImageConverter
	prober    port.ImageProber
	reporter  port.Reporter
	queue     []*domain.QueueItem
}

func NewBatch(converter port.ImageConverter, prober port.ImageProber, reporter port.Reporter) *Batch {
	return &Batch{
		converter: converter,
		prober:    prober,
		reporter:  reporter,
	}
}

// Add queues a request. Dimensions are probed for display; a file that cannot
// be probed stays queued and reports its error during conversion. Requests
// for an already queued source are dropped.
func (b *Batch) Add(ctx context.Context, request domain.ConversionRequest) {
	for _, item := range b.queue {
		if item.Request.Source == request.Source {
			log.Debug().Str("source", request.Source).Msg("source already queued")
			return
		}
	}

	item := &domain.QueueItem{Request: request, Status: domain.Pending}

	info, err := b.prober.Probe(ctx, request.Source)
	if err != nil {
		log.Debug().Err(err).Str("source", request.Source).Msg("could not probe queued file")
	} else {
		item.Width = info.Width
		item.Height = info.Height
	}

	b.queue = append(b.queue, item)
}

func (b *Batch) Items() []*domain.QueueItem {
	return b.queue
}

// AssignNames sets generated output names on the queued items in order.
func (b *Batch) AssignNames(names []string) {
	for i, item := range b.queue {
		if i >= len(names) {
			return
		}
		item.Request.OutputName = names[i]
	}
}

// Run converts the queue one item at a time. Cancellation is honored between
// files; the file currently converting finishes first. A summary is reported
// even when the run stops early.
func (b *Batch) Run(ctx context.Context) *domain.BatchSummary {
	l := log.With().Int("queued", len(b.queue)).Logger()
	l.Info().Msg("starting conversion run")

	start := time.Now()
	summary := &domain.BatchSummary{Queued: len(b.queue)}

	for _, item := range b.queue {
		if ctx.Err() != nil {
			l.Info().Msg("conversion run cancelled")
			break
		}

		item.Status = domain.Processing
		b.reporter.Processing(item)

		result, err := b.converter.Convert(ctx, &item.Request)
		if err != nil {
			item.Status = domain.Failed
			item.Err = err
			summary.Failed++

			log.Debug().Err(err).Str("source", item.Request.Source).Msg("conversion failed")
			b.reporter.Failed(item)
			continue
		}

		item.Status = domain.Done
		item.Result = result
		summary.Converted++
		summary.BytesIn += result.BytesIn
		summary.BytesOut += result.BytesOut

		b.reporter.Done(item)
	}

	summary.Elapsed = time.Since(start)
	b.reporter.Summary(summary)

	l.Info().
		Int("converted", summary.Converted).
		Int("failed", summary.Failed).
		Msg("conversion run finished")

	return summary
}
