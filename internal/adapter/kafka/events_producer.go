package kafka

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/guicpereira/LojaVOKA/internal/core/domain"
	"github.com/guicpereira/LojaVOKA/internal/core/port"
	"github.com/guicpereira/LojaVOKA/pkg/schema"
)

var _ port.InteractionEventsProducer = (*EventsProducer)(nil)

// EventsProducer publishes storefront interaction events, keyed by
// product id so per-product ordering survives partitioning.
type EventsProducer struct {
	cl      ProducerClient
	encoder Encoder
}

func NewEventsProducer(opts ...ProducerOpt) (EventsProducer, error) {
	const op = "NewEventsProducer"

	if len(opts) != 2 {
		panic(fmt.Errorf("%s: %w", op, ErrTooFewOpts)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return EventsProducer{}, fmt.Errorf("%s: %w", op, err)
		}
	}
	return EventsProducer{options.cl, options.encoder}, nil
}

func (p EventsProducer) Close() {
	const op = "EventsProducer.Close"
	log := slog.With("op", op)
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p EventsProducer) ProduceEvent(
	ctx context.Context, evt domain.InteractionEvent,
) error {
	const op = "EventsProducer.ProduceEvent"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	r, err := p.createRecord(evt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res := p.cl.ProduceSync(ctx, r)
	if err := res.FirstErr(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (p EventsProducer) createRecord(
	evt domain.InteractionEvent,
) (*kgo.Record, error) {
	const op = "EventsProducer.createRecord"

	s := p.toSchema(evt)
	v, err := p.encoder.Encode(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &kgo.Record{Key: []byte(s.ProductID), Value: v}, nil
}

func (p EventsProducer) toSchema(
	evt domain.InteractionEvent,
) (s schema.InteractionEventV1) {
	s.Kind = string(evt.Kind)
	s.ProductID = evt.ProductID
	s.ProductName = evt.ProductName
	s.Category = evt.Category
	s.Likes = evt.Likes
	s.OccurredAt = evt.OccurredAt.UnixMilli()
	return s
}
