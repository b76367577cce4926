package kafka

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.ProductsProducer = (*ProductsProducer)(nil)

// A ProductsProducer publishes unified products keyed by handle.
type ProductsProducer struct {
	cl      ProducerClient
	encoder Encoder
}

func NewProductsProducer(
	opts ...ProducerOpt,
) (ProductsProducer, error) {
	const op = "NewProductsProducer"

	if len(opts) != 2 {
		return ProductsProducer{}, fmt.Errorf("%s: %w", op, ErrTooFewOpts)
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return ProductsProducer{}, fmt.Errorf("%s: %w", op, err)
		}
	}
	return ProductsProducer{options.cl, options.encoder}, nil
}

func (p ProductsProducer) Close() {
	const op = "ProductsProducer.Close"
	log := slog.With("op", op)
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p ProductsProducer) ProduceProducts(
	ctx context.Context, ps []domain.Product,
) error {
	const op = "ProductsProducer.ProduceProducts"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rs, err := p.createRecords(ps)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := p.produce(ctx, rs); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	slog.Debug("products produced", "op", op, "nRecords", len(rs))
	return nil
}

func (p ProductsProducer) createRecords(
	products []domain.Product,
) (rs []*kgo.Record, err error) {
	const op = "ProductsProducer.createRecords"

	rs = make([]*kgo.Record, 0, len(products))
	for _, product := range products {
		s := productToSchemaV1(product)
		v, err := p.encoder.Encode(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		r := &kgo.Record{Key: []byte(s.Handle), Value: v}
		rs = append(rs, r)
	}

	return rs, nil
}

func (p ProductsProducer) produce(
	ctx context.Context, rs []*kgo.Record,
) error {
	const op = "ProductsProducer.produce"
	res := p.cl.ProduceSync(ctx, rs...)
	if err := res.FirstErr(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
