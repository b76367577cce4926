package kafka

import (
	"context"
	"errors"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var (
	ErrTooFewOpts = errors.New("too few options")
)

type ProducerOpt func(*producerOpts) error

type producerOpts struct {
	cl      ProducerClient
	encoder Encoder
}

// ProducerClientOpt connects to the brokers and fails if none is reachable.
func ProducerClientOpt(
	ctx context.Context, seedBrokers []string, topic string,
) ProducerOpt {
	return func(opts *producerOpts) error {
		cl, err := kgo.NewClient(
			kgo.SeedBrokers(seedBrokers...),
			kgo.DefaultProduceTopicAlways(),
			kgo.DefaultProduceTopic(topic),
			kgo.RequiredAcks(kgo.AllISRAcks()),
			kgo.AllowAutoTopicCreation(),
		)
		if err != nil {
			return err
		}

		if err := cl.Ping(ctx); err != nil {
			cl.Close()
			return err
		}
		opts.cl = cl
		return nil
	}
}

// ProducerWithClientOpt uses an already built client.
func ProducerWithClientOpt(cl ProducerClient) ProducerOpt {
	return func(opts *producerOpts) error {
		if cl == nil {
			return errors.New("client is nil")
		}
		opts.cl = cl
		return nil
	}
}

func ProducerEncoderOpt(encoder Encoder) ProducerOpt {
	return func(opts *producerOpts) error {
		if encoder == nil {
			return errors.New("encoder is nil")
		}
		opts.encoder = encoder
		return nil
	}
}

type ProducerClient interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

type Encoder interface {
	Encode(v any) ([]byte, error)
}

func productToSchemaV1(v domain.Product) (s schema.ProductV1) {
	s.ID = v.ID
	s.Handle = v.Handle
	s.Title = v.Title
	s.Description = v.Description
	s.Vendor = v.Vendor
	s.ProductType = v.ProductType
	s.AvailableForSale = v.AvailableForSale
	s.PriceRange.Min = moneyToSchemaV1(v.PriceRange.MinVariantPrice)
	s.PriceRange.Max = moneyToSchemaV1(v.PriceRange.MaxVariantPrice)
	s.Tags = v.Tags
	s.UpdatedAt = v.UpdatedAt

	if v.FeaturedImage != nil {
		s.FeaturedImage = &schema.ProductImageV1{
			URL:     v.FeaturedImage.URL,
			AltText: v.FeaturedImage.AltText,
		}
	}

	s.Images = make([]schema.ProductImageV1, len(v.Images))
	for i := range v.Images {
		s.Images[i].URL = v.Images[i].URL
		s.Images[i].AltText = v.Images[i].AltText
	}

	s.Variants = make([]schema.ProductVariantV1, len(v.Variants))
	for i, vr := range v.Variants {
		s.Variants[i] = schema.ProductVariantV1{
			ID:               vr.ID,
			Title:            vr.Title,
			AvailableForSale: vr.AvailableForSale,
			Price:            moneyToSchemaV1(vr.Price),
		}
		if vr.CompareAtPrice != nil {
			compareAt := moneyToSchemaV1(*vr.CompareAtPrice)
			s.Variants[i].CompareAtPrice = &compareAt
		}
	}
	return
}

func moneyToSchemaV1(m domain.Money) schema.MoneyV1 {
	return schema.MoneyV1{Amount: m.Amount, CurrencyCode: m.CurrencyCode}
}
