package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter/bigcommerce"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/adapter/kafka"
	"github.com/niksmo/storefront/internal/adapter/shopify"
	"github.com/niksmo/storefront/internal/adapter/upstream"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

// Credential headers of the backends.
const (
	bigCommerceStorefrontHeader = "Authorization"
	bigCommerceAuthHeader       = "X-Auth-Token"
	shopifyStorefrontHeader     = "X-Shopify-Storefront-Access-Token"
)

type App struct {
	ctx        context.Context
	cfg        config.Config
	storefront port.Storefront
	producer   *kafka.ProductsProducer
	service    service.Service
	httpServer httphandler.HTTPServer
}

func New(context context.Context, config config.Config) *App {
	app := &App{ctx: context, cfg: config}

	app.initLogger()
	app.initOutboundAdapters()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	sf, err := NewStorefront(app.cfg)
	if err != nil {
		app.fallDown(op, err)
	}
	app.storefront = sf

	if !app.cfg.BrokerEnabled() {
		slog.Info("catalog publishing is disabled", "op", op)
		return
	}

	p, err := newProductsProducer(app.ctx, app.cfg)
	if err != nil {
		app.fallDown(op, err)
	}
	app.producer = &p
}

func (app *App) initCoreService() {
	if app.producer == nil {
		app.service = service.New(app.storefront, nil)
		return
	}
	app.service = service.New(app.storefront, app.producer)
}

func (app *App) initInboundAdapters() {
	var publisher port.CatalogPublisher
	if app.producer != nil {
		publisher = app.service
	}

	router := httphandler.NewRouter(app.service, publisher)
	handlerTimeout := app.cfg.UpstreamTimeout + app.cfg.UpstreamTimeout/2
	app.httpServer = httphandler.NewHTTPServer(
		app.cfg.HTTPServerAddr, router, handlerTimeout,
	)
}

// NewStorefront returns the facade of the configured backend.
func NewStorefront(cfg config.Config) (port.Storefront, error) {
	const op = "app.NewStorefront"

	common := []upstream.Opt{
		upstream.TimeoutOpt(cfg.UpstreamTimeout),
		upstream.RevalidateOpt(cfg.Cache.Revalidate),
	}

	switch cfg.Backend {
	case config.BackendBigCommerce:
		bc := cfg.BigCommerce
		gql, err := upstream.NewGraphQLClient(bc.GraphQLURL, append(common,
			upstream.AuthHeaderOpt(bigCommerceStorefrontHeader, "Bearer "+bc.StorefrontToken),
		)...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		rest, err := upstream.NewRESTClient(bc.RESTURL, append(common,
			upstream.AuthHeaderOpt(bigCommerceAuthHeader, bc.AuthToken),
		)...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return bigcommerce.New(gql, rest), nil

	case config.BackendShopify:
		gql, err := upstream.NewGraphQLClient(cfg.Shopify.GraphQLURL, append(common,
			upstream.AuthHeaderOpt(shopifyStorefrontHeader, cfg.Shopify.StorefrontToken),
		)...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return shopify.New(gql, cfg.Catalog.HiddenProductTag), nil
	}

	return nil, fmt.Errorf("%s: %w: %q", op, domain.ErrUnknownBackend, cfg.Backend)
}

func newProductsProducer(
	ctx context.Context, cfg config.Config,
) (kafka.ProductsProducer, error) {
	const op = "app.newProductsProducer"

	srClient, err := sr.NewClient(sr.URLs(cfg.Broker.SchemaRegistryURLs...))
	if err != nil {
		return kafka.ProductsProducer{}, fmt.Errorf("%s: %w", op, err)
	}

	topic := cfg.Broker.ProductsTopic
	productSerde, err := schema.NewSerdeProductV1(
		ctx,
		schema.SubjectOpt(topic+"-value"),
		schema.SchemaIdentifierOpt(schema.NewSchemaCreator(srClient)),
	)
	if err != nil {
		return kafka.ProductsProducer{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := kafka.NewProductsProducer(
		kafka.ProducerClientOpt(ctx, cfg.Broker.SeedBrokers, topic),
		kafka.ProducerEncoderOpt(productSerde),
	)
	if err != nil {
		return kafka.ProductsProducer{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running", "backend", app.cfg.Backend)
}

// PublishCatalog sends the first page of the catalog (up to 100 products
// in the default sort) to the products topic once.
func (app *App) PublishCatalog(ctx context.Context) (int, error) {
	return app.service.PublishCatalog(ctx, port.ProductsQuery{})
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	if app.producer != nil {
		app.producer.Close()
	}

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
