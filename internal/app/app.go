package app

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/twmb/franz-go/pkg/sr"

	"github.com/guicpereira/LojaVOKA/config"
	"github.com/guicpereira/LojaVOKA/internal/adapter"
	"github.com/guicpereira/LojaVOKA/internal/adapter/httphandler"
	"github.com/guicpereira/LojaVOKA/internal/adapter/kafka"
	"github.com/guicpereira/LojaVOKA/internal/adapter/likestore"
	"github.com/guicpereira/LojaVOKA/internal/adapter/sheety"
	"github.com/guicpereira/LojaVOKA/internal/core/port"
	"github.com/guicpereira/LojaVOKA/internal/core/service"
	"github.com/guicpereira/LojaVOKA/pkg/schema"
)

type outbound struct {
	catalog *sheety.Client
	likes   *likestore.LikeStore
	events  port.InteractionEventsProducer
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	outbound   outbound
	service    *service.CatalogService
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

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

	app.outbound.catalog = sheety.New(
		app.cfg.Store.BaseURL, app.cfg.Store.RequestTimeout,
	)

	likeStore, err := likestore.New(app.cfg.Likes.DBPath)
	if err != nil {
		app.fallDown(op, err)
	}
	app.outbound.likes = likeStore

	// Broker wiring is optional: without seed brokers the storefront
	// runs with interaction telemetry disabled.
	if len(app.cfg.Broker.SeedBrokers) == 0 {
		slog.Info("no seed brokers configured, telemetry disabled")
		return
	}
	app.outbound.events = app.createEventsProducer()
}

func (app *App) createEventsProducer() port.InteractionEventsProducer {
	const op = "App.createEventsProducer"

	ctx := app.ctx
	topic := app.cfg.Broker.InteractionsTopic

	srClient, err := sr.NewClient(sr.URLs(app.cfg.Broker.SchemaRegistryURLs...))
	if err != nil {
		app.fallDown(op, err)
	}

	eventSerde, err := schema.NewSerdeInteractionEventV1(
		ctx,
		schema.SubjectOpt(topic+"-value"),
		schema.SchemaIdentifierOpt(schema.NewSchemaCreater(srClient)),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	var tlsCfg *tls.Config
	if app.cfg.Broker.TLS.Enabled() {
		tlsCfg = adapter.MakeTLSConfig(
			app.cfg.Broker.TLS.CA,
			app.cfg.Broker.TLS.Cert,
			app.cfg.Broker.TLS.Key,
		)
	}

	producer, err := kafka.NewEventsProducer(
		kafka.ProducerClientOpt(ctx, app.cfg.Broker.SeedBrokers, topic, tlsCfg),
		kafka.ProducerEncoderOpt(eventSerde),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	return producer
}

func (app *App) initCoreService() {
	s := service.New(
		app.outbound.catalog,
		app.outbound.likes,
		app.outbound.events,
	)
	s.RestoreLikes()
	app.service = s
}

func (app *App) initInboundAdapters() {
	addr := app.cfg.HTTPServerAddr
	mux := http.NewServeMux()

	httphandler.RegisterStorefront(
		mux, app.service, app.service, app.service, app.cfg.ImageBase,
	)

	gate := httphandler.NewAdminGate(app.cfg.Admin.Password)
	httphandler.RegisterAdmin(mux, app.service, gate)

	handler := httphandler.AllowJSON(mux)
	httpServer := httphandler.NewHTTPServer(addr, handler)
	app.httpServer = httpServer
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)
	go app.service.Load(app.ctx)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	if app.outbound.events != nil {
		app.outbound.events.Close()
	}
	if err := app.outbound.likes.Close(); err != nil {
		slog.Error("failed to close like store", "err", err)
	}

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
