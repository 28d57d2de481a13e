package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"catalog/internal/config"
	"catalog/internal/entity"
	"catalog/internal/repository"
	"catalog/internal/service"
	httpt "catalog/internal/transport/http"
	"catalog/pkg/logger"
	"catalog/pkg/metric"
	"catalog/pkg/store"

	"golang.org/x/sync/errgroup"
)

const _itemStoreName = "items"

func Run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	eg, ctx := errgroup.WithContext(ctx)

	metrics := initMetrics(eg, &cfg.Metrics, log)

	itemService := initItemService(log, metrics)

	if err := initHTTPServer(ctx, eg, cfg, itemService, log, metrics); err != nil {
		return err
	}

	return waitForShutdown(eg)
}

func initMetrics(
	eg *errgroup.Group,
	cfg *config.Metrics,
	log logger.Logger,
) metric.Factory {
	metrics := metric.NewFactory()

	hostPort := net.JoinHostPort(cfg.Host, cfg.Port)
	metricsServer := &http.Server{
		Addr:              hostPort,
		Handler:           metrics.Handler(),
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	eg.Go(func() error {
		log.Infow("starting metrics server", "port", cfg.Port)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("app.initMetrics: %w", err)
		}
		return nil
	})

	return metrics
}

func initItemService(log logger.Logger, metrics metric.Factory) *service.ItemService {
	itemStore := store.NewOrdered[int64, *entity.Item](
		_itemStoreName,
		log.With("component", "item store"),
		metrics.Store(),
	)
	itemRepo := repository.NewItemRepository(itemStore)

	return service.NewItemService(
		itemRepo,
		log.With("component", "item service"),
		metrics.Registry(),
	)
}

func initHTTPServer(
	ctx context.Context,
	eg *errgroup.Group,
	cfg *config.Config,
	itemService *service.ItemService,
	log logger.Logger,
	metrics metric.Factory,
) error {
	httpServer := httpt.NewHTTPServer(
		httpt.NewItemHandler(itemService, &cfg.CORS, log, metrics.HTTP()),
		&cfg.HTTP,
		log.With("component", "http server"),
	)

	eg.Go(func() error {
		return httpServer.Start(ctx)
	})
	return nil
}

func waitForShutdown(eg *errgroup.Group) error {
	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("app.waitForShutdown: application failed: %w", err)
	}
	return nil
}
