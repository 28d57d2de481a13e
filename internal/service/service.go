package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"catalog/internal/entity"
	"catalog/pkg/logger"
	"catalog/pkg/metric"
)

const (
	_slowOperationThreshold = 50 * time.Millisecond

	DefaultListLimit = 10
)

type (
	ItemRepository interface {
		Create(ctx context.Context, draft *entity.ItemDraft) (*entity.Item, error)
		List(ctx context.Context, skip, limit int) ([]*entity.Item, error)
		GetByID(ctx context.Context, id int64) (*entity.Item, error)
		Update(ctx context.Context, id int64, patch *entity.ItemPatch) (*entity.Item, error)
		Delete(ctx context.Context, id int64) (*entity.Item, error)
	}

	ItemService struct {
		itemRepo ItemRepository
		logger   logger.Logger
		metrics  metric.Registry
	}
)

func NewItemService(
	itemRepo ItemRepository,
	logger logger.Logger,
	metrics metric.Registry,
) *ItemService {
	return &ItemService{
		itemRepo: itemRepo,
		logger:   logger,
		metrics:  metrics,
	}
}

func (is *ItemService) CreateItem(
	ctx context.Context,
	draft *entity.ItemDraft,
) (*entity.Item, error) {
	const op = "service.CreateItem"
	log := is.logger.Ctx(ctx)

	if err := is.validateDraft(draft); err != nil {
		log.LogAttrs(ctx, logger.ErrorLevel, "item validation failed",
			logger.String("op", op),
			logger.Any("error", err),
			logger.String("name", draft.Name),
		)
		is.metrics.IncrementFailures(op)
		return nil, fmt.Errorf("%s: validate draft: %w", op, err)
	}

	defer is.observe(ctx, op, time.Now())

	item, err := is.itemRepo.Create(ctx, draft)
	if err != nil {
		log.LogAttrs(ctx, logger.ErrorLevel, "item creation failed",
			logger.String("op", op),
			logger.Any("error", err),
		)
		is.metrics.IncrementFailures(op)
		return nil, fmt.Errorf("%s: create item: %w", op, err)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "item created",
		logger.String("op", op),
		logger.Int64("item_id", item.ID),
		logger.String("name", item.Name),
	)

	return item, nil
}

func (is *ItemService) ListItems(
	ctx context.Context,
	skip, limit int,
) ([]*entity.Item, error) {
	const op = "service.ListItems"
	log := is.logger.Ctx(ctx)

	defer is.observe(ctx, op, time.Now())

	items, err := is.itemRepo.List(ctx, skip, limit)
	if err != nil {
		log.LogAttrs(ctx, logger.ErrorLevel, "item listing failed",
			logger.String("op", op),
			logger.Any("error", err),
		)
		is.metrics.IncrementFailures(op)
		return nil, fmt.Errorf("%s: list items: %w", op, err)
	}

	log.LogAttrs(ctx, logger.DebugLevel, "items listed",
		logger.String("op", op),
		logger.Int("skip", skip),
		logger.Int("limit", limit),
		logger.Int("count", len(items)),
	)

	return items, nil
}

func (is *ItemService) GetItem(ctx context.Context, id int64) (*entity.Item, error) {
	const op = "service.GetItem"
	log := is.logger.Ctx(ctx)

	defer is.observe(ctx, op, time.Now())

	item, err := is.itemRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrDataNotFound) {
			log.LogAttrs(ctx, logger.WarnLevel, "item not found",
				logger.String("op", op),
				logger.Int64("item_id", id),
			)
			is.metrics.IncrementNotFound(op)
		} else {
			is.metrics.IncrementFailures(op)
		}
		return nil, fmt.Errorf("%s: get item: %w", op, err)
	}

	return item, nil
}

// UpdateItem applies the present fields of the patch to the stored
// record. An empty patch is a no-op returning the unchanged record.
func (is *ItemService) UpdateItem(
	ctx context.Context,
	id int64,
	patch *entity.ItemPatch,
) (*entity.Item, error) {
	const op = "service.UpdateItem"
	log := is.logger.Ctx(ctx)

	defer is.observe(ctx, op, time.Now())

	if patch.IsEmpty() {
		log.LogAttrs(ctx, logger.DebugLevel, "empty patch, returning current record",
			logger.String("op", op),
			logger.Int64("item_id", id),
		)
	}

	item, err := is.itemRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, entity.ErrDataNotFound) {
			log.LogAttrs(ctx, logger.WarnLevel, "item not found",
				logger.String("op", op),
				logger.Int64("item_id", id),
			)
			is.metrics.IncrementNotFound(op)
		} else {
			is.metrics.IncrementFailures(op)
		}
		return nil, fmt.Errorf("%s: update item: %w", op, err)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "item updated",
		logger.String("op", op),
		logger.Int64("item_id", item.ID),
	)

	return item, nil
}

func (is *ItemService) DeleteItem(ctx context.Context, id int64) (*entity.Item, error) {
	const op = "service.DeleteItem"
	log := is.logger.Ctx(ctx)

	defer is.observe(ctx, op, time.Now())

	item, err := is.itemRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrDataNotFound) {
			log.LogAttrs(ctx, logger.WarnLevel, "item not found",
				logger.String("op", op),
				logger.Int64("item_id", id),
			)
			is.metrics.IncrementNotFound(op)
		} else {
			is.metrics.IncrementFailures(op)
		}
		return nil, fmt.Errorf("%s: delete item: %w", op, err)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "item deleted",
		logger.String("op", op),
		logger.Int64("item_id", item.ID),
	)

	return item, nil
}

func (is *ItemService) observe(ctx context.Context, op string, startTime time.Time) {
	duration := time.Since(startTime)
	is.metrics.ObserveDuration(op, duration)

	if duration > _slowOperationThreshold {
		is.logger.LogAttrs(ctx, logger.WarnLevel, "slow service operation",
			logger.String("op", op),
			logger.String("duration", duration.String()),
		)
	}
}

func (is *ItemService) validateDraft(draft *entity.ItemDraft) error {
	if strings.TrimSpace(draft.Name) == "" {
		return entity.ErrInvalidData
	}
	return nil
}
