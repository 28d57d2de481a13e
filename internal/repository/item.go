package repository

import (
	"context"
	"sync"

	"catalog/internal/entity"
	"catalog/pkg/store"
)

const _firstItemID = 1

// ItemRepository is the authoritative in-memory item registry. It owns
// the identifier counter and the insertion-ordered record store.
// Identifiers are assigned monotonically starting at 1 and are never
// reused after a delete.
type ItemRepository struct {
	items store.Store[int64, *entity.Item]

	// mu makes the read-counter-increment-insert sequence atomic so
	// identifiers stay unique under concurrent creates.
	mu     sync.Mutex
	nextID int64
}

func NewItemRepository(items store.Store[int64, *entity.Item]) *ItemRepository {
	return &ItemRepository{
		items:  items,
		nextID: _firstItemID,
	}
}

func (r *ItemRepository) Create(
	_ context.Context,
	draft *entity.ItemDraft,
) (*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item := &entity.Item{
		ID:          r.nextID,
		Name:        draft.Name,
		Description: draft.Description,
		Price:       draft.Price,
		IsAvailable: draft.Available(),
	}
	r.nextID++

	r.items.Put(item.ID, item)

	return copyItem(item), nil
}

// List returns an insertion-ordered snapshot starting at the skip-th
// item with at most limit entries. Out-of-range skip yields an empty
// slice, never an error.
func (r *ItemRepository) List(_ context.Context, skip, limit int) ([]*entity.Item, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 0
	}

	all := r.items.Values()
	if skip >= len(all) {
		return []*entity.Item{}, nil
	}

	end := skip + limit
	if end > len(all) {
		end = len(all)
	}

	result := make([]*entity.Item, 0, end-skip)
	for _, item := range all[skip:end] {
		result = append(result, copyItem(item))
	}
	return result, nil
}

func (r *ItemRepository) GetByID(_ context.Context, id int64) (*entity.Item, error) {
	item, ok := r.items.Get(id)
	if !ok {
		return nil, entity.ErrDataNotFound
	}
	return copyItem(item), nil
}

func (r *ItemRepository) Update(
	_ context.Context,
	id int64,
	patch *entity.ItemPatch,
) (*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items.Get(id)
	if !ok {
		return nil, entity.ErrDataNotFound
	}

	patch.Apply(item)
	r.items.Put(id, item)

	return copyItem(item), nil
}

// Delete removes the record and returns it as it existed immediately
// before removal.
func (r *ItemRepository) Delete(_ context.Context, id int64) (*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items.Delete(id)
	if !ok {
		return nil, entity.ErrDataNotFound
	}
	return copyItem(item), nil
}

// copyItem keeps callers from mutating stored records through the
// returned pointer.
func copyItem(item *entity.Item) *entity.Item {
	clone := *item
	return &clone
}
