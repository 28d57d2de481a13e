package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"catalog/internal/entity"
	"catalog/internal/repository"
	"catalog/pkg/logger"
	"catalog/pkg/store"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"

	mock_metric "catalog/pkg/metric/mock"
)

func newItemRepository(t *testing.T) *repository.ItemRepository {
	t.Helper()

	ctrl := gomock.NewController(t)
	metrics := mock_metric.NewMockStore(ctrl)
	metrics.EXPECT().Hit(gomock.Any()).AnyTimes()
	metrics.EXPECT().Miss(gomock.Any()).AnyTimes()
	metrics.EXPECT().Size(gomock.Any(), gomock.Any()).AnyTimes()

	items := store.NewOrdered[int64, *entity.Item]("items", logger.NewNop(), metrics)
	return repository.NewItemRepository(items)
}

func fakeDraft() *entity.ItemDraft {
	description := gofakeit.Sentence(5)
	return &entity.ItemDraft{
		Name:        gofakeit.ProductName(),
		Description: &description,
		Price:       gofakeit.Price(1, 1000),
	}
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func boolPtr(b bool) *bool { return &b }

func TestItemRepository_MonotonicIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newItemRepository(t)

	// Ids increase by exactly 1 starting at 1, and deletions never
	// cause reuse.
	for want := int64(1); want <= 3; want++ {
		item, err := repo.Create(ctx, fakeDraft())
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if item.ID != want {
			t.Fatalf("expected id %d, got %d", want, item.ID)
		}
	}

	if _, err := repo.Delete(ctx, 2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Delete(ctx, 3); err != nil {
		t.Fatalf("delete: %v", err)
	}

	item, err := repo.Create(ctx, fakeDraft())
	if err != nil {
		t.Fatalf("create after delete: %v", err)
	}
	if item.ID != 4 {
		t.Fatalf("expected id 4 after deletes, got %d", item.ID)
	}
}

func TestItemRepository_CreateDefaults(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newItemRepository(t)

	created, err := repo.Create(ctx, &entity.ItemDraft{
		Name:        "Test Item",
		Description: strPtr("This is a test item"),
		Price:       9.99,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.ID != 1 {
		t.Errorf("expected id 1, got %d", created.ID)
	}
	if !created.IsAvailable {
		t.Error("expected is_available to default to true")
	}

	fetched, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched.Name != created.Name ||
		fetched.Price != created.Price ||
		fetched.IsAvailable != created.IsAvailable ||
		*fetched.Description != *created.Description {
		t.Errorf("round-trip mismatch: created %+v, fetched %+v", created, fetched)
	}
}

func TestItemRepository_CreateExplicitUnavailable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newItemRepository(t)

	draft := fakeDraft()
	draft.IsAvailable = boolPtr(false)

	item, err := repo.Create(ctx, draft)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.IsAvailable {
		t.Error("expected is_available false when explicitly set")
	}
}

func TestItemRepository_PartialUpdate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	testCases := []struct {
		desc  string
		patch *entity.ItemPatch
		check func(t *testing.T, before, after *entity.Item)
	}{
		{
			desc:  "PriceOnly",
			patch: &entity.ItemPatch{Price: floatPtr(5.00)},
			check: func(t *testing.T, before, after *entity.Item) {
				if after.Price != 5.00 {
					t.Errorf("expected price 5.00, got %v", after.Price)
				}
				if after.Name != before.Name {
					t.Errorf("name changed: %q -> %q", before.Name, after.Name)
				}
				if *after.Description != *before.Description {
					t.Error("description changed on price-only patch")
				}
				if after.IsAvailable != before.IsAvailable {
					t.Error("is_available changed on price-only patch")
				}
			},
		},
		{
			desc:  "NameOnly",
			patch: &entity.ItemPatch{Name: strPtr("Renamed")},
			check: func(t *testing.T, before, after *entity.Item) {
				if after.Name != "Renamed" {
					t.Errorf("expected name Renamed, got %q", after.Name)
				}
				if after.Price != before.Price {
					t.Error("price changed on name-only patch")
				}
			},
		},
		{
			desc:  "AvailabilityToFalse",
			patch: &entity.ItemPatch{IsAvailable: boolPtr(false)},
			check: func(t *testing.T, before, after *entity.Item) {
				if after.IsAvailable {
					t.Error("expected is_available false")
				}
				if after.Name != before.Name || after.Price != before.Price {
					t.Error("unrelated fields changed")
				}
			},
		},
		{
			desc:  "ExplicitEmptyDescription",
			patch: &entity.ItemPatch{Description: strPtr("")},
			check: func(t *testing.T, before, after *entity.Item) {
				if after.Description == nil || *after.Description != "" {
					t.Error("expected description explicitly set to empty string")
				}
			},
		},
		{
			desc:  "EmptyPatchIsNoOp",
			patch: &entity.ItemPatch{},
			check: func(t *testing.T, before, after *entity.Item) {
				if after.Name != before.Name ||
					after.Price != before.Price ||
					after.IsAvailable != before.IsAvailable ||
					*after.Description != *before.Description {
					t.Errorf("empty patch changed record: before %+v, after %+v", before, after)
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			repo := newItemRepository(t)
			before, err := repo.Create(ctx, fakeDraft())
			if err != nil {
				t.Fatalf("create: %v", err)
			}

			after, err := repo.Update(ctx, before.ID, tc.patch)
			if err != nil {
				t.Fatalf("update: %v", err)
			}

			if after.ID != before.ID {
				t.Errorf("id changed on update: %d -> %d", before.ID, after.ID)
			}
			tc.check(t, before, after)
		})
	}
}

func TestItemRepository_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newItemRepository(t)

	if _, err := repo.GetByID(ctx, 999); !errors.Is(err, entity.ErrDataNotFound) {
		t.Errorf("get on empty registry: expected ErrDataNotFound, got %v", err)
	}
	if _, err := repo.Update(ctx, 999, &entity.ItemPatch{}); !errors.Is(err, entity.ErrDataNotFound) {
		t.Errorf("update on empty registry: expected ErrDataNotFound, got %v", err)
	}
	if _, err := repo.Delete(ctx, 999); !errors.Is(err, entity.ErrDataNotFound) {
		t.Errorf("delete on empty registry: expected ErrDataNotFound, got %v", err)
	}
}

func TestItemRepository_DeleteRemovesRecord(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newItemRepository(t)

	created, err := repo.Create(ctx, fakeDraft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	deleted, err := repo.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.ID != created.ID || deleted.Name != created.Name {
		t.Errorf("delete returned wrong record: %+v", deleted)
	}

	if _, err = repo.GetByID(ctx, created.ID); !errors.Is(err, entity.ErrDataNotFound) {
		t.Errorf("expected ErrDataNotFound after delete, got %v", err)
	}

	items, err := repo.List(ctx, 0, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty list after delete, got %d items", len(items))
	}
}

func TestItemRepository_List(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	testCases := []struct {
		desc        string
		total       int
		skip, limit int
		wantIDs     []int64
	}{
		{desc: "All", total: 3, skip: 0, limit: 10, wantIDs: []int64{1, 2, 3}},
		{desc: "SkipBeyondSize", total: 3, skip: 5, limit: 10, wantIDs: []int64{}},
		{desc: "SkipFirst", total: 3, skip: 1, limit: 10, wantIDs: []int64{2, 3}},
		{desc: "LimitWindow", total: 5, skip: 1, limit: 2, wantIDs: []int64{2, 3}},
		{desc: "ZeroLimit", total: 3, skip: 0, limit: 0, wantIDs: []int64{}},
		{desc: "Empty", total: 0, skip: 0, limit: 10, wantIDs: []int64{}},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			repo := newItemRepository(t)
			for range tc.total {
				if _, err := repo.Create(ctx, fakeDraft()); err != nil {
					t.Fatalf("create: %v", err)
				}
			}

			items, err := repo.List(ctx, tc.skip, tc.limit)
			if err != nil {
				t.Fatalf("list: %v", err)
			}

			if len(items) != len(tc.wantIDs) {
				t.Fatalf("expected %d items, got %d", len(tc.wantIDs), len(items))
			}
			for i, item := range items {
				if item.ID != tc.wantIDs[i] {
					t.Errorf("position %d: expected id %d, got %d", i, tc.wantIDs[i], item.ID)
				}
			}
		})
	}
}

func TestItemRepository_ConcurrentCreates(t *testing.T) {
	t.Parallel()

	const goroutines = 50

	ctx := context.Background()
	repo := newItemRepository(t)

	var wg sync.WaitGroup
	ids := make(chan int64, goroutines)

	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			item, err := repo.Create(ctx, fakeDraft())
			if err != nil {
				t.Errorf("create: %v", err)
				return
			}
			ids <- item.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, goroutines)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id assigned: %d", id)
		}
		seen[id] = true
	}
	if len(seen) != goroutines {
		t.Fatalf("expected %d unique ids, got %d", goroutines, len(seen))
	}
}

func TestItemRepository_ReturnedRecordIsACopy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newItemRepository(t)

	created, err := repo.Create(ctx, fakeDraft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	created.Name = "mutated outside the registry"

	stored, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Name == created.Name {
		t.Error("mutating a returned record leaked into the registry")
	}
}
