//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/haugsdal/packboard/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDB(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewCustomerRepository(db)

	t.Run("create and get", func(t *testing.T) {
		customer := &model.Customer{Name: "Baker Street Cafe", ContactEmail: "orders@bakerstreet.example", Active: true}
		require.NoError(t, repo.Create(ctx, customer))
		require.NotEmpty(t, customer.ID)

		got, err := repo.GetByID(ctx, customer.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Baker Street Cafe", got.Name)
	})

	t.Run("get missing returns nil", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "missing")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("list only active", func(t *testing.T) {
		inactive := &model.Customer{Name: "Former Client", Active: false}
		require.NoError(t, repo.Create(ctx, inactive))

		all, err := repo.List(ctx, false)
		require.NoError(t, err)
		active, err := repo.List(ctx, true)
		require.NoError(t, err)
		assert.Greater(t, len(all), len(active))
		for _, c := range active {
			assert.True(t, c.Active)
		}
	})

	t.Run("update returns stored document", func(t *testing.T) {
		customer := &model.Customer{Name: "Old Name", Active: true}
		require.NoError(t, repo.Create(ctx, customer))

		customer.Name = "New Name"
		updated, err := repo.Update(ctx, customer)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "New Name", updated.Name)
	})

	t.Run("update missing returns nil", func(t *testing.T) {
		updated, err := repo.Update(ctx, &model.Customer{ID: "missing", Name: "x"})
		assert.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("delete", func(t *testing.T) {
		customer := &model.Customer{Name: "Temp", Active: true}
		require.NoError(t, repo.Create(ctx, customer))

		ok, err := repo.Delete(ctx, customer.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.Delete(ctx, customer.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestProductRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDB(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewProductRepository(db)

	t.Run("create and get by ids", func(t *testing.T) {
		bread := &model.Product{Name: "Sourdough", Category: "bread", Unit: "pcs", Price: decimal.NewFromInt(45), Active: true}
		rolls := &model.Product{Name: "Rolls", Category: "bread", Unit: "pcs", Price: decimal.NewFromFloat(5.5), Active: true}
		require.NoError(t, repo.Create(ctx, bread))
		require.NoError(t, repo.Create(ctx, rolls))

		byID, err := repo.GetByIDs(ctx, []string{bread.ID, rolls.ID, "missing"})
		require.NoError(t, err)
		assert.Len(t, byID, 2)
		assert.Equal(t, "Sourdough", byID[bread.ID].Name)
	})

	t.Run("get by ids with empty slice", func(t *testing.T) {
		byID, err := repo.GetByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, byID)
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		first := &model.Product{Name: "Croissant", Category: "pastry", Unit: "pcs", Active: true}
		require.NoError(t, repo.Create(ctx, first))

		dup := &model.Product{Name: "Croissant", Category: "pastry", Unit: "pcs", Active: true}
		assert.Error(t, repo.Create(ctx, dup))
	})

	t.Run("update price", func(t *testing.T) {
		product := &model.Product{Name: "Baguette", Category: "bread", Unit: "pcs", Price: decimal.NewFromInt(30), Active: true}
		require.NoError(t, repo.Create(ctx, product))

		product.Price = decimal.NewFromInt(32)
		updated, err := repo.Update(ctx, product)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.True(t, updated.Price.Equal(decimal.NewFromInt(32)))
	})
}

func TestSelectionRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDB(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewSelectionRepository(db)

	t.Run("get before upsert returns nil", func(t *testing.T) {
		selection, err := repo.GetByDate(ctx, "2026-09-01")
		assert.NoError(t, err)
		assert.Nil(t, selection)
	})

	t.Run("upsert and get", func(t *testing.T) {
		selection := &model.ActiveSelection{
			DeliveryDate: "2026-09-01",
			ProductIDs:   []string{"prod-1", "prod-2"},
			UpdatedBy:    "baker",
		}
		require.NoError(t, repo.Upsert(ctx, selection))

		got, err := repo.GetByDate(ctx, "2026-09-01")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, []string{"prod-1", "prod-2"}, got.ProductIDs)
		assert.False(t, got.UpdatedAt.IsZero())
	})

	t.Run("upsert replaces previous selection", func(t *testing.T) {
		selection := &model.ActiveSelection{DeliveryDate: "2026-09-01", ProductIDs: []string{"prod-3"}}
		require.NoError(t, repo.Upsert(ctx, selection))

		got, err := repo.GetByDate(ctx, "2026-09-01")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, []string{"prod-3"}, got.ProductIDs)
	})

	t.Run("clear", func(t *testing.T) {
		ok, err := repo.Clear(ctx, "2026-09-01")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.Clear(ctx, "2026-09-01")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestSettingsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDB(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewSettingsRepository(db)

	t.Run("get before upsert returns nil", func(t *testing.T) {
		settings, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.Nil(t, settings)
	})

	t.Run("upsert and get", func(t *testing.T) {
		show := true
		settings := &model.DisplaySettings{ShowDate: &show, Theme: "dark", CompactTopN: 5}
		require.NoError(t, repo.Upsert(ctx, settings))

		got, err := repo.Get(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "dark", got.Theme)
		assert.Equal(t, 5, got.CompactTopN)
		require.NotNil(t, got.ShowDate)
		assert.True(t, *got.ShowDate)
	})

	t.Run("second upsert overwrites the singleton", func(t *testing.T) {
		settings := &model.DisplaySettings{Theme: "light"}
		require.NoError(t, repo.Upsert(ctx, settings))

		got, err := repo.Get(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "light", got.Theme)
	})
}

func TestEventsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDB(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewEventsRepository(db)

	t.Run("create fills id and timestamp", func(t *testing.T) {
		event := &PackingEventDocument{
			DeliveryDate: "2026-09-01",
			OrderID:      "order-1",
			LineID:       "line-1",
			Action:       "line_status_changed",
			OldStatus:    model.PackingPending,
			NewStatus:    model.PackingPacked,
		}
		require.NoError(t, repo.Create(ctx, event))
		assert.False(t, event.ID.IsZero())
		assert.False(t, event.Timestamp.IsZero())
	})

	t.Run("list by date newest first with limit", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			require.NoError(t, repo.Create(ctx, &PackingEventDocument{
				DeliveryDate: "2026-09-02",
				OrderID:      "order-2",
				Action:       "line_status_changed",
			}))
		}

		events, err := repo.ListByDate(ctx, "2026-09-02", 2)
		require.NoError(t, err)
		assert.Len(t, events, 2)
		assert.False(t, events[0].Timestamp.Before(events[1].Timestamp))
	})

	t.Run("ttl index can be applied", func(t *testing.T) {
		assert.NoError(t, db.SetEventsTTL(ctx, 30))
	})
}
