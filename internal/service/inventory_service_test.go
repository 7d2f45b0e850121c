package service

import (
	"errors"
	"testing"

	"stocktrack/internal/apperr"
	"stocktrack/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateItemPairsLevel(t *testing.T) {
	env := newTestEnv(t)

	id, err := env.inventory.CreateItem(&ItemInput{
		Name:      "Plywood Sheet",
		UnitPrice: decimal.RequireFromString("12.50"),
		Quantity:  7,
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	var level model.StockLevel
	require.NoError(t, env.db.First(&level, "item_id = ?", id).Error)
	assert.Equal(t, 7, level.Quantity)
}

func TestCreateItemRollsBackWhenLevelInsertFails(t *testing.T) {
	env := newTestEnv(t)

	// Force the level write to fail so the item insert must roll back.
	require.NoError(t, env.db.Migrator().DropTable("stock_levels"))

	_, err := env.inventory.CreateItem(&ItemInput{
		Name:      "Orphan Candidate",
		UnitPrice: decimal.RequireFromString("1.00"),
		Quantity:  1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrPersistence))

	var count int64
	require.NoError(t, env.db.Model(&model.StockItem{}).Count(&count).Error)
	assert.Zero(t, count, "stock item persisted without its level")
}

func TestCreateItemValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.inventory.CreateItem(&ItemInput{
		Name:      "",
		UnitPrice: decimal.RequireFromString("1.00"),
		Quantity:  1,
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	_, err = env.inventory.CreateItem(&ItemInput{
		Name:      "Negative",
		UnitPrice: decimal.RequireFromString("-0.01"),
		Quantity:  1,
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	_, err = env.inventory.CreateItem(&ItemInput{
		Name:      "Below Zero",
		UnitPrice: decimal.RequireFromString("1.00"),
		Quantity:  -1,
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	var count int64
	require.NoError(t, env.db.Model(&model.StockItem{}).Count(&count).Error)
	assert.Zero(t, count, "validation failure must not persist a row")
}

func TestUpdateItemReplacesRecordAndLevel(t *testing.T) {
	env := newTestEnv(t)

	id, err := env.inventory.CreateItem(&ItemInput{
		Name:      "Nails 2in",
		UnitPrice: decimal.RequireFromString("0.10"),
		Quantity:  100,
	})
	require.NoError(t, err)

	require.NoError(t, env.inventory.UpdateItem(id, &ItemInput{
		Name:        "Nails 2in Galvanized",
		Description: "box of 500",
		UnitPrice:   decimal.RequireFromString("0.12"),
		Quantity:    80,
	}))

	item, err := env.inventory.GetItem(id)
	require.NoError(t, err)
	assert.Equal(t, "Nails 2in Galvanized", item.Name)
	assert.Equal(t, "box of 500", item.Description)
	assert.True(t, item.UnitPrice.Equal(decimal.RequireFromString("0.12")))
	require.NotNil(t, item.Level)
	assert.Equal(t, 80, item.Level.Quantity)
}

func TestUpdateItemNotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.inventory.UpdateItem(9999, &ItemInput{
		Name:      "Ghost",
		UnitPrice: decimal.RequireFromString("1.00"),
		Quantity:  1,
	})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestDeleteItemRemovesLevel(t *testing.T) {
	env := newTestEnv(t)

	id, err := env.inventory.CreateItem(&ItemInput{
		Name:      "Temp",
		UnitPrice: decimal.RequireFromString("2.00"),
		Quantity:  3,
	})
	require.NoError(t, err)

	require.NoError(t, env.inventory.DeleteItem(id))

	var items, levels int64
	require.NoError(t, env.db.Model(&model.StockItem{}).Count(&items).Error)
	require.NoError(t, env.db.Model(&model.StockLevel{}).Count(&levels).Error)
	assert.Zero(t, items)
	assert.Zero(t, levels)

	assert.True(t, errors.Is(env.inventory.DeleteItem(id), apperr.ErrNotFound))
}

func TestCategoryCRUD(t *testing.T) {
	env := newTestEnv(t)

	categories, err := env.inventory.ListCategories()
	require.NoError(t, err)
	require.Len(t, categories, 4, "seed categories expected")

	id, err := env.inventory.CreateCategory(&model.Category{Name: "Paint"})
	require.NoError(t, err)

	_, err = env.inventory.CreateCategory(&model.Category{})
	assert.True(t, apperr.IsValidation(err))

	require.NoError(t, env.inventory.UpdateCategory(id, &model.Category{Name: "Paint & Finish"}))
	require.NoError(t, env.inventory.DeleteCategory(id))
	assert.True(t, errors.Is(env.inventory.DeleteCategory(id), apperr.ErrNotFound))
}
