package service

import (
	"testing"

	"stocktrack/internal/repository"
	"stocktrack/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testEnv wires every service over one fresh in-memory store.
type testEnv struct {
	db        *gorm.DB
	inventory InventoryService
	parties   PartyService
	orders    OrderService
	reports   ReportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Initialize(db))

	itemRepo := repository.NewItemRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	partyRepo := repository.NewPartyRepo(db)
	orderRepo := repository.NewOrderRepo(db)

	return &testEnv{
		db:        db,
		inventory: NewInventoryService(itemRepo, categoryRepo, db),
		parties:   NewPartyService(partyRepo),
		orders:    NewOrderService(orderRepo, db),
		reports:   NewReportService(itemRepo, partyRepo, orderRepo),
	}
}
