package config

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/freshcart/grocery_backend/internal/models"
)

func TestMigrateIsIdempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	// a row written between runs must survive the second bootstrap
	item := models.Item{Name: "Milk", CategoryID: 2, Price: 3.5, Quantity: 10}
	require.NoError(t, db.Create(&item).Error)

	require.NoError(t, Migrate(db))

	for _, model := range []any{
		&models.Item{}, &models.Order{}, &models.OrderItem{}, &models.User{}, &models.Admin{},
	} {
		require.True(t, db.Migrator().HasTable(model))
	}

	var got models.Item
	require.NoError(t, db.First(&got, item.ID).Error)
	require.Equal(t, "Milk", got.Name)
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := LoadConfig()
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "test-secret")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "test-secret", cfg.JWT_SECRET)
}
