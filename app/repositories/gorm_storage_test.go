package repositories

import (
	"context"
	"os"
	"testing"

	"github.com/Rakhulsr/go-fitstore/app/models"
	"github.com/Rakhulsr/go-fitstore/app/models/migrations"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func getGormDB(t *testing.T) *gorm.DB {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/fitstore_test?charset=utf8mb4&parseTime=True&loc=Local"
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func TestGormStorage_UpsertAndRemove(t *testing.T) {
	db := getGormDB(t)
	ctx := context.Background()
	kv := NewGormStorage(db).Scope(ctx, "test-"+uuid.NewString())

	require.NoError(t, kv.SetItem(CartStorageKey, "one"))
	require.NoError(t, kv.SetItem(CartStorageKey, "two"))

	value, ok, err := kv.GetItem(CartStorageKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "two", value)

	require.NoError(t, kv.RemoveItem(CartStorageKey))
	_, ok, err = kv.GetItem(CartStorageKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGormStorage_CartRoundTrip(t *testing.T) {
	db := getGormDB(t)
	kv := NewGormStorage(db).Scope(context.Background(), "test-"+uuid.NewString())
	defer kv.RemoveItem(CartStorageKey)

	storage, _ := newTestCartStorage(kv)
	cart := sampleCart()
	require.NoError(t, storage.Save(cart))
	assert.True(t, cart.Equal(storage.Load()))
}

func TestProductRepository_UpsertAndFind(t *testing.T) {
	db := getGormDB(t)
	ctx := context.Background()
	repo := NewProductRepository(db)

	id := uuid.NewString()
	product := &models.Product{
		ID:       id,
		Name:     "Test Product " + id[:8],
		Slug:     "test-product-" + id[:8],
		Price:    decimal.RequireFromString("42.50"),
		Discount: percent(15),
		Sizes:    []models.Size{models.SizeS},
		Colors:   []models.Color{models.ColorGrey},
	}
	require.NoError(t, repo.Upsert(ctx, product))
	defer db.Delete(&models.Product{}, "id = ?", id)

	byID, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, product.Price.Equal(byID.Price))
	assert.Equal(t, []models.Size{models.SizeS}, byID.Sizes)

	bySlug, err := repo.GetBySlug(ctx, product.Slug)
	require.NoError(t, err)
	assert.Equal(t, id, bySlug.ID)

	_, err = repo.GetByID(ctx, "missing-"+id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderRepository_CreateAndUpdate(t *testing.T) {
	db := getGormDB(t)
	ctx := context.Background()
	repo := NewOrderRepository(db)

	order := &models.Order{
		OrderCode: "TEST-" + uuid.NewString()[:8],
		OrderItems: []models.OrderItem{
			{ProductID: "p1", ProductName: "P1", Qty: 2, UnitPrice: decimal.NewFromInt(10), EffectivePrice: decimal.NewFromInt(10), LineTotal: decimal.NewFromInt(20)},
		},
		Subtotal: decimal.NewFromInt(20),
		Shipping: decimal.RequireFromString("9.99"),
		Tax:      decimal.RequireFromString("1.60"),
		Total:    decimal.RequireFromString("31.59"),
		Status:   models.OrderStatusPending,
	}
	require.NoError(t, repo.Create(ctx, order))
	require.NoError(t, repo.UpdatePayment(ctx, order.ID, "tok", "https://pay.example/tok", "pending", models.OrderStatusAwaiting))

	stored, err := repo.GetByCode(ctx, order.OrderCode)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusAwaiting, stored.Status)
	assert.Equal(t, "https://pay.example/tok", stored.PaymentURL)
	require.Len(t, stored.OrderItems, 1)
	assert.Equal(t, order.ID, stored.OrderItems[0].OrderID)
}
