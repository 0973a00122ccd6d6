package repositories

import (
	"context"

	"github.com/Rakhulsr/go-fitstore/app/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	UpdatePayment(ctx context.Context, orderID, token, url, paymentStatus string, status int) error
	GetByCode(ctx context.Context, code string) (*models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create stores the order and its items in one transaction.
func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("OrderItems").Create(order).Error; err != nil {
			return errors.Wrap(err, "create order")
		}
		for i := range order.OrderItems {
			order.OrderItems[i].OrderID = order.ID
		}
		if len(order.OrderItems) == 0 {
			return nil
		}
		return errors.Wrap(tx.Create(&order.OrderItems).Error, "create order items")
	})
}

func (r *orderRepository) UpdatePayment(ctx context.Context, orderID, token, url, paymentStatus string, status int) error {
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"payment_token":  token,
			"payment_url":    url,
			"payment_status": paymentStatus,
			"status":         status,
		}).Error
	return errors.Wrapf(err, "update payment of order %s", orderID)
}

func (r *orderRepository) GetByCode(ctx context.Context, code string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Preload("OrderItems").Where("order_code = ?", code).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "find order %s", code)
	}
	return &order, nil
}
