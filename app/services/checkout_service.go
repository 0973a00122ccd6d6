package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Rakhulsr/go-fitstore/app/models"
	"github.com/Rakhulsr/go-fitstore/app/repositories"
	"github.com/Rakhulsr/go-fitstore/app/utils/calc"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type Customer struct {
	Name  string
	Email string
}

type PaymentRequest struct {
	OrderCode string
	Amount    decimal.Decimal
	Customer  Customer
}

type PaymentResult struct {
	Token       string
	RedirectURL string
}

// PaymentGateway is the external payment processor.
type PaymentGateway interface {
	CreatePayment(ctx context.Context, req PaymentRequest) (*PaymentResult, error)
}

// OrderNotifier tells the customer about a placed order.
type OrderNotifier interface {
	SendOrderConfirmation(ctx context.Context, order *models.Order) error
}

type CheckoutService struct {
	orders   repositories.OrderRepository
	payments PaymentGateway
	notifier OrderNotifier
	log      logrus.FieldLogger
	now      func() time.Time
}

// NewCheckoutService builds the checkout flow; notifier may be nil.
func NewCheckoutService(orders repositories.OrderRepository, payments PaymentGateway, notifier OrderNotifier, log logrus.FieldLogger) *CheckoutService {
	return &CheckoutService{
		orders:   orders,
		payments: payments,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

// Checkout turns the cart held by store into an order, requests a payment
// for its total and clears the cart once the payment request succeeds.
func (s *CheckoutService) Checkout(ctx context.Context, store *CartStore, customer Customer) (*models.Order, error) {
	cart := store.Cart()
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	order := s.buildOrder(cart, customer)
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "checkout: store order")
	}

	log := s.log.WithFields(logrus.Fields{"order_code": order.OrderCode, "total": order.Total.StringFixed(2)})

	result, err := s.payments.CreatePayment(ctx, PaymentRequest{
		OrderCode: order.OrderCode,
		Amount:    order.Total,
		Customer:  customer,
	})
	if err != nil {
		log.WithError(err).Error("CheckoutService.Checkout: payment request failed")
		order.Status = models.OrderStatusFailed
		order.PaymentStatus = "failed"
		if updErr := s.orders.UpdatePayment(ctx, order.ID, "", "", order.PaymentStatus, order.Status); updErr != nil {
			log.WithError(updErr).Error("CheckoutService.Checkout: failed to mark order as failed")
		}
		return nil, errors.WithMessage(ErrPaymentFailed, err.Error())
	}

	order.PaymentToken = result.Token
	order.PaymentURL = result.RedirectURL
	order.PaymentStatus = "pending"
	order.Status = models.OrderStatusAwaiting
	if err := s.orders.UpdatePayment(ctx, order.ID, result.Token, result.RedirectURL, order.PaymentStatus, order.Status); err != nil {
		return nil, errors.Wrap(err, "checkout: record payment")
	}

	if err := store.ClearCart(); err != nil {
		return order, err
	}
	log.Info("CheckoutService.Checkout: order placed")

	if s.notifier != nil {
		if err := s.notifier.SendOrderConfirmation(ctx, order); err != nil {
			log.WithError(err).Warn("CheckoutService.Checkout: order confirmation not sent")
		}
	}
	return order, nil
}

func (s *CheckoutService) buildOrder(cart models.Cart, customer Customer) *models.Order {
	now := s.now()
	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, models.OrderItem{
			ProductID:      item.Product.ID,
			ProductName:    item.Product.Name,
			Size:           item.Size,
			Color:          item.Color,
			Qty:            item.Quantity,
			UnitPrice:      item.Product.Price,
			EffectivePrice: calc.EffectivePrice(item),
			LineTotal:      calc.LineTotal(item),
		})
	}

	return &models.Order{
		OrderCode:     generateOrderCode(now),
		OrderDate:     now,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		OrderItems:    items,
		Subtotal:      cart.Subtotal,
		Shipping:      cart.Shipping,
		Tax:           cart.Tax,
		Total:         cart.Total,
		PaymentStatus: "new",
		Status:        models.OrderStatusPending,
	}
}

func generateOrderCode(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("FIT-%s-%s", now.Format("20060102"), suffix)
}
